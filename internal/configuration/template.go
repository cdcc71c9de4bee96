package configuration

// DefaultConfig is the configuration written by `uw2go config init`.
const DefaultConfig = `# Path of the tuxedo_io character device
device: /dev/tuxedo_io
# Database used to remember the last applied settings
dbPath: /etc/uw2go/uw2go.db

# Performance profile applied on start, one of: power_save | enthusiast | overboost
profile: enthusiast
# Re-apply the last profile and manual fan speeds on start
restoreOnStart: true

fanPollingRate: 1s
fanRollingWindowSize: 10
controllerAdjustmentTickRate: 1s

fans:
  - id: cpu
    index: 0
    neverStop: true
    curve: cpu_curve
    # limits the speed change in percent per controller cycle
    maxSpeedChangePerCycle: 10
  # without a curve the fan is controlled by the device itself
  - id: gpu
    index: 1

curves:
  - id: cpu_curve
    # temperature in °C: fan speed in percent
    steps:
      40: 0
      50: 30
      70: 60
      85: 100

statistics:
  enabled: false
  port: 9000

api:
  enabled: false
  host: localhost
  port: 9001
`
