package configuration

import (
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ioctl"
	"github.com/uw2go/uw2go/internal/ui"
)

const (
	configName = "uw2go"

	DefaultDbPath = "/etc/uw2go/uw2go.db"
)

type Configuration struct {
	// Device is the path of the tuxedo_io character device
	Device string `json:"device"`
	DbPath string `json:"dbPath"`

	// Profile is applied when the daemon starts, nil keeps the current one
	Profile *hal.PerformanceProfile `json:"profile,omitempty"`
	// RestoreOnStart re-applies the last profile and manual fan speeds stored in the db
	RestoreOnStart DefaultTrueBool `json:"restoreOnStart"`

	FanPollingRate       time.Duration `json:"fanPollingRate"`
	FanRollingWindowSize int           `json:"fanRollingWindowSize"`

	ControllerAdjustmentTickRate time.Duration `json:"controllerAdjustmentTickRate"`

	Fans   []FanConfig   `json:"fans"`
	Curves []CurveConfig `json:"curves"`

	Statistics StatisticsConfig `json:"statistics"`
	Api        ApiConfig        `json:"api"`
}

var CurrentConfig Configuration

// InitConfig reads in config file and ENV variables if set.
func InitConfig(cfgFile string) {
	viper.SetConfigName(configName)

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			ui.Error("Couldn't detect home directory: %v", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.AddConfigPath("/etc/uw2go/")
	}

	viper.SetEnvPrefix(configName)
	viper.AutomaticEnv() // read in environment variables that match

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("device", ioctl.DefaultDevicePath)
	viper.SetDefault("dbPath", DefaultDbPath)
	viper.SetDefault("fanPollingRate", 1*time.Second)
	viper.SetDefault("fanRollingWindowSize", 10)
	viper.SetDefault("controllerAdjustmentTickRate", 1*time.Second)

	viper.SetDefault("fans", []FanConfig{})
	viper.SetDefault("curves", []CurveConfig{})

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9000)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.host", "localhost")
	viper.SetDefault("api.port", 9001)
}

// DetectConfigFile reads the config file found by viper and returns its path.
// A config file is optional, without one only the default values are used.
func DetectConfigFile() string {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			ui.Debug("No configuration file found, using defaults")
			return ""
		}
		ui.Fatal("Error reading config file, %s", err)
	}
	// this is only populated _after_ ReadInConfig()
	return viper.ConfigFileUsed()
}

// LoadConfig decodes the current viper state into CurrentConfig.
func LoadConfig() {
	err := viper.Unmarshal(&CurrentConfig, viper.DecodeHook(decodeHooks()))
	if err != nil {
		ui.Fatal("unable to decode into struct, %v", err)
	}
}

func decodeHooks() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		PerformanceProfileHookFunc(),
		CurveStepsHookFunc(),
		DefaultTrueBoolHookFunc(),
	)
}
