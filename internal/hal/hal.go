package hal

// HardwareDevice is the cooling and performance control surface of a laptop.
//
// Implementations do not add locking of their own. Callers sharing one device
// across goroutines must serialize calls that depend on each other.
type HardwareDevice interface {
	// InterfaceId names the hardware interface, without touching the device
	InterfaceId() string
	// ModelId returns the model identifier reported by the device
	ModelId() (string, error)

	SetEnableMode(enabled bool) error

	// FanCount returns the number of fans that can be addressed by index
	FanCount() int
	// SetFansAuto hands fan control back to the device firmware
	SetFansAuto() error
	SetFanSpeedPercent(fan int, percent uint8) error
	GetFanSpeedPercent(fan int) (uint8, error)
	// GetFanTemperature returns the temperature in °C of the sensor associated with a fan
	GetFanTemperature(fan int) (uint8, error)
	// GetFansMinSpeed returns the lowest raw speed the device accepts
	GetFansMinSpeed() (uint8, error)
	// GetFansOffAvailable indicates whether the fans may be stopped completely
	GetFansOffAvailable() (bool, error)

	// AvailableProfiles returns the names of the performance profiles supported by the device
	AvailableProfiles() ([]string, error)
	SetProfile(name string) error
	DefaultProfile() (string, error)

	Close() error
}

// TdpDevice controls the thermal design power limits of a device.
type TdpDevice interface {
	TdpCount() (int, error)
	TdpDescriptors() ([]string, error)
	TdpMin(index int) (uint8, error)
	TdpMax(index int) (uint8, error)
	SetTdp(index int, value uint8) error
	GetTdp(index int) (uint8, error)
}
