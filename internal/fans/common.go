package fans

import (
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/hal"
)

const (
	MaxSpeed uint8 = hal.MaxFanSpeedPercent
	MinSpeed uint8 = 0
)

type FeatureFlag int

const (
	// FeatureTemperatureSensor indicates that the device reports a temperature for this fan
	FeatureTemperatureSensor FeatureFlag = 0
	// FeatureFanOff indicates that the device allows the fan to stop completely
	FeatureFanOff FeatureFlag = 1
)

var (
	FanMap = cmap.New[Fan]()
)

type Fan interface {
	GetId() string
	GetLabel() string
	// GetIndex returns the index of this fan on the device
	GetIndex() int
	GetConfig() configuration.FanConfig

	// GetMinSpeed returns the lowest speed in percent the device accepts for this fan
	GetMinSpeed() uint8

	// GetSpeed returns the current speed of this fan in percent
	GetSpeed() (uint8, error)
	SetSpeed(percent uint8) error
	// GetLastSetSpeed returns the speed most recently set by uw2go, nil if none was set
	GetLastSetSpeed() *uint8

	// GetTemperature returns the current temperature of the sensor associated with this fan in °C
	GetTemperature() (uint8, error)
	// UpdateTemperature reads the temperature and appends it to the moving window
	UpdateTemperature() (uint8, error)
	GetTemperatureAvg() float64

	// SetAuto hands control of all fans of the device back to the device itself
	SetAuto() error
	// IsAuto indicates whether this fan is controlled by the device itself
	IsAuto() bool

	// ShouldNeverStop indicated whether this fan should never stop rotating
	ShouldNeverStop() bool

	Supports(feature FeatureFlag) bool
}

func NewFan(config configuration.FanConfig, device hal.HardwareDevice, windowSize int) (Fan, error) {
	if config.Index < 0 || config.Index >= device.FanCount() {
		return nil, fmt.Errorf("fan %s: index %d: %w", config.ID, config.Index, hal.ErrDeviceNotAvailable)
	}

	return newUniwillFan(config, device, windowSize), nil
}

// SetAllAuto hands control back to the device and marks every registered fan as automatic.
func SetAllAuto(device hal.HardwareDevice) error {
	if err := device.SetFansAuto(); err != nil {
		return err
	}
	for _, fan := range FanMap.Items() {
		if f, ok := fan.(*UniwillFan); ok {
			f.markAuto()
		}
	}
	return nil
}

// GetFan returns the registered fan with the given id.
func GetFan(id string) (Fan, bool) {
	return FanMap.Get(id)
}
