package fans

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/asecurityteam/rolling"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
	"github.com/uw2go/uw2go/internal/util"
)

// UniwillFan is a single fan of a hal.HardwareDevice.
type UniwillFan struct {
	Config configuration.FanConfig `json:"config"`

	device hal.HardwareDevice

	// MinSpeed is the lowest speed in percent reported by the device
	MinSpeed     uint8 `json:"minSpeed"`
	FanOff       bool  `json:"fanOff"`
	HasTempInput bool  `json:"hasTempInput"`

	mu           sync.Mutex
	temperatures *rolling.PointPolicy
	Auto         bool   `json:"auto"`
	LastSetSpeed *uint8 `json:"lastSetSpeed,omitempty"`
}

func newUniwillFan(config configuration.FanConfig, device hal.HardwareDevice, windowSize int) *UniwillFan {
	fan := &UniwillFan{
		Config:       config,
		device:       device,
		temperatures: util.CreateRollingWindow(windowSize),
		Auto:         true,
		HasTempInput: true,
	}
	fan.negotiate()
	return fan
}

// negotiate queries the optional capabilities of the device once
func (fan *UniwillFan) negotiate() {
	minRaw, err := fan.device.GetFansMinSpeed()
	if err != nil {
		ui.Warning("Fan %s: unable to read minimum fan speed: %v", fan.GetId(), err)
	} else {
		fan.MinSpeed = hal.RawToPercent(int32(minRaw))
	}

	fan.FanOff, err = fan.device.GetFansOffAvailable()
	if err != nil {
		ui.Warning("Fan %s: unable to detect whether fans can be turned off: %v", fan.GetId(), err)
	}

	temp, err := fan.device.GetFanTemperature(fan.GetIndex())
	if errors.Is(err, hal.ErrDeviceNotAvailable) {
		ui.Warning("Fan %s: no temperature sensor available", fan.GetId())
		fan.HasTempInput = false
	} else if err == nil {
		fan.temperatures.Append(float64(temp))
	}
}

func (fan *UniwillFan) GetId() string {
	return fan.Config.ID
}

func (fan *UniwillFan) GetLabel() string {
	return fmt.Sprintf("Fan %d (%s)", fan.Config.Index, fan.Config.ID)
}

func (fan *UniwillFan) GetIndex() int {
	return fan.Config.Index
}

func (fan *UniwillFan) GetConfig() configuration.FanConfig {
	return fan.Config
}

func (fan *UniwillFan) GetMinSpeed() uint8 {
	return fan.MinSpeed
}

func (fan *UniwillFan) GetSpeed() (uint8, error) {
	speed, err := fan.device.GetFanSpeedPercent(fan.GetIndex())
	if err != nil {
		return 0, fmt.Errorf("fan %s getSpeed: %w", fan.GetId(), err)
	}
	return speed, nil
}

func (fan *UniwillFan) SetSpeed(percent uint8) error {
	err := fan.device.SetFanSpeedPercent(fan.GetIndex(), percent)
	if err != nil {
		return fmt.Errorf("fan %s setSpeed: %w", fan.GetId(), err)
	}

	fan.mu.Lock()
	defer fan.mu.Unlock()
	fan.Auto = false
	fan.LastSetSpeed = &percent
	return nil
}

func (fan *UniwillFan) GetLastSetSpeed() *uint8 {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return fan.LastSetSpeed
}

func (fan *UniwillFan) GetTemperature() (uint8, error) {
	temp, err := fan.device.GetFanTemperature(fan.GetIndex())
	if err != nil {
		return 0, fmt.Errorf("fan %s getTemperature: %w", fan.GetId(), err)
	}
	return temp, nil
}

func (fan *UniwillFan) UpdateTemperature() (uint8, error) {
	temp, err := fan.GetTemperature()
	if err != nil {
		return 0, err
	}
	fan.temperatures.Append(float64(temp))
	return temp, nil
}

func (fan *UniwillFan) GetTemperatureAvg() float64 {
	if !fan.HasTempInput {
		return 0
	}
	avg := util.GetWindowAvg(fan.temperatures)
	if math.IsNaN(avg) {
		// no value yet
		return 0
	}
	return avg
}

func (fan *UniwillFan) SetAuto() error {
	if err := SetAllAuto(fan.device); err != nil {
		return fmt.Errorf("fan %s setAuto: %w", fan.GetId(), err)
	}
	fan.markAuto()
	return nil
}

func (fan *UniwillFan) markAuto() {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	fan.Auto = true
	fan.LastSetSpeed = nil
}

func (fan *UniwillFan) IsAuto() bool {
	fan.mu.Lock()
	defer fan.mu.Unlock()
	return fan.Auto
}

func (fan *UniwillFan) ShouldNeverStop() bool {
	return fan.Config.NeverStop
}

func (fan *UniwillFan) Supports(feature FeatureFlag) bool {
	switch feature {
	case FeatureTemperatureSensor:
		return fan.HasTempInput
	case FeatureFanOff:
		return fan.FanOff
	}
	return false
}
