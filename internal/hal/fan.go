package hal

import (
	"math"

	"github.com/uw2go/uw2go/internal/ioctl"
)

const (
	// MaxRawFanSpeed is the raw register value equivalent to 100%
	MaxRawFanSpeed = 0xC8

	MaxFanSpeedPercent = 100
)

// Fan is one of the fans wired to the uniwill interface.
type Fan int

const (
	FanPrimary Fan = iota
	FanSecondary
)

// fanFromIndex maps a caller supplied index onto a known fan.
func fanFromIndex(index int) (Fan, error) {
	switch Fan(index) {
	case FanPrimary, FanSecondary:
		return Fan(index), nil
	default:
		return 0, ErrDeviceNotAvailable
	}
}

func (f Fan) speedReadRequest() ioctl.Request {
	switch f {
	case FanSecondary:
		return ioctl.UwFanSpeed1
	default:
		return ioctl.UwFanSpeed0
	}
}

func (f Fan) speedWriteRequest() ioctl.Request {
	switch f {
	case FanSecondary:
		return ioctl.UwWriteFanSpeed1
	default:
		return ioctl.UwWriteFanSpeed0
	}
}

func (f Fan) temperatureRequest() ioctl.Request {
	switch f {
	case FanSecondary:
		return ioctl.UwFanTemp1
	default:
		return ioctl.UwFanTemp0
	}
}

// PercentToRaw converts a fan speed in percent to the raw register value.
func PercentToRaw(percent uint8) uint32 {
	return uint32(math.Round(float64(percent) * MaxRawFanSpeed / MaxFanSpeedPercent))
}

// RawToPercent converts a raw register value to a fan speed in percent.
// Values above MaxRawFanSpeed saturate at 255.
func RawToPercent(raw int32) uint8 {
	percent := math.Round(float64(raw) * MaxFanSpeedPercent / MaxRawFanSpeed)
	return saturateUint8(percent)
}

func saturateUint8(value float64) uint8 {
	if value <= 0 {
		return 0
	}
	if value >= math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(value)
}
