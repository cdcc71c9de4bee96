package hal

import (
	"errors"
	"strconv"

	"github.com/uw2go/uw2go/internal/ioctl"
)

const (
	UniwillInterfaceId = "uniwill"

	UniwillFanCount = 2
)

// UniwillHardware drives laptops based on the Uniwill platform through the tuxedo_io channel.
type UniwillHardware struct {
	channel  ioctl.Channel
	fanCount int
}

var (
	_ HardwareDevice = &UniwillHardware{}
	_ TdpDevice      = &UniwillHardware{}
)

// NewUniwillHardware takes ownership of the given channel and checks that it is connected
// to uniwill hardware. If it is not, the channel is closed and ErrDeviceNotAvailable is returned.
func NewUniwillHardware(channel ioctl.Channel) (*UniwillHardware, error) {
	present, err := channel.Read(ioctl.UwHwCheck)
	if err != nil || present != 1 {
		_ = channel.Close()
		return nil, ErrDeviceNotAvailable
	}

	return &UniwillHardware{
		channel:  channel,
		fanCount: UniwillFanCount,
	}, nil
}

func (h *UniwillHardware) InterfaceId() string {
	return UniwillInterfaceId
}

func (h *UniwillHardware) ModelId() (string, error) {
	id, err := h.channel.Read(ioctl.UwModelId)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(id), 10), nil
}

// ModuleVersion returns the version of the kernel driver behind the channel.
func (h *UniwillHardware) ModuleVersion() (string, error) {
	return h.channel.ReadString(ioctl.ModuleVersion, ioctl.ModuleVersionLength)
}

func (h *UniwillHardware) SetEnableMode(enabled bool) error {
	var value uint32
	if enabled {
		value = 1
	}
	return h.channel.Write(ioctl.UwWriteModeEnable, value)
}

func (h *UniwillHardware) FanCount() int {
	return h.fanCount
}

func (h *UniwillHardware) SetFansAuto() error {
	return h.channel.Write(ioctl.UwWriteFanAuto, 0)
}

func (h *UniwillHardware) SetFanSpeedPercent(fan int, percent uint8) error {
	f, err := fanFromIndex(fan)
	if err != nil {
		return err
	}
	if percent > MaxFanSpeedPercent {
		return ErrInvalidArguments
	}
	return h.channel.Write(f.speedWriteRequest(), PercentToRaw(percent))
}

func (h *UniwillHardware) GetFanSpeedPercent(fan int) (uint8, error) {
	f, err := fanFromIndex(fan)
	if err != nil {
		return 0, err
	}
	raw, err := h.channel.Read(f.speedReadRequest())
	if err != nil {
		return 0, err
	}
	return RawToPercent(raw), nil
}

func (h *UniwillHardware) GetFanTemperature(fan int) (uint8, error) {
	f, err := fanFromIndex(fan)
	if err != nil {
		return 0, err
	}
	temp, err := h.channel.Read(f.temperatureRequest())
	if err != nil {
		return 0, err
	}

	// 0 is what the vendor tooling (tccwmi) uses for "no sensor / no fan",
	// anything outside of a byte is not a reading either
	if temp <= 0 || temp > 0xFF {
		return 0, ErrDeviceNotAvailable
	}
	return uint8(temp), nil
}

func (h *UniwillHardware) GetFansMinSpeed() (uint8, error) {
	speed, err := h.channel.Read(ioctl.UwFansMinSpeed)
	if err != nil {
		return 0, err
	}
	if speed < 0 || speed > 0xFF {
		return 0, nil
	}
	return uint8(speed), nil
}

func (h *UniwillHardware) GetFansOffAvailable() (bool, error) {
	available, err := h.channel.Read(ioctl.UwFansOffAvailable)
	if err != nil {
		return false, err
	}
	return available == 1, nil
}

func (h *UniwillHardware) AvailableProfiles() ([]string, error) {
	count, err := h.channel.Read(ioctl.UwProfsAvailable)
	if err != nil {
		return nil, err
	}

	switch count {
	case 2, 3:
		return profileNames(int(count)), nil
	default:
		return nil, ErrDeviceNotAvailable
	}
}

func (h *UniwillHardware) SetProfile(name string) error {
	profile, err := ParseProfile(name)
	if err != nil {
		return ErrInvalidArguments
	}
	return h.channel.Write(ioctl.UwWritePerfProfile, uint32(profile))
}

// DefaultProfile is not known for uniwill devices.
func (h *UniwillHardware) DefaultProfile() (string, error) {
	return "", ErrUnimplemented
}

func (h *UniwillHardware) Close() error {
	return h.channel.Close()
}

// uniwill devices do not expose TDP control through tuxedo_io

func (h *UniwillHardware) TdpCount() (int, error) {
	return 0, ErrUnimplemented
}

func (h *UniwillHardware) TdpDescriptors() ([]string, error) {
	return nil, ErrUnimplemented
}

func (h *UniwillHardware) TdpMin(index int) (uint8, error) {
	return 0, ErrUnimplemented
}

func (h *UniwillHardware) TdpMax(index int) (uint8, error) {
	return 0, ErrUnimplemented
}

func (h *UniwillHardware) SetTdp(index int, value uint8) error {
	return ErrUnimplemented
}

func (h *UniwillHardware) GetTdp(index int) (uint8, error) {
	return 0, ErrUnimplemented
}

// IsUnsupported reports whether err means that a capability is absent on this device,
// either temporarily for this unit or permanently for the hardware family.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrDeviceNotAvailable) || errors.Is(err, ErrUnimplemented)
}
