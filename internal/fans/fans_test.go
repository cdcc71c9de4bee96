package fans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ioctl"
	"github.com/uw2go/uw2go/internal/testingutils"
)

func newDevice(t *testing.T) (*hal.UniwillHardware, *testingutils.FakeChannel) {
	channel := testingutils.NewUniwillChannel()
	device, err := hal.NewUniwillHardware(channel)
	require.NoError(t, err)
	return device, channel
}

func newTestFan(t *testing.T, config configuration.FanConfig) (Fan, *testingutils.FakeChannel) {
	device, channel := newDevice(t)
	fan, err := NewFan(config, device, 3)
	require.NoError(t, err)
	return fan, channel
}

func TestNewFan(t *testing.T) {
	// GIVEN
	fan, _ := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0, NeverStop: true})

	// THEN
	assert.Equal(t, "cpu", fan.GetId())
	assert.Equal(t, "Fan 0 (cpu)", fan.GetLabel())
	assert.Equal(t, 0, fan.GetIndex())
	assert.True(t, fan.ShouldNeverStop())
	assert.True(t, fan.IsAuto())
	assert.Nil(t, fan.GetLastSetSpeed())
	// raw minimum 20 of 0xC8
	assert.Equal(t, uint8(10), fan.GetMinSpeed())
	assert.True(t, fan.Supports(FeatureFanOff))
	assert.True(t, fan.Supports(FeatureTemperatureSensor))
	assert.Equal(t, 45.0, fan.GetTemperatureAvg())
}

func TestNewFan_InvalidIndex(t *testing.T) {
	// GIVEN
	device, _ := newDevice(t)

	// WHEN
	fan, err := NewFan(configuration.FanConfig{ID: "third", Index: 2}, device, 3)

	// THEN
	assert.Nil(t, fan)
	assert.ErrorIs(t, err, hal.ErrDeviceNotAvailable)
}

func TestNewFan_MissingCapabilities(t *testing.T) {
	// GIVEN
	device, channel := newDevice(t)
	channel.Set(ioctl.UwFanTemp1, 0)
	channel.Set(ioctl.UwFansOffAvailable, 0)

	// WHEN
	fan, err := NewFan(configuration.FanConfig{ID: "gpu", Index: 1}, device, 3)

	// THEN
	require.NoError(t, err)
	assert.False(t, fan.Supports(FeatureTemperatureSensor))
	assert.False(t, fan.Supports(FeatureFanOff))
	assert.Equal(t, 0.0, fan.GetTemperatureAvg())
}

func TestUniwillFan_SetSpeed(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "gpu", Index: 1})

	// WHEN
	err := fan.SetSpeed(50)

	// THEN
	require.NoError(t, err)
	write, _ := channel.LastWrite()
	assert.Equal(t, testingutils.Write{Request: ioctl.UwWriteFanSpeed1, Value: 100}, write)
	assert.False(t, fan.IsAuto())
	require.NotNil(t, fan.GetLastSetSpeed())
	assert.Equal(t, uint8(50), *fan.GetLastSetSpeed())
}

func TestUniwillFan_SetSpeed_Invalid(t *testing.T) {
	// GIVEN
	fan, _ := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})

	// WHEN
	err := fan.SetSpeed(150)

	// THEN
	assert.ErrorIs(t, err, hal.ErrInvalidArguments)
	assert.True(t, fan.IsAuto())
}

func TestUniwillFan_GetSpeed(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})
	channel.Set(ioctl.UwFanSpeed0, 150)

	// WHEN
	speed, err := fan.GetSpeed()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, uint8(75), speed)
}

func TestUniwillFan_UpdateTemperature(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})

	// WHEN
	channel.Set(ioctl.UwFanTemp0, 60)
	_, err := fan.UpdateTemperature()
	require.NoError(t, err)
	channel.Set(ioctl.UwFanTemp0, 75)
	temp, err := fan.UpdateTemperature()
	require.NoError(t, err)

	// THEN
	assert.Equal(t, uint8(75), temp)
	// window of 3: 45, 60, 75
	assert.Equal(t, 60.0, fan.GetTemperatureAvg())
}

func TestUniwillFan_UpdateTemperature_NotAvailable(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})
	channel.Set(ioctl.UwFanTemp0, 0)

	// WHEN
	_, err := fan.UpdateTemperature()

	// THEN
	assert.ErrorIs(t, err, hal.ErrDeviceNotAvailable)
	assert.Equal(t, 45.0, fan.GetTemperatureAvg())
}

func TestSetAllAuto(t *testing.T) {
	// GIVEN
	device, channel := newDevice(t)
	cpu, err := NewFan(configuration.FanConfig{ID: "cpu", Index: 0}, device, 3)
	require.NoError(t, err)
	gpu, err := NewFan(configuration.FanConfig{ID: "gpu", Index: 1}, device, 3)
	require.NoError(t, err)
	FanMap.Set(cpu.GetId(), cpu)
	FanMap.Set(gpu.GetId(), gpu)
	defer FanMap.Clear()

	require.NoError(t, cpu.SetSpeed(30))
	require.NoError(t, gpu.SetSpeed(30))

	// WHEN
	err = cpu.SetAuto()

	// THEN
	require.NoError(t, err)
	write, _ := channel.LastWrite()
	assert.Equal(t, testingutils.Write{Request: ioctl.UwWriteFanAuto, Value: 0}, write)
	assert.True(t, cpu.IsAuto())
	assert.True(t, gpu.IsAuto())
	assert.Nil(t, gpu.GetLastSetSpeed())
}
