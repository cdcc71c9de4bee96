package controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/curves"
	"github.com/uw2go/uw2go/internal/fans"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ioctl"
	"github.com/uw2go/uw2go/internal/testingutils"
)

type MockCurve struct {
	ID    string
	Value uint8
	Err   error
}

func (c MockCurve) GetId() string {
	return c.ID
}

func (c MockCurve) Evaluate(temperature float64) (uint8, error) {
	return c.Value, c.Err
}

func (c MockCurve) CurrentValue() uint8 {
	return c.Value
}

func newTestFan(t *testing.T, config configuration.FanConfig) (fans.Fan, *testingutils.FakeChannel) {
	channel := testingutils.NewUniwillChannel()
	device, err := hal.NewUniwillHardware(channel)
	require.NoError(t, err)
	fan, err := fans.NewFan(config, device, 3)
	require.NoError(t, err)
	return fan, channel
}

func TestApplySpeedLimits_BelowMinimum(t *testing.T) {
	// GIVEN
	fan, _ := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})

	// WHEN
	result := applySpeedLimits(fan, 5)

	// THEN
	assert.Equal(t, fan.GetMinSpeed(), result)
}

func TestApplySpeedLimits_FanOff(t *testing.T) {
	// GIVEN
	fan, _ := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})

	// WHEN
	result := applySpeedLimits(fan, 0)

	// THEN
	assert.Equal(t, uint8(0), result)
}

func TestApplySpeedLimits_NeverStop(t *testing.T) {
	// GIVEN
	fan, _ := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0, NeverStop: true})

	// WHEN
	result := applySpeedLimits(fan, 0)

	// THEN
	assert.Equal(t, fan.GetMinSpeed(), result)
}

func TestApplySpeedLimits_FanOffUnavailable(t *testing.T) {
	// GIVEN
	channel := testingutils.NewUniwillChannel()
	channel.Set(ioctl.UwFansOffAvailable, 0)
	device, err := hal.NewUniwillHardware(channel)
	require.NoError(t, err)
	fan, err := fans.NewFan(configuration.FanConfig{ID: "cpu", Index: 0}, device, 3)
	require.NoError(t, err)

	// WHEN
	result := applySpeedLimits(fan, 0)

	// THEN
	assert.Equal(t, fan.GetMinSpeed(), result)
}

func TestApplySpeedLimits_InRange(t *testing.T) {
	// GIVEN
	fan, _ := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})

	// WHEN
	result := applySpeedLimits(fan, 60)

	// THEN
	assert.Equal(t, uint8(60), result)
}

func TestUpdateFanSpeed(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0, Curve: "linear"})
	curve, err := curves.NewSpeedCurve(configuration.CurveConfig{
		ID:    "linear",
		Steps: configuration.CurveSteps{0: 0, 100: 100},
	})
	require.NoError(t, err)
	controller := NewFanController(fan, curve, time.Second)

	// WHEN
	err = controller.UpdateFanSpeed()

	// THEN
	require.NoError(t, err)
	// temperature 45 maps to 45%
	write, ok := channel.LastWrite()
	require.True(t, ok)
	assert.Equal(t, ioctl.UwWriteFanSpeed0, write.Request)
	assert.Equal(t, hal.PercentToRaw(45), write.Value)
	assert.Equal(t, uint8(45), *fan.GetLastSetSpeed())
	assert.False(t, fan.IsAuto())
}

func TestUpdateFanSpeed_Unchanged(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})
	controller := NewFanController(fan, MockCurve{ID: "fixed", Value: 50}, time.Second)
	require.NoError(t, controller.UpdateFanSpeed())
	writes := channel.WriteCount()

	// WHEN
	err := controller.UpdateFanSpeed()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, writes, channel.WriteCount())
}

func TestUpdateFanSpeed_CurveError(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})
	curveErr := errors.New("broken curve")
	controller := NewFanController(fan, MockCurve{ID: "broken", Err: curveErr}, time.Second)

	// WHEN
	err := controller.UpdateFanSpeed()

	// THEN
	assert.ErrorIs(t, err, curveErr)
	assert.Equal(t, 0, channel.WriteCount())
}

func TestRun_RestoresAutoOnCancel(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})
	controller := NewFanController(fan, MockCurve{ID: "fixed", Value: 70}, 10*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// WHEN
	err := controller.Run(ctx)

	// THEN
	require.NoError(t, err)
	write, ok := channel.LastWrite()
	require.True(t, ok)
	assert.Equal(t, ioctl.UwWriteFanAuto, write.Request)
	assert.True(t, fan.IsAuto())
}

func TestRun_RestoresAutoOnError(t *testing.T) {
	// GIVEN
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})
	channel.Fail(ioctl.UwWriteFanSpeed0, errors.New("io error"))
	controller := NewFanController(fan, MockCurve{ID: "fixed", Value: 70}, 10*time.Millisecond)

	// WHEN
	err := controller.Run(context.Background())

	// THEN
	assert.Error(t, err)
	write, ok := channel.LastWrite()
	require.True(t, ok)
	assert.Equal(t, ioctl.UwWriteFanAuto, write.Request)
}

func TestUpdateFanSpeed_MaxSpeedChangePerCycle(t *testing.T) {
	// GIVEN
	maxChange := 10
	fan, channel := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0, MaxSpeedChangePerCycle: &maxChange})
	curve := &MockCurve{ID: "fixed", Value: 30}
	controller := NewFanController(fan, curve, time.Second)
	require.NoError(t, controller.UpdateFanSpeed())

	// WHEN
	curve.Value = 80
	err := controller.UpdateFanSpeed()

	// THEN
	require.NoError(t, err)
	write, ok := channel.LastWrite()
	require.True(t, ok)
	assert.Equal(t, hal.PercentToRaw(40), write.Value)
	assert.Equal(t, uint8(40), *fan.GetLastSetSpeed())
}

func TestUpdateFanSpeed_RewritesAfterDeviceAuto(t *testing.T) {
	// GIVEN
	channel := testingutils.NewUniwillChannel()
	device, err := hal.NewUniwillHardware(channel)
	require.NoError(t, err)
	fan, err := fans.NewFan(configuration.FanConfig{ID: "cpu", Index: 0}, device, 3)
	require.NoError(t, err)
	fans.FanMap.Set(fan.GetId(), fan)
	defer fans.FanMap.Clear()

	controller := NewFanController(fan, MockCurve{ID: "fixed", Value: 60}, time.Second)
	require.NoError(t, controller.UpdateFanSpeed())
	require.NoError(t, fans.SetAllAuto(device))
	require.True(t, fan.IsAuto())

	// WHEN
	err = controller.UpdateFanSpeed()

	// THEN
	require.NoError(t, err)
	write, ok := channel.LastWrite()
	require.True(t, ok)
	assert.Equal(t, ioctl.UwWriteFanSpeed0, write.Request)
	assert.Equal(t, hal.PercentToRaw(60), write.Value)
	assert.False(t, fan.IsAuto())
	assert.Equal(t, uint8(60), *fan.GetLastSetSpeed())
}

type recordingLoop struct {
	cycles []uint8
	resets int
}

func (l *recordingLoop) Cycle(target uint8) uint8 {
	l.cycles = append(l.cycles, target)
	return target
}

func (l *recordingLoop) Reset() {
	l.resets++
}

func TestRun_UsesControlLoop(t *testing.T) {
	// GIVEN
	fan, _ := newTestFan(t, configuration.FanConfig{ID: "cpu", Index: 0})
	loop := &recordingLoop{}
	controller := &fanController{
		fan:         fan,
		curve:       MockCurve{ID: "fixed", Value: 40},
		controlLoop: loop,
		updateRate:  10 * time.Millisecond,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// WHEN
	err := controller.Run(ctx)

	// THEN
	require.NoError(t, err)
	require.NotEmpty(t, loop.cycles)
	assert.Equal(t, uint8(40), loop.cycles[0])
	assert.Equal(t, 1, loop.resets)
	assert.True(t, fan.IsAuto())
}
