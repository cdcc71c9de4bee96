package controller

import (
	"context"
	"time"

	"github.com/uw2go/uw2go/internal/control_loop"
	"github.com/uw2go/uw2go/internal/curves"
	"github.com/uw2go/uw2go/internal/fans"
	"github.com/uw2go/uw2go/internal/ui"
)

type FanController interface {
	Run(ctx context.Context) error
	UpdateFanSpeed() error
}

type fanController struct {
	fan         fans.Fan
	curve       curves.SpeedCurve
	controlLoop control_loop.ControlLoop
	updateRate  time.Duration
}

func NewFanController(fan fans.Fan, curve curves.SpeedCurve, updateRate time.Duration) FanController {
	return &fanController{
		fan:         fan,
		curve:       curve,
		controlLoop: control_loop.NewDirectControlLoop(fan.GetConfig().MaxSpeedChangePerCycle),
		updateRate:  updateRate,
	}
}

func (f *fanController) Run(ctx context.Context) error {
	fan := f.fan

	ui.Info("Starting controller loop for fan '%s' (curve '%s', min speed %d%%)", fan.GetId(), f.curve.GetId(), fan.GetMinSpeed())

	tick := time.NewTicker(f.updateRate)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			ui.Info("Stopping controller for fan %s, handing control back to the device...", fan.GetId())
			f.restoreAuto()
			return nil
		case <-tick.C:
			err := f.UpdateFanSpeed()
			if err != nil {
				ui.ErrorAndNotify("Fan Control Error", "Error in FanController for fan %s: %v", fan.GetId(), err)
				ui.Info("Trying to restore fan settings for %s...", fan.GetId())
				f.restoreAuto()
				return err
			}
		}
	}
}

func (f *fanController) restoreAuto() {
	if err := f.fan.SetAuto(); err != nil {
		ui.Warning("Unable to restore automatic control of fan %s, make sure it is running!", f.fan.GetId())
	}
	f.controlLoop.Reset()
}

func (f *fanController) UpdateFanSpeed() error {
	target, err := f.calculateTargetSpeed()
	if err != nil {
		return err
	}

	// the fan forgets its last speed whenever the device takes over control,
	// e.g. after fans.SetAllAuto, so the target is written again
	lastSetSpeed := f.fan.GetLastSetSpeed()
	if lastSetSpeed != nil && *lastSetSpeed == target {
		return nil
	}

	ui.Debug("Setting fan %s to %d%%", f.fan.GetId(), target)
	return f.fan.SetSpeed(target)
}

// calculateTargetSpeed evaluates the curve for the average temperature of the fan
// and limits the result to what the fan supports
func (f *fanController) calculateTargetSpeed() (uint8, error) {
	avgTemp := f.fan.GetTemperatureAvg()
	speed, err := f.curve.Evaluate(avgTemp)
	if err != nil {
		return 0, err
	}
	speed = f.controlLoop.Cycle(speed)
	return applySpeedLimits(f.fan, speed), nil
}

// applySpeedLimits raises speeds below the minimum of the device to the minimum,
// unless the fan is allowed to stop and 0 is requested
func applySpeedLimits(fan fans.Fan, speed uint8) uint8 {
	if speed > fans.MaxSpeed {
		return fans.MaxSpeed
	}
	if speed == 0 && fan.Supports(fans.FeatureFanOff) && !fan.ShouldNeverStop() {
		return 0
	}
	if speed < fan.GetMinSpeed() {
		return fan.GetMinSpeed()
	}
	return speed
}
