package configuration

import (
	"errors"
	"fmt"

	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
	"golang.org/x/exp/slices"
)

func Validate() error {
	return validateConfig(&CurrentConfig)
}

func validateConfig(config *Configuration) error {
	if len(config.Device) <= 0 {
		return errors.New("no device path configured")
	}

	err := validateCurves(config)
	if err != nil {
		return err
	}
	return validateFans(config)
}

func validateCurves(config *Configuration) error {
	var ids []string
	for _, curveConfig := range config.Curves {
		if len(curveConfig.ID) <= 0 {
			return errors.New("curve: missing id")
		}
		if slices.Contains(ids, curveConfig.ID) {
			return fmt.Errorf("duplicate curve id detected: %s", curveConfig.ID)
		}
		ids = append(ids, curveConfig.ID)

		if !isCurveConfigInUse(curveConfig, config.Fans) {
			ui.Warning("Unused curve configuration: %s", curveConfig.ID)
		}

		if len(curveConfig.Steps) <= 0 {
			return fmt.Errorf("curve %s: no steps defined", curveConfig.ID)
		}

		temps := make([]int, 0, len(curveConfig.Steps))
		for temp := range curveConfig.Steps {
			temps = append(temps, temp)
		}
		slices.Sort(temps)
		for _, temp := range temps {
			speed := curveConfig.Steps[temp]
			if temp < 0 || temp > 255 {
				return fmt.Errorf("curve %s: temperature %d out of range [0..255]", curveConfig.ID, temp)
			}
			if speed < 0 || speed > hal.MaxFanSpeedPercent {
				return fmt.Errorf("curve %s: speed %d at %d°C out of range [0..%d]", curveConfig.ID, speed, temp, hal.MaxFanSpeedPercent)
			}
		}
	}

	return nil
}

func isCurveConfigInUse(config CurveConfig, fans []FanConfig) bool {
	for _, fanConfig := range fans {
		if fanConfig.Curve == config.ID {
			return true
		}
	}
	return false
}

func curveIdExists(curveId string, config *Configuration) bool {
	return slices.ContainsFunc(config.Curves, func(curve CurveConfig) bool {
		return curve.ID == curveId
	})
}

func validateFans(config *Configuration) error {
	var ids []string
	var indices []int
	for _, fanConfig := range config.Fans {
		if len(fanConfig.ID) <= 0 {
			return errors.New("fan: missing id")
		}
		if slices.Contains(ids, fanConfig.ID) {
			return fmt.Errorf("duplicate fan id detected: %s", fanConfig.ID)
		}
		ids = append(ids, fanConfig.ID)

		if fanConfig.Index < 0 || fanConfig.Index >= hal.UniwillFanCount {
			return fmt.Errorf("fan %s: invalid index %d, must be in [0..%d]", fanConfig.ID, fanConfig.Index, hal.UniwillFanCount-1)
		}
		if slices.Contains(indices, fanConfig.Index) {
			return fmt.Errorf("fan %s: index %d is already used by another fan", fanConfig.ID, fanConfig.Index)
		}
		indices = append(indices, fanConfig.Index)

		if len(fanConfig.Curve) > 0 && !curveIdExists(fanConfig.Curve, config) {
			return fmt.Errorf("fan %s: no curve definition with id '%s' found", fanConfig.ID, fanConfig.Curve)
		}

		if fanConfig.MaxSpeedChangePerCycle != nil && *fanConfig.MaxSpeedChangePerCycle <= 0 {
			return fmt.Errorf("fan %s: maxSpeedChangePerCycle must be positive", fanConfig.ID)
		}
	}

	return nil
}
