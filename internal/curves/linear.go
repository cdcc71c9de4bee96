package curves

import (
	"math"
	"sync"

	"github.com/uw2go/uw2go/internal/configuration"
	"github.com/uw2go/uw2go/internal/hal"
	"github.com/uw2go/uw2go/internal/ui"
	"github.com/uw2go/uw2go/internal/util"
)

// LinearSpeedCurve interpolates linearly between temperature -> speed steps.
type LinearSpeedCurve struct {
	Config configuration.CurveConfig `json:"config"`
	Value  uint8                     `json:"value"`

	mu    sync.Mutex
	steps map[int]int
}

func (c *LinearSpeedCurve) GetId() string {
	return c.Config.ID
}

func (c *LinearSpeedCurve) Evaluate(temperature float64) (uint8, error) {
	interpolated := math.Round(util.CalculateInterpolatedCurveValue(c.steps, temperature))
	value := uint8(util.Clamp(int(interpolated), 0, hal.MaxFanSpeedPercent))

	ui.Debug("Evaluating curve '%s'. Temp '%.1f°C'. Desired speed: %d%%", c.Config.ID, temperature, value)
	c.setValue(value)
	return value, nil
}

func (c *LinearSpeedCurve) setValue(value uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Value = value
}

func (c *LinearSpeedCurve) CurrentValue() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Value
}
