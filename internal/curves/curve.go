package curves

import (
	"fmt"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/uw2go/uw2go/internal/configuration"
)

type SpeedCurve interface {
	GetId() string
	// Evaluate calculates the fan speed for the given temperature in °C,
	// returns a value in [0..100]
	Evaluate(temperature float64) (value uint8, err error)
	// CurrentValue returns the result of the last evaluation
	CurrentValue() uint8
}

var (
	SpeedCurveMap = cmap.New[SpeedCurve]()
)

func NewSpeedCurve(config configuration.CurveConfig) (SpeedCurve, error) {
	if len(config.Steps) <= 0 {
		return nil, fmt.Errorf("no steps defined for curve: %s", config.ID)
	}

	steps := make(map[int]int, len(config.Steps))
	for temp, speed := range config.Steps {
		steps[temp] = speed
	}

	return &LinearSpeedCurve{
		Config: config,
		steps:  steps,
	}, nil
}

// GetSpeedCurve returns the registered curve with the given id.
func GetSpeedCurve(id string) (SpeedCurve, bool) {
	return SpeedCurveMap.Get(id)
}
