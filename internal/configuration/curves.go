package configuration

// CurveSteps maps a temperature in °C to a fan speed in percent.
type CurveSteps map[int]int

type CurveConfig struct {
	ID    string     `json:"id"`
	Steps CurveSteps `json:"steps"`
}
