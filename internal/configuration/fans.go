package configuration

type FanConfig struct {
	ID string `json:"id"`
	// Index of the fan on the device, starting at 0
	Index int `json:"index"`
	// NeverStop keeps the fan at the device's minimum speed instead of stopping it
	NeverStop bool `json:"neverStop"`
	// Curve is the id of the curve controlling this fan, empty for automatic control by the device
	Curve string `json:"curve,omitempty"`
	// MaxSpeedChangePerCycle limits the speed change in percent per controller cycle, nil means unlimited
	MaxSpeedChangePerCycle *int `json:"maxSpeedChangePerCycle,omitempty"`
}
