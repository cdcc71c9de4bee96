package control_loop

type ControlLoop interface {
	// Cycle advances the control loop towards the given target speed and
	// returns the speed to apply in this cycle
	Cycle(target uint8) uint8
	// Reset forgets all state, the next cycle starts from scratch
	Reset()
}

var _ ControlLoop = &DirectControlLoop{}
