package control_loop

// DirectControlLoop is a very simple control that directly applies the given
// target speed. It can also be used to gracefully approach the target by
// utilizing the "maxChangePerCycle" property.
type DirectControlLoop struct {
	// limits the maximum allowed speed change per cycle, nil means unlimited
	maxChangePerCycle *int
	last              *uint8
}

// NewDirectControlLoop creates a DirectControlLoop, which is a very simple control that directly applies the given
// target speed. It can also be used to gracefully approach the target by
// utilizing the "maxChangePerCycle" property.
func NewDirectControlLoop(
	// can be used to limit the maximum allowed speed change per cycle
	maxChangePerCycle *int,
) *DirectControlLoop {
	return &DirectControlLoop{
		maxChangePerCycle: maxChangePerCycle,
	}
}

func (l *DirectControlLoop) Cycle(target uint8) uint8 {
	result := target
	if l.last != nil && l.maxChangePerCycle != nil {
		step := *l.maxChangePerCycle
		last := int(*l.last)
		diff := int(target) - last
		if diff > step {
			result = uint8(last + step)
		} else if diff < -step {
			result = uint8(last - step)
		}
	}

	l.last = &result
	return result
}

// Reset forgets the last cycle, the next cycle applies its target directly
func (l *DirectControlLoop) Reset() {
	l.last = nil
}
