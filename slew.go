package patchcord

import "math"

// LinearSlew moves its output toward Target at a bounded linear rate, at most
// Rate units per second. Useful for portamento on linear quantities and for
// debouncing stepped control signals.
type LinearSlew struct {
	// Inputs
	Target float32
	Rate   float32 // maximum change in units per second

	// Outputs
	Out float32

	dt float32
}

// NewLinearSlew registers a linear slew limiter with the given rate.
func NewLinearSlew(rack *Rack, rate float32) *LinearSlew {
	s := &LinearSlew{Rate: rate, dt: rack.DT()}
	rack.Register(s)
	return s
}

func (s *LinearSlew) Update() {
	delta := s.Target - s.Out
	if limit := s.Rate * s.dt; delta > limit {
		delta = limit
	} else if delta < -limit {
		delta = -limit
	}
	s.Out += delta
}

// ExponentialSlew moves its output toward Target at a bounded exponential
// rate, at most Rate octaves per second. It operates on strictly positive
// quantities such as frequencies; Target and Out must stay above zero, which
// is the caller's responsibility.
type ExponentialSlew struct {
	// Inputs
	Target float32
	Rate   float32 // maximum change in octaves per second

	// Outputs
	Out float32

	dt float32
}

// NewExponentialSlew registers an exponential slew limiter with the given
// rate, starting from the given initial output.
func NewExponentialSlew(rack *Rack, rate, initial float32) *ExponentialSlew {
	s := &ExponentialSlew{Rate: rate, Out: initial, dt: rack.DT()}
	rack.Register(s)
	return s
}

func (s *ExponentialSlew) Update() {
	delta := float32(math.Log2(float64(s.Target / s.Out)))
	if limit := s.Rate * s.dt; delta > limit {
		delta = limit
	} else if delta < -limit {
		delta = -limit
	}
	s.Out *= exp2(delta)
}
