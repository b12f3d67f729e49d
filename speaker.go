package patchcord

// Speaker sends its inputs to the rack's mix bus. Multiple speakers may
// coexist in a patch; their inputs are summed and the total is attenuated by
// the rack's master gain on output.
type Speaker struct {
	// Inputs
	LeftIn  float32
	RightIn float32

	rack *Rack
}

// NewSpeaker registers a speaker on the given rack.
func NewSpeaker(rack *Rack) *Speaker {
	s := &Speaker{rack: rack}
	rack.Register(s)
	return s
}

func (s *Speaker) Update() {
	s.rack.Mix(s.LeftIn, s.RightIn)
}
