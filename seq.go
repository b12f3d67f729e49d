package patchcord

import "errors"

// Sequencer cycles through a fixed list of frequencies. Every time ClockIn
// goes high (> 0) the next frequency in the list is selected, wrapping around
// after the last one. GateOut is a cleaned copy of the clock: 1 while ClockIn
// is high, 0 while it is low, recomputed every tick.
//
// The Frequencies slice may be modified while running, but its length must
// not change after construction.
type Sequencer struct {
	// Inputs
	ClockIn     float32
	Frequencies []float32

	// Outputs
	FrequencyOut float32
	GateOut      float32

	index int
}

// NewSequencer registers a sequencer stepping through the given notes, parsed
// with NoteFrequency. The internal index starts at the last element so the
// first clock pulse selects the first note.
func NewSequencer(rack *Rack, notes ...string) (*Sequencer, error) {
	if len(notes) == 0 {
		return nil, errors.New("sequencer needs at least one note")
	}
	frequencies := make([]float32, len(notes))
	for i, note := range notes {
		f, err := NoteFrequency(note)
		if err != nil {
			return nil, err
		}
		frequencies[i] = f
	}
	s := &Sequencer{Frequencies: frequencies, index: len(frequencies) - 1}
	rack.Register(s)
	return s, nil
}

func (s *Sequencer) Update() {
	if s.ClockIn > 0 && s.GateOut <= 0 {
		s.index++
		s.index %= len(s.Frequencies)
	}
	s.FrequencyOut = s.Frequencies[s.index]
	if s.ClockIn > 0 {
		s.GateOut = 1
	} else {
		s.GateOut = 0
	}
}
