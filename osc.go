package patchcord

import "math"

// Oscillator is a numerically controlled oscillator. Its single phase state
// lives in the sawtooth output: every tick the phase is recovered from
// SawtoothOut, advanced by Frequency*dt, wrapped into [0,1), and all four
// waveform outputs are derived from the wrapped phase. Overwriting
// SawtoothOut therefore resets the phase, which patches exploit for hard
// sync.
//
// Frequency may be zero or negative; the phase then stands still or runs
// backwards.
type Oscillator struct {
	// Inputs
	Frequency float32 // in Hz

	// Outputs
	SawtoothOut float32
	SineOut     float32
	SquareOut   float32
	TriangleOut float32

	dt float32
}

// NewOscillator registers an oscillator with the given initial frequency.
func NewOscillator(rack *Rack, frequency float32) *Oscillator {
	o := &Oscillator{
		Frequency:   frequency,
		SawtoothOut: -1,
		SquareOut:   1,
		dt:          rack.DT(),
	}
	rack.Register(o)
	return o
}

func (o *Oscillator) Update() {
	phase := float64(o.SawtoothOut)*0.5 + 0.5
	phase += float64(o.Frequency * o.dt)
	phase -= math.Floor(phase)

	o.SawtoothOut = float32(phase)*2 - 1
	o.SineOut = float32(math.Sin(2 * math.Pi * phase))
	// round-half-to-even, so the square is still +1 at exactly phase 0.5
	o.SquareOut = float32(math.RoundToEven(phase))*-2 + 1
	o.TriangleOut = float32(math.Abs(phase-0.5))*4 - 1
}
