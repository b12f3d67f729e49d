package patchcord

import "math"

// maxFilterAngle caps the filter coefficient argument at asin(0.5), which
// corresponds to a cutoff of one sixth of the sample rate. Beyond that the
// integrators go unstable, so higher cutoffs are silently clamped.
const maxFilterAngle = 0.5235987755982988

// Filter is a 12 dB/octave state-variable filter providing simultaneous
// lowpass, bandpass and highpass outputs. The lowpass and bandpass outputs
// are the filter's integrator state; the highpass output is recomputed every
// tick. Resonance must be positive: values near zero damp heavily, larger
// values resonate more.
type Filter struct {
	// Inputs
	AudioIn   float32
	Cutoff    float32 // in Hz
	Resonance float32

	// Outputs
	LowpassOut  float32
	BandpassOut float32
	HighpassOut float32

	dt float32
}

// NewFilter registers a filter with the given initial cutoff and resonance.
func NewFilter(rack *Rack, cutoff, resonance float32) *Filter {
	f := &Filter{Cutoff: cutoff, Resonance: resonance, dt: rack.DT()}
	rack.Register(f)
	return f
}

func (fl *Filter) Update() {
	f := 2 * float32(math.Sin(math.Min(math.Pi*float64(fl.Cutoff)*float64(fl.dt), maxFilterAngle)))
	q := 1 / fl.Resonance

	// The integrator order matters: lowpass uses the old bandpass, highpass
	// uses the old bandpass and the new lowpass, bandpass uses the new
	// highpass.
	fl.LowpassOut += f * fl.BandpassOut
	fl.HighpassOut = fl.AudioIn - q*fl.BandpassOut - fl.LowpassOut
	fl.BandpassOut += f * fl.HighpassOut
}
