package patchcord

// Amplifier multiplies its audio input by a variable amplitude. It is
// stateless; the product is evaluated fresh every tick.
type Amplifier struct {
	// Inputs
	AudioIn   float32
	Amplitude float32

	// Outputs
	AudioOut float32
}

// NewAmplifier registers an amplifier with the given initial amplitude.
func NewAmplifier(rack *Rack, amplitude float32) *Amplifier {
	a := &Amplifier{Amplitude: amplitude}
	rack.Register(a)
	return a
}

func (a *Amplifier) Update() {
	a.AudioOut = a.AudioIn * a.Amplitude
}
