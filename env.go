package patchcord

import "math"

type envState int

const (
	envStateAttack envState = iota
	envStateDecay
	envStateRelease
)

// Envelope is an attack/decay/release envelope generator. GateIn going high
// (> 0) triggers the attack phase, which raises AmplitudeOut linearly to 1 in
// Attack seconds. The decay phase then halves AmplitudeOut once every Decay
// seconds for as long as the gate stays high. GateIn going low (<= 0) forces
// the release phase, which halves AmplitudeOut once every Release seconds.
//
// A fresh envelope starts in the release phase, so its amplitude decays
// toward zero until the gate first goes high. The attack, decay and release
// times must be nonzero; they are ports and may be modulated while running.
type Envelope struct {
	// Inputs
	GateIn  float32
	Attack  float32 // rise time in seconds
	Decay   float32 // half-life in seconds while the gate is high
	Release float32 // half-life in seconds after the gate goes low

	// Outputs
	AmplitudeOut float32

	state envState
	dt    float32
}

// NewEnvelope registers an envelope with the given initial phase times.
func NewEnvelope(rack *Rack, attack, decay, release float32) *Envelope {
	e := &Envelope{
		Attack:  attack,
		Decay:   decay,
		Release: release,
		state:   envStateRelease,
		dt:      rack.DT(),
	}
	rack.Register(e)
	return e
}

func (e *Envelope) Update() {
	if e.GateIn <= 0 {
		e.state = envStateRelease
	} else if e.state == envStateRelease {
		e.state = envStateAttack
	}

	switch e.state {
	case envStateAttack:
		e.AmplitudeOut += e.dt / e.Attack
		if e.AmplitudeOut >= 1 {
			e.AmplitudeOut = 1
			e.state = envStateDecay
		}
	case envStateDecay:
		e.AmplitudeOut *= exp2(-e.dt / e.Decay)
	case envStateRelease:
		e.AmplitudeOut *= exp2(-e.dt / e.Release)
	}
}

func exp2(x float32) float32 {
	return float32(math.Exp2(float64(x)))
}
