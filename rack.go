package patchcord

import (
	"github.com/viterin/vek/vek32"
)

// DefaultSampleRate is the reference sample rate of the engine.
const DefaultSampleRate = 48000

// DefaultMasterGain is the attenuation applied to the accumulated mix so a
// patch with a few full-scale speakers does not immediately clip.
const DefaultMasterGain = 0.1

// Rack holds the modules of a patch in registration order and advances them
// one tick at a time. It also carries the stereo mix bus that Speaker modules
// accumulate into.
//
// The rack holds only non-owning references: modules are created and kept
// alive by the composing code and must be unregistered before they are
// discarded. Register and Unregister must not be called while Tick or Render
// is executing; build the patch before starting playback and tear it down
// after stopping.
type Rack struct {
	modules     []Module
	sampleRate  int
	dt          float32
	master      float32
	left, right float32
	peak        float32
}

// NewRack returns an empty rack running at the given sample rate. The sample
// rate must be positive; it is fixed for the lifetime of the rack.
func NewRack(sampleRate int) *Rack {
	return &Rack{
		sampleRate: sampleRate,
		dt:         1 / float32(sampleRate),
		master:     DefaultMasterGain,
	}
}

// SampleRate returns the sample rate the rack was created with.
func (r *Rack) SampleRate() int { return r.sampleRate }

// DT returns the duration of one tick in seconds, 1/SampleRate.
func (r *Rack) DT() float32 { return r.dt }

// MasterGain returns the attenuation applied to the mix bus on output.
func (r *Rack) MasterGain() float32 { return r.master }

// SetMasterGain changes the output attenuation. Not safe to call while the
// rack is being rendered.
func (r *Rack) SetMasterGain(gain float32) { r.master = gain }

// Register appends a module to the rack. Module constructors call this, so
// update order is exactly construction order.
func (r *Rack) Register(m Module) {
	r.modules = append(r.modules, m)
}

// Unregister removes a module from the rack, preserving the order of the
// remaining modules. Removing a module that is not registered is a no-op.
func (r *Rack) Unregister(m Module) {
	for i, mod := range r.modules {
		if mod == m {
			r.modules = append(r.modules[:i], r.modules[i+1:]...)
			return
		}
	}
}

// Mix adds one frame to the stereo mix bus. Speaker modules call this from
// their Update; the bus is cleared at the start of every tick.
func (r *Rack) Mix(left, right float32) {
	r.left += left
	r.right += right
}

// Tick advances the patch by one sample: it clears the mix bus, updates every
// module in registration order and returns the accumulated, unattenuated
// stereo frame.
func (r *Rack) Tick() (left, right float32) {
	r.left, r.right = 0, 0
	for _, m := range r.modules {
		m.Update()
	}
	return r.left, r.right
}

// Render fills buffer with interleaved stereo frames, ticking the patch once
// per frame and applying the master gain to the whole block. It performs no
// allocation and fills the buffer completely. A trailing odd sample is left
// untouched.
func (r *Rack) Render(buffer []float32) {
	frames := len(buffer) / 2
	for i := 0; i < frames; i++ {
		buffer[2*i], buffer[2*i+1] = r.Tick()
	}
	block := buffer[:2*frames]
	if len(block) == 0 {
		return
	}
	vek32.MulNumber_Inplace(block, r.master)
	peak := vek32.Max(block)
	if m := -vek32.Min(block); m > peak {
		peak = m
	}
	r.peak = peak
}

// Peak reports the absolute peak of the last rendered block, after the master
// gain. It is a monitoring aid; reading it concurrently with Render may
// return a value from either the previous or the current block.
func (r *Rack) Peak() float32 { return r.peak }
