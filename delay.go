package patchcord

import "math"

// Delay is a tapped delay line with linear interpolation between adjacent
// samples, so the delay time may be a non-integer number of ticks and may be
// modulated smoothly. The history buffer is sized at construction for the
// maximum delay time and never grows; requested delay times outside
// [0, max] are silently clamped.
type Delay struct {
	// Inputs
	AudioIn   float32
	DelayTime float32 // in seconds

	// Outputs
	AudioOut float32

	buf  []float32
	head int
	dt   float32
}

// NewDelay registers a delay line able to delay its input by up to maxDelay
// seconds. The history starts out silent.
func NewDelay(rack *Rack, maxDelay float32) *Delay {
	n := int(math.Ceil(float64(maxDelay)/float64(rack.DT()))) + 1
	d := &Delay{buf: make([]float32, n), dt: rack.DT()}
	rack.Register(d)
	return d
}

func (d *Delay) Update() {
	// overwrite the oldest sample with the newest
	d.head++
	if d.head == len(d.buf) {
		d.head = 0
	}
	d.buf[d.head] = d.AudioIn

	t := d.DelayTime
	if maxTime := float32(len(d.buf)-1) * d.dt; t > maxTime {
		t = maxTime
	} else if t < 0 {
		t = 0
	}
	pos := t / d.dt
	idx := int(pos)
	frac := pos - float32(idx)

	i0 := d.head - idx
	if i0 < 0 {
		i0 += len(d.buf)
	}
	i1 := i0 - 1
	if i1 < 0 {
		i1 += len(d.buf)
	}
	d.AudioOut = d.buf[i0]*(1-frac) + d.buf[i1]*frac
}
