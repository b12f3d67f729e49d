// Package oto binds a patchcord Rack to the system audio output using the
// ebitengine/oto library. The oto mixer pulls interleaved stereo float32
// samples from the rack on its own realtime goroutine; every module update of
// the patch runs on that goroutine, strictly sequentially.
package oto

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/aholari/patchcord"
)

// Context wraps an open audio device.
type Context struct {
	ctx        *oto.Context
	sampleRate int
}

// NewContext opens the default audio device for stereo float32 output at the
// given sample rate, with a buffer of bufferSize frames. It blocks until the
// device is ready.
func NewContext(sampleRate, bufferSize int) (*Context, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Second * time.Duration(bufferSize) / time.Duration(sampleRate),
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{ctx: ctx, sampleRate: sampleRate}, nil
}

// Player renders a rack to the audio device.
type Player struct {
	player *oto.Player
}

// NewPlayer prepares the rack for playback. The returned player is paused;
// call Start to begin producing sound.
func (c *Context) NewPlayer(rack *patchcord.Rack) *Player {
	return &Player{player: c.ctx.NewPlayer(&rackReader{rack: rack})}
}

// Start begins or resumes playback. The rack must not be mutated (modules
// registered or unregistered) until Stop has been called.
func (p *Player) Start() {
	p.player.Play()
}

// Stop pauses playback without resetting any module state; Start resumes
// where the patch left off.
func (p *Player) Stop() {
	p.player.Pause()
}

// Close stops playback and releases the player.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

// rackReader adapts a Rack to the io.Reader oto pulls samples through. Each
// Read renders exactly the requested number of frames.
type rackReader struct {
	rack *patchcord.Rack
	buf  []float32
}

func (r *rackReader) Read(p []byte) (int, error) {
	samples := len(p) / 4 / 2 * 2 // whole stereo frames only
	if cap(r.buf) < samples {
		r.buf = make([]float32, samples)
	}
	buf := r.buf[:samples]
	r.rack.Render(buf)
	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[4*i:], math.Float32bits(v))
	}
	return samples * 4, nil
}
