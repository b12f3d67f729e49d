package patchcord_test

import (
	"math"
	"testing"

	"github.com/aholari/patchcord"
)

// pulse holds the clock high for one tick and low for another, returning the
// frequency selected while the clock was high.
func pulse(rack *patchcord.Rack, seq *patchcord.Sequencer) float32 {
	seq.ClockIn = 1
	rack.Tick()
	f := seq.FrequencyOut
	seq.ClockIn = 0
	rack.Tick()
	return f
}

func TestSequencerStepsAndWraps(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	seq, err := patchcord.NewSequencer(rack, "C4", "E4", "G4", "C5")
	if err != nil {
		t.Fatalf("NewSequencer: %v", err)
	}
	want := []float64{261.63, 329.63, 392.00, 523.25}
	for cycle := 0; cycle < 2; cycle++ { // second cycle checks the wrap
		for i, w := range want {
			if got := float64(pulse(rack, seq)); math.Abs(got-w) > 0.01 {
				t.Fatalf("cycle %v pulse %v: frequency %v, want %v", cycle, i, got, w)
			}
		}
	}
}

func TestSequencerAdvancesOnRisingEdgeOnly(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	seq, err := patchcord.NewSequencer(rack, "C4", "E4")
	if err != nil {
		t.Fatalf("NewSequencer: %v", err)
	}
	seq.ClockIn = 1
	rack.Tick()
	first := seq.FrequencyOut
	for i := 0; i < 10; i++ { // a held clock must not advance the step
		rack.Tick()
	}
	if seq.FrequencyOut != first {
		t.Errorf("held clock advanced the sequence from %v to %v", first, seq.FrequencyOut)
	}
}

func TestSequencerGateMirrorsClock(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	seq, err := patchcord.NewSequencer(rack, "C4")
	if err != nil {
		t.Fatalf("NewSequencer: %v", err)
	}
	for i, clock := range []float32{1, 1, 0, 1, 0, 0, 2, -1} {
		seq.ClockIn = clock
		rack.Tick()
		want := float32(0)
		if clock > 0 {
			want = 1
		}
		if seq.GateOut != want {
			t.Errorf("tick %v: gate %v for clock %v, want %v", i, seq.GateOut, clock, want)
		}
	}
}

func TestSequencerConstructionErrors(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	for _, notes := range [][]string{
		{"H4"},
		{"C4", "E4", "X3"},
		{"C"}, // no octave
		{},
	} {
		if _, err := patchcord.NewSequencer(rack, notes...); err == nil {
			t.Errorf("NewSequencer(%q) succeeded, want error", notes)
		}
	}
	// a failed construction must not leave a half-built module in the rack
	rack.Tick()
}
