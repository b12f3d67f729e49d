package patchcord_test

import (
	"math"
	"testing"

	"github.com/aholari/patchcord"
)

func TestLinearSlewRampsAtRate(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	s := patchcord.NewLinearSlew(rack, 10) // 10 units per second
	s.Target = 1
	maxStep := float64(10) / sampleRate
	prev := float64(s.Out)
	for i := 0; i < sampleRate/5; i++ { // 0.2 s, twice the time needed
		rack.Tick()
		step := float64(s.Out) - prev
		if step < 0 || step > maxStep*1.0001 {
			t.Fatalf("tick %v: step %v outside [0, %v]", i, step, maxStep)
		}
		prev = float64(s.Out)
	}
	if got := float64(s.Out); math.Abs(got-1) > 1e-4 {
		t.Errorf("output settled at %v, want 1", got)
	}
}

func TestLinearSlewFollowsDownward(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	s := patchcord.NewLinearSlew(rack, 100)
	s.Out = 1
	s.Target = -1
	for i := 0; i < sampleRate/10; i++ {
		rack.Tick()
	}
	// after 0.1 s at 100 units/s the output has moved at most 10; it reaches -1
	if got := float64(s.Out); math.Abs(got+1) > 1e-4 {
		t.Errorf("output settled at %v, want -1", got)
	}
}

func TestExponentialSlewRampsInOctaves(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	s := patchcord.NewExponentialSlew(rack, 2, 1) // 2 octaves per second
	s.Target = 4
	maxRatio := math.Exp2(2 / float64(sampleRate))
	prev := float64(s.Out)
	for i := 0; i < sampleRate/2; i++ { // 0.5 s: one octave
		rack.Tick()
		ratio := float64(s.Out) / prev
		if ratio < 1-1e-6 || ratio > maxRatio*1.0001 {
			t.Fatalf("tick %v: ratio %v outside [1, %v]", i, ratio, maxRatio)
		}
		prev = float64(s.Out)
	}
	if got := float64(s.Out); math.Abs(got-2) > 0.02 {
		t.Errorf("output after one octave of slew = %v, want 2", got)
	}
	for i := 0; i < sampleRate; i++ {
		rack.Tick()
	}
	if got := float64(s.Out); math.Abs(got-4) > 0.02 {
		t.Errorf("output settled at %v, want 4", got)
	}
}

func TestExponentialSlewFollowsDownward(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	s := patchcord.NewExponentialSlew(rack, 4, 8)
	s.Target = 1
	for i := 0; i < sampleRate; i++ {
		rack.Tick()
	}
	if got := float64(s.Out); math.Abs(got-1) > 0.01 {
		t.Errorf("output settled at %v, want 1", got)
	}
}
