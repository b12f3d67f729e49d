package patchcord_test

import (
	"math"
	"testing"

	"github.com/aholari/patchcord"
)

func TestNoteFrequency(t *testing.T) {
	for _, c := range []struct {
		note string
		want float64
	}{
		{"A4", 440},
		{"C4", 261.6256},
		{"C#4", 277.1826},
		{"Db4", 277.1826},
		{"Bb2", 116.5409},
		{"A0", 27.5},
		{"G9", 12543.85},
		// enharmonic spellings across octave boundaries
		{"E#4", 349.2282}, // = F4
		{"Fb4", 329.6276}, // = E4
		{"B#3", 261.6256}, // = C4
		{"Cb4", 246.9417}, // = B3
		{"A10", 28160},
	} {
		got, err := patchcord.NoteFrequency(c.note)
		if err != nil {
			t.Errorf("NoteFrequency(%q): %v", c.note, err)
			continue
		}
		if math.Abs(float64(got)-c.want) > c.want*1e-4 {
			t.Errorf("NoteFrequency(%q) = %v, want %v", c.note, got, c.want)
		}
	}
}

func TestNoteFrequencyErrors(t *testing.T) {
	for _, note := range []string{"", "C", "4", "H4", "c4", "C##4", "#4"} {
		if _, err := patchcord.NoteFrequency(note); err == nil {
			t.Errorf("NoteFrequency(%q) succeeded, want error", note)
		}
	}
}
