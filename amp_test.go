package patchcord_test

import (
	"testing"

	"github.com/aholari/patchcord"
)

func TestAmplifierScalesInput(t *testing.T) {
	rack := patchcord.NewRack(sampleRate)
	amp := patchcord.NewAmplifier(rack, 1)
	for _, test := range []struct {
		in, amplitude, want float32
	}{
		{1, 0.5, 0.5},
		{-0.5, 0.5, -0.25},
		{0.8, 0, 0},
		{1, -1, -1}, // negative amplitude inverts
	} {
		amp.AudioIn, amp.Amplitude = test.in, test.amplitude
		rack.Tick()
		if amp.AudioOut != test.want {
			t.Errorf("amplify(%v, %v) = %v, want %v", test.in, test.amplitude, amp.AudioOut, test.want)
		}
	}
}
