package patchcord

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// noteSemitones maps a note letter with an optional accidental to its
// semitone offset from C. The enharmonic spellings Cb, E#, Fb and B# are
// included, which is why the values reach past the 0..11 range.
var noteSemitones = map[string]int{
	"Cb": -1, "C": 0, "C#": 1,
	"Db": 1, "D": 2, "D#": 3,
	"Eb": 3, "E": 4, "E#": 5,
	"Fb": 4, "F": 5, "F#": 6,
	"Gb": 6, "G": 7, "G#": 8,
	"Ab": 8, "A": 9, "A#": 10,
	"Bb": 10, "B": 11, "B#": 12,
}

// NoteFrequency parses a note name such as "C4", "F#3" or "Bb2" and returns
// its frequency in Hz, in equal temperament with A4 = 440 Hz.
func NoteFrequency(note string) (float32, error) {
	i := strings.IndexAny(note, "0123456789")
	if i < 0 {
		return 0, fmt.Errorf("note %q has no octave number", note)
	}
	semitone, ok := noteSemitones[note[:i]]
	if !ok {
		return 0, fmt.Errorf("unknown note name %q", note)
	}
	octave, err := strconv.Atoi(note[i:])
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note %q: %v", note, err)
	}
	return 440 * exp2(float32(semitone-9)/12+float32(octave-4)), nil
}

// midiNoteFrequency returns the equal-temperament frequency of a MIDI note
// number, with note 69 (A4) at 440 Hz.
func midiNoteFrequency(note uint8) float32 {
	return 440 * float32(math.Exp2((float64(note)-69)/12))
}
