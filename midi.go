package patchcord

import "math/bits"

// MIDIEventType enumerates the event kinds the MIDI adapter folds into
// channel state.
type MIDIEventType uint8

const (
	MIDINoteOn MIDIEventType = iota
	MIDINoteOff
	MIDIPolyPressure
	MIDIChannelPressure
	MIDIPitchBend
	MIDIControlChange
)

// MIDIEvent is one decoded event from a MIDI input source. Which fields are
// meaningful depends on Type; Value carries the note velocity, pressure
// amount or controller value.
type MIDIEvent struct {
	Type       MIDIEventType
	Channel    uint8
	Note       uint8
	Value      uint8 // 0..127
	Controller uint8
	Bend       int16 // signed 14-bit pitch bend, -8192..8191
}

// MIDISource is the event queue of a MIDI input collaborator. NextEvent
// returns the next pending event, if any; it is called from the realtime
// audio thread and must never block.
type MIDISource interface {
	NextEvent() (MIDIEvent, bool)
}

// noNote marks a channel on which no note has ever been selected.
const noNote = 0xff

// MIDIChannel is the continuous control state of one MIDI channel. All
// exported fields are output ports.
type MIDIChannel struct {
	Frequency       float32      // frequency of the selected note, in Hz
	Velocity        float32      // velocity captured at the first note-on of a chord, 0..1
	ReleaseVelocity float32      // velocity captured when the last held note was released, 0..1
	Gate            float32      // 1 while any note is held, else 0
	Aftertouch      float32      // 0..1
	PitchBend       float32      // -1..1
	Parameter       [128]float32 // one value per controller number, 0..1

	notes    [2]uint64 // bitset of held note numbers
	selected uint8     // the sounding note; persists after release, noNote if never set
}

// MIDIAdapter translates the discrete events of a MIDI input into continuous
// control signals, one set per channel. Each tick it fully drains the
// source's pending events and folds them into the channel state.
//
// Note handling is monophonic with highest-note priority: the selected
// frequency is always that of the numerically highest held note, and the
// gate stays high until every held note is released. Unrecognized events are
// ignored.
type MIDIAdapter struct {
	// Outputs
	Channels [16]MIDIChannel

	source MIDISource
}

// NewMIDIAdapter registers an adapter draining the given source.
func NewMIDIAdapter(rack *Rack, source MIDISource) *MIDIAdapter {
	m := &MIDIAdapter{source: source}
	for i := range m.Channels {
		m.Channels[i].selected = noNote
	}
	rack.Register(m)
	return m
}

func (m *MIDIAdapter) Update() {
	for {
		event, ok := m.source.NextEvent()
		if !ok {
			return
		}
		m.processEvent(event)
	}
}

func (m *MIDIAdapter) processEvent(e MIDIEvent) {
	if int(e.Channel) >= len(m.Channels) {
		return
	}
	ch := &m.Channels[e.Channel]
	switch e.Type {
	case MIDINoteOn:
		if e.Value == 0 { // note-on with zero velocity is a note-off
			ch.noteOff(e.Note)
			break
		}
		if ch.noneHeld() {
			ch.Velocity = float32(e.Value) / 127
		}
		ch.hold(e.Note)
		ch.selectHighest()
		ch.Gate = 1
	case MIDINoteOff:
		ch.noteOff(e.Note)
	case MIDIPolyPressure:
		if e.Note == ch.selected {
			ch.Aftertouch = float32(e.Value) / 127
		}
	case MIDIChannelPressure:
		ch.Aftertouch = float32(e.Value) / 127
	case MIDIPitchBend:
		ch.PitchBend = float32(e.Bend) / 8192
	case MIDIControlChange:
		if int(e.Controller) < len(ch.Parameter) {
			ch.Parameter[e.Controller] = float32(e.Value) / 127
		}
	}
}

func (ch *MIDIChannel) noteOff(note uint8) {
	ch.release(note)
	if ch.noneHeld() {
		ch.ReleaseVelocity = ch.Velocity
		ch.Gate = 0
	} else {
		ch.selectHighest()
	}
}

// selectHighest points the channel at the highest held note. It must only be
// called while at least one note is held.
func (ch *MIDIChannel) selectHighest() {
	for i := len(ch.notes) - 1; i >= 0; i-- {
		if ch.notes[i] != 0 {
			n := uint8(64*i + 63 - bits.LeadingZeros64(ch.notes[i]))
			ch.selected = n
			ch.Frequency = midiNoteFrequency(n)
			return
		}
	}
}

func (ch *MIDIChannel) hold(note uint8) {
	note &= 127
	ch.notes[note>>6] |= 1 << (note & 63)
}

func (ch *MIDIChannel) release(note uint8) {
	note &= 127
	ch.notes[note>>6] &^= 1 << (note & 63)
}

func (ch *MIDIChannel) noneHeld() bool {
	return ch.notes[0] == 0 && ch.notes[1] == 0
}
