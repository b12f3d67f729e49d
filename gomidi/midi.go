// Package gomidi implements the MIDI input collaborator on top of
// gitlab.com/gomidi/midi with the rtmidi driver. Incoming messages are
// decoded on the driver's listener goroutine and pushed into a buffered
// channel; the patchcord MIDI adapter drains that channel with non-blocking
// polls from the audio thread.
package gomidi

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/aholari/patchcord"
)

const eventBufferSize = 1024

// Input is an open MIDI input port feeding a bounded event queue. It
// implements patchcord.MIDISource.
type Input struct {
	driver *rtmididrv.Driver
	in     drivers.In
	stop   func()
	events chan patchcord.MIDIEvent
}

// OpenVirtual creates a virtual MIDI input port under the given name, for
// other programs to connect to.
func OpenVirtual(name string) (*Input, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("cannot create rtmidi driver: %w", err)
	}
	in, err := drv.OpenVirtualIn(name)
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("cannot open virtual MIDI input %q: %w", name, err)
	}
	return listen(drv, in)
}

// Open opens the first physical MIDI input whose name starts with namePrefix.
// An empty prefix opens the first available input.
func Open(namePrefix string) (*Input, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("cannot create rtmidi driver: %w", err)
	}
	ins, err := drv.Ins()
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("cannot list MIDI inputs: %w", err)
	}
	for _, in := range ins {
		if !strings.HasPrefix(in.String(), namePrefix) {
			continue
		}
		if err := in.Open(); err != nil {
			drv.Close()
			return nil, fmt.Errorf("cannot open MIDI input %q: %w", in.String(), err)
		}
		return listen(drv, in)
	}
	drv.Close()
	if namePrefix == "" {
		return nil, fmt.Errorf("no MIDI inputs available")
	}
	return nil, fmt.Errorf("no MIDI input starting with %q", namePrefix)
}

func listen(drv *rtmididrv.Driver, in drivers.In) (*Input, error) {
	i := &Input{
		driver: drv,
		in:     in,
		events: make(chan patchcord.MIDIEvent, eventBufferSize),
	}
	stop, err := midi.ListenTo(in, i.handleMessage)
	if err != nil {
		in.Close()
		drv.Close()
		return nil, fmt.Errorf("cannot listen to MIDI input %q: %w", in.String(), err)
	}
	i.stop = stop
	return i, nil
}

// String returns the name of the underlying port.
func (i *Input) String() string {
	return i.in.String()
}

// NextEvent returns the next pending event without blocking. It is safe to
// call from the audio thread.
func (i *Input) NextEvent() (patchcord.MIDIEvent, bool) {
	select {
	case event := <-i.events:
		return event, true
	default:
		return patchcord.MIDIEvent{}, false
	}
}

// Close stops listening and releases the port and the driver.
func (i *Input) Close() error {
	if i.stop != nil {
		i.stop()
	}
	if err := i.in.Close(); err != nil {
		i.driver.Close()
		return fmt.Errorf("cannot close MIDI input: %w", err)
	}
	if err := i.driver.Close(); err != nil {
		return fmt.Errorf("cannot close rtmidi driver: %w", err)
	}
	return nil
}

// handleMessage runs on the listener goroutine. If the queue is full the
// event is dropped; the realtime consumer never waits for us and we never
// wait for it.
func (i *Input) handleMessage(msg midi.Message, timestampms int32) {
	var (
		channel, key, velocity, pressure, controller, value uint8
		relative                                            int16
		absolute                                            uint16
	)
	var event patchcord.MIDIEvent
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		event = patchcord.MIDIEvent{Type: patchcord.MIDINoteOn, Channel: channel, Note: key, Value: velocity}
	case msg.GetNoteOff(&channel, &key, &velocity):
		event = patchcord.MIDIEvent{Type: patchcord.MIDINoteOff, Channel: channel, Note: key, Value: velocity}
	case msg.GetPolyAfterTouch(&channel, &key, &pressure):
		event = patchcord.MIDIEvent{Type: patchcord.MIDIPolyPressure, Channel: channel, Note: key, Value: pressure}
	case msg.GetAfterTouch(&channel, &pressure):
		event = patchcord.MIDIEvent{Type: patchcord.MIDIChannelPressure, Channel: channel, Value: pressure}
	case msg.GetPitchBend(&channel, &relative, &absolute):
		event = patchcord.MIDIEvent{Type: patchcord.MIDIPitchBend, Channel: channel, Bend: relative}
	case msg.GetControlChange(&channel, &controller, &value):
		event = patchcord.MIDIEvent{Type: patchcord.MIDIControlChange, Channel: channel, Controller: controller, Value: value}
	default:
		return // unrecognized event types are ignored
	}
	select {
	case i.events <- event:
	default:
	}
}
