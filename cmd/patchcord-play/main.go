// Command patchcord-play plays a demo patch: an arpeggiated melody built as a
// composite module plus a Wire-patched filter bass line, both running in the
// same rack.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/aholari/patchcord"
	"github.com/aholari/patchcord/oto"
)

// melody is a composite module: it registers itself before constructing its
// children, so its Update runs first within every tick and the ports it
// copies still hold the children's previous-tick values.
type melody struct {
	clock   *patchcord.Oscillator
	seq     *patchcord.Sequencer
	vco     *patchcord.Oscillator
	env     *patchcord.Envelope
	vca     *patchcord.Amplifier
	speaker *patchcord.Speaker
}

func newMelody(rack *patchcord.Rack) (*melody, error) {
	m := &melody{}
	rack.Register(m)
	m.clock = patchcord.NewOscillator(rack, 4)
	var err error
	m.seq, err = patchcord.NewSequencer(rack,
		"C4", "E4", "G4", "C5",
		"D4", "F4", "A4", "D5",
		"Bb3", "D4", "F4", "Bb4",
		"F5", "C5", "A4", "F4",
	)
	if err != nil {
		rack.Unregister(m)
		return nil, err
	}
	m.vco = patchcord.NewOscillator(rack, 0)
	m.env = patchcord.NewEnvelope(rack, 0.01, 1, 0.1)
	m.vca = patchcord.NewAmplifier(rack, 0)
	m.speaker = patchcord.NewSpeaker(rack)
	return m, nil
}

func (m *melody) Update() {
	m.seq.ClockIn = m.clock.SquareOut
	m.env.GateIn = m.seq.GateOut
	m.vco.Frequency = m.seq.FrequencyOut
	m.vca.Amplitude = m.env.AmplitudeOut
	m.vca.AudioIn = m.vco.TriangleOut
	m.speaker.LeftIn = m.vca.AudioOut
	m.speaker.RightIn = m.vca.AudioOut
}

// bass builds the second voice of the demo with Wires instead of a
// composite: a slow sequencer driving a sawtooth through an envelope-swept
// lowpass filter.
func bass(rack *patchcord.Rack) error {
	clock := patchcord.NewOscillator(rack, 1)
	seq, err := patchcord.NewSequencer(rack, "C2", "D2", "Bb1", "F1")
	if err != nil {
		return err
	}
	vco := patchcord.NewOscillator(rack, 0)
	vcf := patchcord.NewFilter(rack, 0, 3)
	vca := patchcord.NewAmplifier(rack, 2000)
	env := patchcord.NewEnvelope(rack, 0.1, 1, 0.1)
	speaker := patchcord.NewSpeaker(rack)

	patchcord.NewWire(rack, &clock.SquareOut, &seq.ClockIn)
	patchcord.NewWire(rack, &seq.GateOut, &env.GateIn)
	patchcord.NewWire(rack, &seq.FrequencyOut, &vco.Frequency)
	patchcord.NewWire(rack, &env.AmplitudeOut, &vca.AudioIn)
	patchcord.NewWire(rack, &vca.AudioOut, &vcf.Cutoff)
	patchcord.NewWire(rack, &vco.SawtoothOut, &vcf.AudioIn)
	patchcord.NewWire(rack, &vcf.LowpassOut, &speaker.LeftIn)
	patchcord.NewWire(rack, &vcf.LowpassOut, &speaker.RightIn)
	return nil
}

func main() {
	configFile := flag.String("c", "", "Load engine configuration from the given YAML `file`.")
	flag.Parse()

	cfg := patchcord.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = patchcord.LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	rack := patchcord.NewRack(cfg.SampleRate)
	rack.SetMasterGain(cfg.MasterGain)
	if _, err := newMelody(rack); err != nil {
		fmt.Fprintf(os.Stderr, "could not build melody patch: %v\n", err)
		os.Exit(1)
	}
	if err := bass(rack); err != nil {
		fmt.Fprintf(os.Stderr, "could not build bass patch: %v\n", err)
		os.Exit(1)
	}

	ctx, err := oto.NewContext(cfg.SampleRate, cfg.BufferSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open audio output: %v\n", err)
		os.Exit(1)
	}
	player := ctx.NewPlayer(rack)
	player.Start()
	defer player.Close()

	fmt.Println("Press enter to exit...")
	bufio.NewReader(os.Stdin).ReadString('\n')
}
