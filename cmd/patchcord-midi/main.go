// Command patchcord-midi runs a monophonic MIDI synthesizer: it opens a
// virtual MIDI input port and patches channel 0 into a sawtooth VCO with an
// envelope-swept lowpass filter.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/aholari/patchcord"
	"github.com/aholari/patchcord/gomidi"
	"github.com/aholari/patchcord/oto"
)

func main() {
	configFile := flag.String("c", "", "Load engine configuration from the given YAML `file`.")
	portPrefix := flag.String("port", "", "Open the first physical MIDI input starting with the given `prefix` instead of creating a virtual port.")
	flag.Parse()

	cfg := patchcord.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = patchcord.LoadConfig(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	var (
		input *gomidi.Input
		err   error
	)
	if *portPrefix != "" {
		input, err = gomidi.Open(*portPrefix)
	} else {
		input, err = gomidi.OpenVirtual(cfg.MIDIPort)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open MIDI input: %v\n", err)
		os.Exit(1)
	}
	defer input.Close()

	rack := patchcord.NewRack(cfg.SampleRate)
	rack.SetMasterGain(cfg.MasterGain)

	midi := patchcord.NewMIDIAdapter(rack, input)
	vco := patchcord.NewOscillator(rack, 0)
	vcf := patchcord.NewFilter(rack, 0, 3)
	vca := patchcord.NewAmplifier(rack, 2000)
	env := patchcord.NewEnvelope(rack, 0.1, 1, 0.1)
	speaker := patchcord.NewSpeaker(rack)

	patchcord.NewWire(rack, &midi.Channels[0].Gate, &env.GateIn)
	patchcord.NewWire(rack, &midi.Channels[0].Frequency, &vco.Frequency)
	patchcord.NewWire(rack, &env.AmplitudeOut, &vca.AudioIn)
	patchcord.NewWire(rack, &vca.AudioOut, &vcf.Cutoff)
	patchcord.NewWire(rack, &vco.SawtoothOut, &vcf.AudioIn)
	patchcord.NewWire(rack, &vcf.LowpassOut, &speaker.LeftIn)
	patchcord.NewWire(rack, &vcf.LowpassOut, &speaker.RightIn)

	ctx, err := oto.NewContext(cfg.SampleRate, cfg.BufferSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open audio output: %v\n", err)
		os.Exit(1)
	}
	player := ctx.NewPlayer(rack)
	player.Start()
	defer player.Close()

	fmt.Printf("Listening on MIDI port %q. Press enter to exit...\n", input.String())
	bufio.NewReader(os.Stdin).ReadString('\n')
}
