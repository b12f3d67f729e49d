package patchcord

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the engine settings a host program needs to open the audio
// and MIDI collaborators. Zero values are filled in from DefaultConfig when
// loading from a file.
type Config struct {
	SampleRate int     `yaml:"samplerate"` // in Hz
	BufferSize int     `yaml:"buffersize"` // output block length in frames
	MasterGain float32 `yaml:"mastergain"` // attenuation applied to the mix bus
	MIDIPort   string  `yaml:"midiport"`   // name of the virtual MIDI input port
}

// DefaultConfig returns the reference configuration: 48 kHz, 128-frame
// blocks, 0.1 master gain.
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		BufferSize: 128,
		MasterGain: DefaultMasterGain,
		MIDIPort:   "patchcord",
	}
}

// LoadConfig reads a YAML configuration file. Settings not present in the
// file keep their default values.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file: %w", err)
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %v: %w", filename, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %v: %w", filename, err)
	}
	return c, nil
}

// Validate checks the configuration for values the engine cannot run with.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return errors.New("samplerate must be positive")
	}
	if c.BufferSize <= 0 {
		return errors.New("buffersize must be positive")
	}
	if c.MasterGain < 0 {
		return errors.New("mastergain must not be negative")
	}
	return nil
}
