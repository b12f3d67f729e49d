package patchcord_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aholari/patchcord"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "patchcord.yml")
	if err := os.WriteFile(filename, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	filename := writeConfig(t, "buffersize: 256\n")
	c, err := patchcord.LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	want := patchcord.DefaultConfig()
	want.BufferSize = 256
	if c != want {
		t.Errorf("config = %+v, want %+v", c, want)
	}
}

func TestLoadConfigAllFields(t *testing.T) {
	filename := writeConfig(t, "samplerate: 44100\nbuffersize: 64\nmastergain: 0.25\nmidiport: mysynth\n")
	c, err := patchcord.LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	want := patchcord.Config{SampleRate: 44100, BufferSize: 64, MasterGain: 0.25, MIDIPort: "mysynth"}
	if c != want {
		t.Errorf("config = %+v, want %+v", c, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, test := range []struct {
		name     string
		contents string
	}{
		{"bad yaml", "samplerate: [\n"},
		{"zero samplerate", "samplerate: 0\n"},
		{"negative buffersize", "buffersize: -1\n"},
		{"negative mastergain", "mastergain: -0.5\n"},
	} {
		t.Run(test.name, func(t *testing.T) {
			filename := writeConfig(t, test.contents)
			if _, err := patchcord.LoadConfig(filename); err == nil {
				t.Error("LoadConfig succeeded, expected an error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := patchcord.LoadConfig(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("LoadConfig succeeded on a missing file, expected an error")
	}
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	if err := patchcord.DefaultConfig().Validate(); err != nil {
		t.Errorf("default config rejected: %v", err)
	}
}
