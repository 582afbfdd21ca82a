// Package synth renders MIDI files to audio through an external
// fluidsynth process.
package synth

import (
	"os/exec"

	"github.com/pkg/errors"
)

const sampleRate = "44100"

// MidiToWav synthesizes a WAV file from a MIDI file using the given
// soundfont. fluidsynth must be on PATH; there is no fallback.
func MidiToWav(midiPath, wavPath, soundfont string) error {
	bin, err := exec.LookPath("fluidsynth")
	if err != nil {
		return errors.Wrap(err, "fluidsynth not found")
	}

	cmd := exec.Command(bin, "-ni", soundfont, midiPath, "-F", wavPath, "-r", sampleRate)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "fluidsynth failed: %s", out)
	}
	return nil
}
