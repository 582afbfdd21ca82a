// Package render turns the notes of a chord into timed MIDI events on a
// track. Renderers are registered by name so callers can pick a playing
// style ("block", "arpeggio") from config or a request body.
package render

import (
	"fmt"
	"strings"

	"github.com/tonalhq/tonal/constants"
	"github.com/tonalhq/tonal/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// A Renderer lays one chord's notes onto a track, occupying the given
// number of ticks.
type Renderer func(track *smf.Track, notes []uint8, ticks uint32)

var renderers = map[string]Renderer{}

func init() {
	Register("block", Block)
	Register("arpeggio", Arpeggio)
}

// Register adds a named renderer. Registering an existing name replaces it.
func Register(name string, r Renderer) {
	renderers[name] = r
}

// Lookup resolves a renderer by name.
func Lookup(name string) (Renderer, error) {
	r, ok := renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown chord renderer: %v (available: %v)",
			name, strings.Join(Names(), ", "))
	}
	return r, nil
}

// Names lists the registered renderer names, sorted.
func Names() []string {
	return util.GetKeysSorted(renderers)
}

// Block plays every note of the chord at once for the full duration.
func Block(track *smf.Track, notes []uint8, ticks uint32) {
	for _, n := range notes {
		track.Add(0, midi.NoteOn(0, n, constants.DefaultVelocity))
	}
	for i, n := range notes {
		var delta uint32
		if i == 0 {
			delta = ticks
		}
		track.Add(delta, midi.NoteOff(0, n))
	}
}

// Arpeggio plays the notes one after another, splitting the duration
// evenly; the division remainder lands on the last note.
func Arpeggio(track *smf.Track, notes []uint8, ticks uint32) {
	if len(notes) == 0 {
		return
	}
	per := ticks / uint32(len(notes))
	for i, n := range notes {
		dur := per
		if i == len(notes)-1 {
			dur = ticks - per*uint32(len(notes)-1)
		}
		track.Add(0, midi.NoteOn(0, n, constants.DefaultVelocity))
		track.Add(dur, midi.NoteOff(0, n))
	}
}
