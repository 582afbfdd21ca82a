// Package midifile assembles and reads standard MIDI files.
package midifile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/tonalhq/tonal/chord"
	"github.com/tonalhq/tonal/constants"
	"github.com/tonalhq/tonal/model"
	"github.com/tonalhq/tonal/note"
	"github.com/tonalhq/tonal/render"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// FromProgression builds a single-track SMF playing the chord sequence
// with the given renderer.
func FromProgression(spans []model.ChordSpan, r render.Renderer) (*smf.SMF, error) {
	var track smf.Track
	track.Add(0, midi.ProgramChange(0, 0)) // acoustic grand piano

	for _, span := range spans {
		notes, err := chord.Notes(span.Symbol)
		if err != nil {
			return nil, err
		}
		ticks := span.Ticks
		if ticks == 0 {
			ticks = constants.DefaultChordTicks
		}
		r(&track, notes, ticks)
	}
	track.Close(0)

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)
	s.Tracks = append(s.Tracks, track)
	return &s, nil
}

// FromTracks builds a multi-track SMF from parallel lines of note names,
// one quarter note per position.
func FromTracks(tracks [][]string) (*smf.SMF, error) {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	for _, names := range tracks {
		var track smf.Track
		track.Add(0, midi.ProgramChange(0, 0))
		for _, name := range names {
			n, err := note.Parse(name)
			if err != nil {
				return nil, err
			}
			key, err := n.MIDI()
			if err != nil {
				return nil, err
			}
			track.Add(0, midi.NoteOn(0, key, constants.DefaultVelocity))
			track.Add(constants.TicksPerQuarter, midi.NoteOff(0, key))
		}
		track.Close(0)
		s.Tracks = append(s.Tracks, track)
	}
	return &s, nil
}

// WriteFile writes the SMF to disk.
func WriteFile(s *smf.SMF, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %v", path, err)
	}
	defer f.Close()
	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("could not write midi file %v: %v", path, err)
	}
	return nil
}

// ReadFile parses a MIDI file from disk.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// NoteEvent is one note-on or note-off with its absolute tick position.
type NoteEvent struct {
	Track    int
	AbsTicks uint64
	Key      uint8
	On       bool
}

// NoteEvents flattens an SMF into its note events in track order.
func NoteEvents(s *smf.SMF) []NoteEvent {
	var res []NoteEvent
	for t, events := range s.Tracks {
		var absTicks uint64
		for _, event := range events {
			absTicks += uint64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				res = append(res, NoteEvent{Track: t, AbsTicks: absTicks, Key: key, On: true})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				res = append(res, NoteEvent{Track: t, AbsTicks: absTicks, Key: key, On: false})
			}
		}
	}
	return res
}

// TrackNotes lists the note names struck in each track, in onset order.
func TrackNotes(s *smf.SMF) [][]string {
	res := make([][]string, len(s.Tracks))
	for _, evt := range NoteEvents(s) {
		if evt.On {
			res[evt.Track] = append(res[evt.Track], note.FromMIDI(evt.Key).Name())
		}
	}
	return res
}
