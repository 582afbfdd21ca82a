package midifile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonalhq/tonal/model"
	"github.com/tonalhq/tonal/render"
)

func TestFromProgression(t *testing.T) {
	spans := []model.ChordSpan{
		{Symbol: "C", Ticks: 960},
		{Symbol: "G7"},
	}
	s, err := FromProgression(spans, render.Block)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(1, len(s.Tracks))
	assert.Equal([][]string{
		{"C4", "E4", "G4", "G4", "B4", "D5", "F5"},
	}, TrackNotes(s))
}

func TestFromProgressionBadChord(t *testing.T) {
	_, err := FromProgression([]model.ChordSpan{{Symbol: "Hmaj7"}}, render.Block)
	assert.Error(t, err)
}

func TestFromTracks(t *testing.T) {
	tracks := [][]string{{"C4", "E4"}, {"G4"}}
	s, err := FromTracks(tracks)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(2, len(s.Tracks))
	assert.Equal(tracks, TrackNotes(s))
}

func TestFromTracksBadNote(t *testing.T) {
	_, err := FromTracks([][]string{{"X4"}})
	assert.Error(t, err)
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	spans := []model.ChordSpan{{Symbol: "Cmaj7"}, {Symbol: "Dm7"}}
	s, err := FromProgression(spans, render.Arpeggio)

	assert := assert.New(t)
	assert.NoError(err)

	path := filepath.Join(t.TempDir(), "roundtrip.mid")
	assert.NoError(WriteFile(s, path))

	got, err := ReadFile(path)
	assert.NoError(err)
	assert.Equal(TrackNotes(s), TrackNotes(got))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("no/such/file.mid")
	assert.Error(t, err)
}
