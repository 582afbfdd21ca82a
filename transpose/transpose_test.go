package transpose

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tonalhq/tonal/scale"
)

func TestSingleTrack(t *testing.T) {
	res, err := Track([]string{"C4", "E4", "B3", "C4"}, -2, "C", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"A3", "C4", "G3", "A3"}, res)
}

func TestMultiTrack(t *testing.T) {
	res, err := Tracks([][]string{{"C4", "E4", "G4"}, {"A4", "C5", "E5"}}, -2, "C", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]string{{"A3", "C4", "E4"}, {"F4", "A4", "C5"}}, res)
}

func TestMultiTrackEMajor(t *testing.T) {
	res, err := Tracks([][]string{{"E4", "G#4", "B4"}, {"C#5", "E5", "G#5"}}, 1, "E", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]string{{"F#4", "A4", "C#5"}, {"D#5", "F#5", "A5"}}, res)
}

func TestMultiTrackDFlatMajor(t *testing.T) {
	res, err := Tracks([][]string{{"Db4", "F4", "Ab4"}, {"Bb4", "Db5", "F5"}}, -3, "Db", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]string{{"Ab3", "C4", "Eb4"}, {"F4", "Ab4", "C5"}}, res)
}

func TestMultiTrackHarmonicMinor(t *testing.T) {
	res, err := Tracks([][]string{{"A4", "C5", "E5"}, {"G#5", "A5", "C6"}}, 2, "A", scale.HarmonicMinor)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]string{{"C5", "E5", "G#5"}, {"B5", "C6", "E6"}}, res)
}

func TestZeroIsIdentity(t *testing.T) {
	in := []string{"C4", "E4", "B3", "C4"}
	res, err := Track(in, 0, "C", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(in, res)
}

func TestRoundTrip(t *testing.T) {
	in := []string{"C4", "E4", "B3", "C4"}
	for k := -8; k <= 8; k++ {
		t.Run(fmt.Sprintf("up %v then back", k), func(t *testing.T) {
			assert := assert.New(t)
			up, err := Track(in, k, "C", nil)
			assert.NoError(err)
			back, err := Track(up, -k, "C", nil)
			assert.NoError(err)
			assert.Equal(in, back)
		})
	}
}

func TestFullScaleLengthIsAnOctave(t *testing.T) {
	res, err := Track([]string{"C4", "E4", "B3"}, 7, "C", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"C5", "E5", "B4"}, res)
}

func TestUniformTracksMatchIndependentTracks(t *testing.T) {
	tracks := [][]string{{"C4", "E4", "G4"}, {"A4", "C5", "E5"}}
	together, err := Tracks(tracks, -2, "C", nil)
	assert := assert.New(t)
	assert.NoError(err)
	for i, track := range tracks {
		alone, err := Track(track, -2, "C", nil)
		assert.NoError(err)
		assert.Equal(alone, together[i])
	}
}

func TestByPosition(t *testing.T) {
	res, err := TrackByPosition([]string{"C4", "E4", "G4"}, []int{0, 1, 2}, "C", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{"C4", "F4", "B4"}, res)
}

func TestByPositionLengthMismatch(t *testing.T) {
	assert := assert.New(t)

	_, err := TrackByPosition([]string{"C4", "E4"}, []int{1}, "C", nil)
	assert.Error(err)

	_, err = TracksByPosition([][]string{{"C4", "E4"}, {"G4"}}, []int{1, 2}, "C", nil)
	assert.Error(err)
}

func TestTracksByPosition(t *testing.T) {
	res, err := TracksByPosition(
		[][]string{{"C4", "E4"}, {"E4", "G4"}}, []int{0, 2}, "C", nil)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([][]string{{"C4", "G4"}, {"E4", "B4"}}, res)
}

func TestInvalidInputs(t *testing.T) {
	assert := assert.New(t)

	_, err := Track([]string{"X4"}, 1, "C", nil)
	assert.Error(err)

	_, err = Track([]string{"C4"}, 1, "H", nil)
	assert.Error(err)

	// chromatic note outside the scale
	_, err = Track([]string{"C#4"}, 1, "C", nil)
	assert.Error(err)
}
