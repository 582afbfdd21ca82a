package note

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAndName(t *testing.T) {
	cases := map[string]string{
		"C4":   "C4",
		"F#3":  "F#3",
		"Bb2":  "Bb2",
		"C-1":  "C-1", // bottom MIDI octave
		"A-3":  "A-3",
		"Db5":  "Db5",
		"G##2": "G##2",
		"ebb5": "Ebb5",
	}
	for in, want := range cases {
		t.Run(fmt.Sprintf("parse %v", in), func(t *testing.T) {
			n, err := Parse(in)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(want, n.Name())
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "H4", "C", "C#x4", "4", "#4"} {
		t.Run(fmt.Sprintf("reject %q", in), func(t *testing.T) {
			_, err := Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestMIDI(t *testing.T) {
	cases := map[string]uint8{
		"C4":  60,
		"A4":  69,
		"Cb4": 59,
		"B#3": 60,
		"C-1": 0,
		"G9":  127,
	}
	for in, want := range cases {
		t.Run(fmt.Sprintf("%v is key %v", in, want), func(t *testing.T) {
			n, err := Parse(in)
			assert := assert.New(t)
			assert.NoError(err)
			key, err := n.MIDI()
			assert.NoError(err)
			assert.Equal(want, key)
		})
	}
}

func TestMIDIOutOfRange(t *testing.T) {
	n, err := Parse("A9")
	assert := assert.New(t)
	assert.NoError(err)
	_, err = n.MIDI()
	assert.Error(err)
}

func TestFromMIDI(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", FromMIDI(60).Name())
	assert.Equal("C#4", FromMIDI(61).Name())
	assert.Equal("A0", FromMIDI(21).Name())
	assert.Equal("C-1", FromMIDI(0).Name())
	assert.Equal("G9", FromMIDI(127).Name())
}

func TestNameParseRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for key := 0; key < 128; key++ {
		name := FromMIDI(uint8(key)).Name()
		n, err := Parse(name)
		assert.NoError(err)
		back, err := n.MIDI()
		assert.NoError(err)
		assert.Equal(uint8(key), back, name)
	}
}

func TestSemitone(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, Class{Letter: 'C'}.Semitone())
	assert.Equal(11, Class{Letter: 'C', Accidental: -1}.Semitone())
	assert.Equal(0, Class{Letter: 'B', Accidental: 1}.Semitone())
	assert.Equal(8, Class{Letter: 'A', Accidental: -1}.Semitone())
}
