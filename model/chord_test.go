package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestParseChordSpan(t *testing.T) {
	cases := map[string]ChordSpan{
		"Cmaj7":     {Symbol: "Cmaj7"},
		"Em11:1920": {Symbol: "Em11", Ticks: 1920},
		"Bb7:960":   {Symbol: "Bb7", Ticks: 960},
	}
	for in, want := range cases {
		t.Run(fmt.Sprintf("parse %v", in), func(t *testing.T) {
			span, err := ParseChordSpan(in)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(want, span)
		})
	}
}

func TestParseChordSpanErrors(t *testing.T) {
	for _, in := range []string{"", ":120", "C:abc", "C:-1"} {
		t.Run(fmt.Sprintf("reject %q", in), func(t *testing.T) {
			_, err := ParseChordSpan(in)
			assert.Error(t, err)
		})
	}
}

func TestProgressionYAML(t *testing.T) {
	src := `
name: turnaround
render: arpeggio
chords:
  - Bdim:960
  - chord: Em11
    ticks: 960
  - G7
`
	var p Progression
	err := yaml.Unmarshal([]byte(src), &p)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("turnaround", p.Name)
	assert.Equal("arpeggio", p.Render)
	assert.Equal([]ChordSpan{
		{Symbol: "Bdim", Ticks: 960},
		{Symbol: "Em11", Ticks: 960},
		{Symbol: "G7"},
	}, p.Chords)
}
