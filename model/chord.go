package model

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChordSpan is one chord in a progression with its length in MIDI ticks.
// Ticks of zero means "use the default duration".
type ChordSpan struct {
	Symbol string `json:"chord" yaml:"chord"`
	Ticks  uint32 `json:"ticks,omitempty" yaml:"ticks,omitempty"`
}

// Progression is a named, ordered chord sequence, loadable from YAML.
type Progression struct {
	Name   string      `yaml:"name,omitempty"`
	Render string      `yaml:"render,omitempty"`
	Chords []ChordSpan `yaml:"chords"`
}

// ParseChordSpan reads the "Cmaj7" / "Cmaj7:960" shorthand used on the
// command line and in preset records.
func ParseChordSpan(s string) (ChordSpan, error) {
	var span ChordSpan
	symbol, ticksPart, found := strings.Cut(s, ":")
	span.Symbol = symbol
	if symbol == "" {
		return span, fmt.Errorf("empty chord in %q", s)
	}
	if found {
		ticks, err := strconv.ParseUint(ticksPart, 10, 32)
		if err != nil {
			return span, fmt.Errorf("invalid tick count in %q", s)
		}
		span.Ticks = uint32(ticks)
	}
	return span, nil
}

// UnmarshalYAML lets progression files write a chord either as a bare
// symbol or as a {chord, ticks} mapping.
func (c *ChordSpan) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		span, err := ParseChordSpan(value.Value)
		if err != nil {
			return err
		}
		*c = span
		return nil
	}
	type plain ChordSpan
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = ChordSpan(p)
	return nil
}
