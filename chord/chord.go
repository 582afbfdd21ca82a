// Package chord resolves chord symbols like "Cmaj7" or "Em11" into MIDI
// note numbers, anchored around octave 4 (C4 = 60).
package chord

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tonalhq/tonal/util"
)

// root pitch names to MIDI note numbers
var rootNotes = map[string]uint8{
	"C":  60,
	"C#": 61,
	"Db": 61,
	"D":  62,
	"D#": 63,
	"Eb": 63,
	"E":  64,
	"F":  65,
	"F#": 66,
	"Gb": 66,
	"G":  67,
	"G#": 68,
	"Ab": 68,
	"A":  69,
	"A#": 70,
	"Bb": 70,
	"B":  71,
}

// quality and extension intervals in semitones above the root
var qualityExtensions = map[string][]uint8{
	"":        {0, 4, 7}, // bare root is a major triad
	"maj":     {0, 4, 7},
	"min":     {0, 3, 7},
	"dim":     {0, 3, 6},
	"aug":     {0, 4, 8},
	"7":       {0, 4, 7, 10},
	"maj7":    {0, 4, 7, 11},
	"min7":    {0, 3, 7, 10},
	"minmaj7": {0, 3, 7, 11},
	"dim7":    {0, 3, 6, 9},
	"hdim7":   {0, 3, 6, 10},
	"aug7":    {0, 4, 8, 10},
	"6":       {0, 4, 7, 9},
	"min6":    {0, 3, 7, 9},
	"9":       {0, 4, 7, 10, 14},
	"maj9":    {0, 4, 7, 11, 14},
	"min9":    {0, 3, 7, 10, 14},
	"11":      {0, 4, 7, 10, 14, 17},
	"maj11":   {0, 4, 7, 11, 14, 17},
	"min11":   {0, 3, 7, 10, 14, 17},
	"13":      {0, 4, 7, 10, 14, 17, 21},
	"maj13":   {0, 4, 7, 11, 14, 17, 21},
	"min13":   {0, 3, 7, 10, 14, 17, 21},
}

func init() {
	// the short spellings: Cmaj7 == CM7, Cmin == Cm, Cdim == C°
	aliases := make(map[string][]uint8)
	for qe, intervals := range qualityExtensions {
		switch {
		case strings.HasPrefix(qe, "maj"):
			aliases[strings.Replace(qe, "maj", "M", 1)] = intervals
		case strings.HasPrefix(qe, "min"):
			aliases[strings.Replace(qe, "min", "m", 1)] = intervals
		case strings.HasPrefix(qe, "dim"):
			aliases[strings.Replace(qe, "dim", "°", 1)] = intervals
		}
	}
	for qe, intervals := range aliases {
		qualityExtensions[qe] = intervals
	}
}

var rootPattern = regexp.MustCompile(`^[A-G][#b]?`)

// ParseRoot extracts the root pitch name from a chord symbol.
func ParseRoot(symbol string) (string, error) {
	root := rootPattern.FindString(symbol)
	if root == "" {
		return "", fmt.Errorf("invalid chord: %q", symbol)
	}
	return root, nil
}

// Notes resolves a chord symbol to its MIDI note numbers.
func Notes(symbol string) ([]uint8, error) {
	root, err := ParseRoot(symbol)
	if err != nil {
		return nil, err
	}
	rootMidi, ok := rootNotes[root]
	if !ok {
		return nil, fmt.Errorf("unknown root note: %v", root)
	}

	qe := symbol[len(root):]
	intervals, ok := qualityExtensions[qe]
	if !ok {
		return nil, fmt.Errorf("unknown quality/extension %q in chord %q (available: %v)",
			qe, symbol, strings.Join(Qualities(), ", "))
	}

	notes := make([]uint8, len(intervals))
	for i, interval := range intervals {
		notes[i] = rootMidi + interval
	}
	return notes, nil
}

// Qualities lists the recognized quality/extension suffixes, sorted.
func Qualities() []string {
	return util.GetKeysSorted(qualityExtensions)
}
