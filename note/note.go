package note

import (
	"fmt"
	"strconv"
	"strings"
)

// Class is a spelled pitch class: a letter plus an accidental, no octave.
type Class struct {
	Letter     byte // 'A'..'G'
	Accidental int8 // semitones away from the natural letter, -2..2
}

// Note is a Class anchored to an octave in scientific pitch notation
// (C4 = middle C = MIDI 60).
type Note struct {
	Class
	Octave int
}

var naturalSemitones = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

var letterIndexes = map[byte]int{
	'C': 0, 'D': 1, 'E': 2, 'F': 3, 'G': 4, 'A': 5, 'B': 6,
}

// sharp spellings for each semitone within an octave, used when naming
// raw MIDI keys that carry no spelling of their own
var semitoneClasses = [12]Class{
	{'C', 0}, {'C', 1}, {'D', 0}, {'D', 1}, {'E', 0}, {'F', 0},
	{'F', 1}, {'G', 0}, {'G', 1}, {'A', 0}, {'A', 1}, {'B', 0},
}

// ParseClass parses a pitch-class name like "C", "F#", "Bb" or "Ebb".
// Flats accept both 'b' and the '-' marker some notation tools emit.
func ParseClass(s string) (Class, error) {
	var c Class
	if len(s) == 0 {
		return c, fmt.Errorf("empty pitch name")
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return c, fmt.Errorf("invalid pitch letter in %q", s)
	}
	c.Letter = letter
	for _, r := range s[1:] {
		switch r {
		case '#':
			c.Accidental++
		case 'b', '-':
			c.Accidental--
		default:
			return Class{}, fmt.Errorf("invalid accidental in %q", s)
		}
	}
	if c.Accidental < -2 || c.Accidental > 2 {
		return Class{}, fmt.Errorf("too many accidentals in %q", s)
	}
	return c, nil
}

// Parse parses a note name like "C4", "F#3", "Bb2" or "C-1". A dash
// directly before the octave digits is the octave's sign, so names in
// the bottom MIDI octave round-trip through Name; flats in full note
// names are written with 'b'.
func Parse(s string) (Note, error) {
	var n Note
	split := len(s)
	for split > 0 && s[split-1] >= '0' && s[split-1] <= '9' {
		split--
	}
	if split == len(s) || split == 0 {
		return n, fmt.Errorf("missing octave in note name %q", s)
	}
	if split > 1 && s[split-1] == '-' {
		split--
	}
	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return n, fmt.Errorf("invalid octave in note name %q", s)
	}
	c, err := ParseClass(s[:split])
	if err != nil {
		return n, err
	}
	n.Class = c
	n.Octave = octave
	return n, nil
}

// FromMIDI names a raw MIDI key, preferring sharps.
func FromMIDI(key uint8) Note {
	return Note{
		Class:  semitoneClasses[key%12],
		Octave: int(key/12) - 1,
	}
}

// LetterIndex is the letter's position in the C..B cycle, C = 0.
func (c Class) LetterIndex() int {
	return letterIndexes[c.Letter]
}

// Semitone is the pitch class in semitones above C, 0..11.
func (c Class) Semitone() int {
	return ((naturalSemitones[c.Letter]+int(c.Accidental))%12 + 12) % 12
}

func (c Class) String() string {
	var acc string
	switch {
	case c.Accidental > 0:
		acc = strings.Repeat("#", int(c.Accidental))
	case c.Accidental < 0:
		acc = strings.Repeat("b", int(-c.Accidental))
	}
	return string(c.Letter) + acc
}

// Name renders the note back to its string form, e.g. "Ab3".
func (n Note) Name() string {
	return n.Class.String() + strconv.Itoa(n.Octave)
}

// MIDI converts the note to its MIDI key number (C4 = 60).
func (n Note) MIDI() (uint8, error) {
	key := (n.Octave+1)*12 + naturalSemitones[n.Letter] + int(n.Accidental)
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("note %v is outside the MIDI range", n.Name())
	}
	return uint8(key), nil
}
