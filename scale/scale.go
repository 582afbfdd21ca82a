package scale

import (
	"fmt"

	"github.com/tonalhq/tonal/note"
)

// A Builder constructs a Scale from a root pitch-class name like "C" or "Db".
type Builder func(root string) (*Scale, error)

// Scale is an ordered, octave-repeating sequence of spelled pitch classes.
type Scale struct {
	Name    string
	Root    note.Class
	Degrees []note.Class
}

var majorIntervals = []int{2, 2, 1, 2, 2, 2, 1}
var harmonicMinorIntervals = []int{2, 1, 2, 2, 1, 3, 1}

// Major builds the major scale on the given root.
func Major(root string) (*Scale, error) {
	return build("major", root, majorIntervals)
}

// HarmonicMinor builds the harmonic minor scale on the given root.
func HarmonicMinor(root string) (*Scale, error) {
	return build("harmonic minor", root, harmonicMinorIntervals)
}

// FromIntervals makes a Builder for a custom scale given its ascending
// interval pattern in semitones. The pattern must sum to an octave.
func FromIntervals(name string, intervals []int) Builder {
	return func(root string) (*Scale, error) {
		return build(name, root, intervals)
	}
}

func build(name, root string, intervals []int) (*Scale, error) {
	rc, err := note.ParseClass(root)
	if err != nil {
		return nil, fmt.Errorf("invalid scale root: %v", err)
	}
	if len(intervals) == 0 {
		return nil, fmt.Errorf("scale %v has no intervals", name)
	}
	var sum int
	for _, iv := range intervals {
		sum += iv
	}
	if sum != 12 {
		return nil, fmt.Errorf("scale %v intervals sum to %v semitones, want 12", name, sum)
	}

	s := &Scale{Name: name, Root: rc}
	s.Degrees = append(s.Degrees, rc)
	semitone := rc.Semitone()
	for i := 0; i < len(intervals)-1; i++ {
		semitone = (semitone + intervals[i]) % 12
		var d note.Class
		if len(intervals) == 7 {
			// diatonic scales get one letter per degree
			d, err = spellOnLetter(letterAt(rc, i+1), semitone)
		} else {
			d, err = spellNearest(semitone)
		}
		if err != nil {
			return nil, fmt.Errorf("cannot spell %v scale on %v: %v", name, root, err)
		}
		s.Degrees = append(s.Degrees, d)
	}
	return s, nil
}

var letters = []byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}

func letterAt(root note.Class, offset int) byte {
	return letters[(root.LetterIndex()+offset)%7]
}

func spellOnLetter(letter byte, semitone int) (note.Class, error) {
	natural := note.Class{Letter: letter}.Semitone()
	diff := semitone - natural
	if diff > 6 {
		diff -= 12
	}
	if diff < -6 {
		diff += 12
	}
	if diff < -2 || diff > 2 {
		return note.Class{}, fmt.Errorf("degree %v is unreachable from letter %c", semitone, letter)
	}
	return note.Class{Letter: letter, Accidental: int8(diff)}, nil
}

func spellNearest(semitone int) (note.Class, error) {
	for _, acc := range []int8{0, 1, -1, 2, -2} {
		for _, letter := range letters {
			c := note.Class{Letter: letter, Accidental: acc}
			if c.Semitone() == semitone {
				return c, nil
			}
		}
	}
	return note.Class{}, fmt.Errorf("no spelling for semitone %v", semitone)
}

// DegreeIndex locates a pitch class among the scale's spelled degrees.
// Enharmonic respellings do not match: G# is not in the C major scale
// even though Ab-as-a-pitch isn't either.
func (s *Scale) DegreeIndex(c note.Class) (int, error) {
	for i, d := range s.Degrees {
		if d == c {
			return i, nil
		}
	}
	return 0, fmt.Errorf("note %v is not in the %v %v scale", c, s.Root, s.Name)
}

// Step moves a note by the given number of scale degrees, carrying octave
// changes when the walk wraps around the scale or crosses a C.
func (s *Scale) Step(n note.Note, steps int) (note.Note, error) {
	idx, err := s.DegreeIndex(n.Class)
	if err != nil {
		return note.Note{}, err
	}
	size := len(s.Degrees)
	total := idx + steps
	newIdx := ((total % size) + size) % size
	carry := (total - newIdx) / size
	target := s.Degrees[newIdx]

	// octave bookkeeping: scientific octaves are anchored to the letter C,
	// so track which root-to-root block the note sits in
	blockOctave := n.Octave
	if n.LetterIndex() < s.Root.LetterIndex() {
		blockOctave--
	}
	octave := blockOctave + carry
	if target.LetterIndex() < s.Root.LetterIndex() {
		octave++
	}
	return note.Note{Class: target, Octave: octave}, nil
}

// PitchNames materializes the scale's note names from the root's octave
// upward, mostly useful for debugging and inspection output.
func (s *Scale) PitchNames(fromOctave, octaves int) []string {
	var res []string
	for o := 0; o < octaves; o++ {
		for _, d := range s.Degrees {
			octave := fromOctave + o
			if d.LetterIndex() < s.Root.LetterIndex() {
				octave++
			}
			res = append(res, note.Note{Class: d, Octave: octave}.Name())
		}
	}
	return res
}
