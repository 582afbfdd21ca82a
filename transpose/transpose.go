// Package transpose shifts melodic lines by scale degrees within a named
// scale. Note names go in, note names come out; the scale is built once
// per call and reused for every note.
package transpose

import (
	"fmt"

	"github.com/tonalhq/tonal/note"
	"github.com/tonalhq/tonal/scale"
)

// Track shifts every note in one melodic line by steps scale degrees
// within the scale built on root. A nil builder means the major scale.
func Track(track []string, steps int, root string, build scale.Builder) ([]string, error) {
	sc, err := buildScale(root, build)
	if err != nil {
		return nil, err
	}
	return shift(sc, track, func(int) int { return steps })
}

// Tracks applies the same uniform shift to several parallel lines.
func Tracks(tracks [][]string, steps int, root string, build scale.Builder) ([][]string, error) {
	sc, err := buildScale(root, build)
	if err != nil {
		return nil, err
	}
	res := make([][]string, len(tracks))
	for i, track := range tracks {
		res[i], err = shift(sc, track, func(int) int { return steps })
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// TrackByPosition shifts each time-position of one line by its own step
// count. len(steps) must equal len(track).
func TrackByPosition(track []string, steps []int, root string, build scale.Builder) ([]string, error) {
	if len(steps) != len(track) {
		return nil, fmt.Errorf("have %v step counts for %v positions", len(steps), len(track))
	}
	sc, err := buildScale(root, build)
	if err != nil {
		return nil, err
	}
	return shift(sc, track, func(i int) int { return steps[i] })
}

// TracksByPosition broadcasts a per-position step sequence across several
// parallel lines. Every track must have exactly len(steps) positions; the
// shapes are validated before any note is transposed.
func TracksByPosition(tracks [][]string, steps []int, root string, build scale.Builder) ([][]string, error) {
	for i, track := range tracks {
		if len(track) != len(steps) {
			return nil, fmt.Errorf("track %v has %v positions but %v step counts were given", i, len(track), len(steps))
		}
	}
	sc, err := buildScale(root, build)
	if err != nil {
		return nil, err
	}
	res := make([][]string, len(tracks))
	for i, track := range tracks {
		res[i], err = shift(sc, track, func(p int) int { return steps[p] })
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func buildScale(root string, build scale.Builder) (*scale.Scale, error) {
	if build == nil {
		build = scale.Major
	}
	return build(root)
}

func shift(sc *scale.Scale, track []string, stepAt func(int) int) ([]string, error) {
	res := make([]string, len(track))
	for i, name := range track {
		n, err := note.Parse(name)
		if err != nil {
			return nil, err
		}
		moved, err := sc.Step(n, stepAt(i))
		if err != nil {
			return nil, err
		}
		res[i] = moved.Name()
	}
	return res, nil
}
