package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tonalhq/tonal/midifile"
	"github.com/tonalhq/tonal/scale"
	"github.com/tonalhq/tonal/transpose"
)

var transposeRoot string
var transposeScale string
var transposeSteps string
var transposeOut string

func init() {
	transposeCmd.Flags().StringVar(&transposeRoot, "root", "C", "root pitch of the scale")
	transposeCmd.Flags().StringVar(&transposeScale, "scale", "major", "scale type (major, harmonic-minor)")
	transposeCmd.Flags().StringVar(&transposeSteps, "steps", "0", "scale steps to shift: one integer, or one per position comma-separated")
	transposeCmd.Flags().StringVar(&transposeOut, "out", "", "also write the result to a midi file")
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose [tracks]",
	Short: "Transposes tracks within a scale",
	Long:  `Transposes tracks within a scale. Each argument is one track of space-separated note names, e.g. "C4 E4 B3 C4".`,
	Run: func(cmd *cobra.Command, args []string) {
		runTranspose(args)
	},
}

func scaleBuilder(name string) (scale.Builder, error) {
	switch name {
	case "", "major":
		return scale.Major, nil
	case "harmonic-minor", "harmonicminor":
		return scale.HarmonicMinor, nil
	}
	return nil, fmt.Errorf("unknown scale: %v", name)
}

func parseSteps(s string) ([]int, error) {
	var res []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid step count %q", part)
		}
		res = append(res, v)
	}
	return res, nil
}

func runTranspose(args []string) {
	if len(args) == 0 {
		panic("Need at least 1 track...")
	}
	tracks := make([][]string, len(args))
	for i, arg := range args {
		tracks[i] = strings.Fields(arg)
	}

	build, err := scaleBuilder(transposeScale)
	if err != nil {
		panic(err.Error())
	}
	steps, err := parseSteps(transposeSteps)
	if err != nil {
		panic(err.Error())
	}

	var res [][]string
	if len(steps) == 1 {
		res, err = transpose.Tracks(tracks, steps[0], transposeRoot, build)
	} else {
		res, err = transpose.TracksByPosition(tracks, steps, transposeRoot, build)
	}
	if err != nil {
		panic("Could not transpose because: " + err.Error())
	}

	for _, track := range res {
		fmt.Println(strings.Join(track, " "))
	}

	if transposeOut != "" {
		s, err := midifile.FromTracks(res)
		if err != nil {
			panic("Could not build midi file: " + err.Error())
		}
		if err := midifile.WriteFile(s, transposeOut); err != nil {
			panic(err.Error())
		}
	}
}
