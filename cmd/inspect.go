package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tonalhq/tonal/midifile"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Inspects a midi file",
	Long:  `Inspects a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midifile.ReadFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}
	for i, names := range midifile.TrackNotes(s) {
		fmt.Printf("track %v: %v\n", i, strings.Join(names, " "))
	}
}
