package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tonal",
	Short: "Chord progressions and scale-wise transposition",
	Long:  `Generates chord progressions as MIDI/WAV audio and transposes melodic lines within a scale.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
