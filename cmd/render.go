package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tonalhq/tonal/constants"
	"github.com/tonalhq/tonal/db"
	"github.com/tonalhq/tonal/midifile"
	"github.com/tonalhq/tonal/model"
	"github.com/tonalhq/tonal/render"
	"github.com/tonalhq/tonal/synth"
	"gopkg.in/yaml.v3"
)

var renderName string
var renderStyle string
var renderFile string
var renderPreset string
var renderSoundfont string
var renderWav bool

// the progression rendered when nothing else is asked for
var defaultProgression = []model.ChordSpan{
	{Symbol: "Bdim", Ticks: constants.TicksPerQuarter},
	{Symbol: "Em11", Ticks: constants.TicksPerQuarter},
	{Symbol: "Amin9", Ticks: constants.TicksPerQuarter},
	{Symbol: "Dm7", Ticks: constants.TicksPerQuarter},
	{Symbol: "G7"},
	{Symbol: "Cmaj7"},
}

func init() {
	renderCmd.Flags().StringVar(&renderName, "name", constants.DefaultOutputName, "base name for the output files")
	renderCmd.Flags().StringVar(&renderStyle, "render", "block", "chord renderer (block, arpeggio)")
	renderCmd.Flags().StringVar(&renderFile, "file", "", "load the progression from a yaml file")
	renderCmd.Flags().StringVar(&renderPreset, "preset", "", "load a named progression preset from DynamoDB")
	renderCmd.Flags().StringVar(&renderSoundfont, "soundfont", "", "soundfont path (default $SOUNDFONT_PATH)")
	renderCmd.Flags().BoolVar(&renderWav, "wav", false, "also synthesize a wav file with fluidsynth")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [chords]",
	Short: "Renders a chord progression to MIDI/WAV",
	Long:  `Renders a chord progression to MIDI/WAV. Each argument is a chord symbol with an optional tick length, e.g. "Cmaj7" or "Em11:1920".`,
	Run: func(cmd *cobra.Command, args []string) {
		runRender(args, cmd.Flags().Changed("render"))
	},
}

// Render writes <name>.mid for the progression and, when wav is set,
// synthesizes <name>.wav next to it. Returns the paths it wrote.
func Render(spans []model.ChordSpan, style, name string, wav bool, soundfont string) (string, string, error) {
	r, err := render.Lookup(style)
	if err != nil {
		return "", "", err
	}
	s, err := midifile.FromProgression(spans, r)
	if err != nil {
		return "", "", err
	}

	midiPath := name + ".mid"
	if err := midifile.WriteFile(s, midiPath); err != nil {
		return "", "", err
	}
	if !wav {
		return midiPath, "", nil
	}

	if soundfont == "" {
		soundfont = constants.GetSoundfont()
	}
	wavPath := name + ".wav"
	if err := synth.MidiToWav(midiPath, wavPath, soundfont); err != nil {
		return midiPath, "", err
	}
	return midiPath, wavPath, nil
}

func loadProgressionFile(path string) (model.Progression, error) {
	var p model.Progression
	dat, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("could not read progression file: %v", err)
	}
	if err := yaml.Unmarshal(dat, &p); err != nil {
		return p, fmt.Errorf("could not parse progression file %v: %v", path, err)
	}
	return p, nil
}

func runRender(args []string, styleFlagSet bool) {
	spans := defaultProgression
	style := renderStyle

	switch {
	case renderFile != "":
		p, err := loadProgressionFile(renderFile)
		if err != nil {
			panic(err.Error())
		}
		spans = p.Chords
		if p.Render != "" && !styleFlagSet {
			style = p.Render
		}
	case renderPreset != "":
		presets := db.GetProgressions([]string{renderPreset})
		p, ok := presets[renderPreset]
		if !ok {
			panic("No such preset: " + renderPreset)
		}
		spans = p.Chords
		if p.Render != "" && !styleFlagSet {
			style = p.Render
		}
	case len(args) > 0:
		spans = nil
		for _, arg := range args {
			span, err := model.ParseChordSpan(arg)
			if err != nil {
				panic(err.Error())
			}
			spans = append(spans, span)
		}
	}

	midiPath, wavPath, err := Render(spans, style, renderName, renderWav, renderSoundfont)
	if err != nil {
		panic("Could not render because: " + err.Error())
	}
	fmt.Printf("wrote %v\n", midiPath)
	if wavPath != "" {
		fmt.Printf("wrote %v\n", wavPath)
	}
}
