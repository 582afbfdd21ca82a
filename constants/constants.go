package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetSoundfont() string {
	path := os.Getenv("SOUNDFONT_PATH")
	if path != "" {
		return path
	}

	panic("SOUNDFONT_PATH environment variable is not set!")
}

const TicksPerQuarter = 960

// a chord with no explicit length rings for half a bar
const DefaultChordTicks = TicksPerQuarter * 2

const DefaultVelocity = 64

const DefaultOutputName = "audio_output"
