package model

type TransposeRequestBody struct {
	Tracks [][]string `json:"tracks"`
	Step   *int       `json:"step,omitempty"`
	Steps  []int      `json:"steps,omitempty"`
	Root   string     `json:"root"`
	Scale  string     `json:"scale,omitempty"`
}

type TransposeResponse struct {
	Tracks [][]string `json:"tracks"`
}

type RenderRequestBody struct {
	Chords []ChordSpan `json:"chords"`
	Render string      `json:"render,omitempty"`
	Wav    bool        `json:"wav,omitempty"`
}

type RenderResponse struct {
	MidiPath string `json:"midi_path"`
	WavPath  string `json:"wav_path,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
