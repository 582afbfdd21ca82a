package cmd

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/tonalhq/tonal/constants"
	"github.com/tonalhq/tonal/model"
	"github.com/tonalhq/tonal/transpose"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves transposition and rendering over HTTP",
	Long:  `Serves transposition and rendering over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if input.Root == "" {
		writeError(w, 400, "root is required")
		return
	}
	build, err := scaleBuilder(input.Scale)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	var res [][]string
	switch {
	case input.Step != nil && len(input.Steps) > 0:
		writeError(w, 400, "step and steps are mutually exclusive")
		return
	case input.Step != nil:
		res, err = transpose.Tracks(input.Tracks, *input.Step, input.Root, build)
	case len(input.Steps) > 0:
		res, err = transpose.TracksByPosition(input.Tracks, input.Steps, input.Root, build)
	default:
		writeError(w, 400, "step or steps is required")
		return
	}
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.TransposeResponse{Tracks: res})
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	var input model.RenderRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if len(input.Chords) == 0 {
		writeError(w, 400, "chords is required")
		return
	}
	style := input.Render
	if style == "" {
		style = "block"
	}

	outDir := constants.GetOutDir()
	if err := os.MkdirAll(outDir, 0777); err != nil {
		writeError(w, 500, "Could not create output dir: "+err.Error())
		return
	}
	name := filepath.Join(outDir, uuid.New().String())

	midiPath, wavPath, err := Render(input.Chords, style, name, input.Wav, "")
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.RenderResponse{MidiPath: midiPath, WavPath: wavPath})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	router.HandleFunc("/render", HandleRender).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
