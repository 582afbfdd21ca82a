package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	"github.com/tonalhq/tonal/note"
	"github.com/tonalhq/tonal/scale"
	"github.com/tonalhq/tonal/util"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenRoot string
var listenScale string
var listenSteps int

func init() {
	listenCmd.Flags().StringVar(&listenRoot, "root", "C", "root pitch of the scale")
	listenCmd.Flags().StringVar(&listenScale, "scale", "major", "scale type (major, harmonic-minor)")
	listenCmd.Flags().IntVar(&listenSteps, "steps", 0, "scale steps to shift the incoming notes")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Echoes live MIDI input transposed within a scale",
	Long:  `Echoes live MIDI input transposed within a scale`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

// held tracks the currently pressed keys. The MIDI driver callback and
// the debounce timer run on different goroutines, so all access goes
// through the locked accessors.
type held struct {
	mu   sync.Mutex
	keys map[uint8]bool
}

func newHeld() *held {
	return &held{keys: make(map[uint8]bool)}
}

func (h *held) press(key uint8) {
	h.mu.Lock()
	h.keys[key] = true
	h.mu.Unlock()
}

func (h *held) release(key uint8) {
	h.mu.Lock()
	delete(h.keys, key)
	h.mu.Unlock()
}

func (h *held) sorted() []uint8 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return util.GetKeysSorted(h.keys)
}

func echoLine(sc *scale.Scale, keys []uint8, steps int) string {
	var names []string
	for _, key := range keys {
		n := note.FromMIDI(key)
		moved, err := sc.Step(n, steps)
		if err != nil {
			// out of scale, echo untransposed
			names = append(names, n.Name()+"?")
			continue
		}
		names = append(names, moved.Name())
	}
	return strings.Join(names, " ")
}

func listen() {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	build, err := scaleBuilder(listenScale)
	if err != nil {
		panic(err.Error())
	}
	sc, err := build(listenRoot)
	if err != nil {
		panic(err.Error())
	}

	onNotes := newHeld()

	// wait for the held notes to settle before echoing
	settled := debounce.New(300 * time.Millisecond)

	echo := func() {
		keys := onNotes.sorted()
		if len(keys) == 0 {
			return
		}
		fmt.Println(echoLine(sc, keys, listenSteps))
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes.press(key)
			settled(echo)
		case msg.GetNoteEnd(&ch, &key):
			onNotes.release(key)
			settled(echo)
		default:
			// ignore
		}
	})

	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
}
