package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jsphweid/trackdex/extract"
	"github.com/jsphweid/trackdex/hint"
	"github.com/jsphweid/trackdex/midi"
	"github.com/jsphweid/trackdex/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a midi file",
	Long:  `Inspects a midi file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	name := filepath.Base(path)
	bpmHint, keyHint := hint.Parse(name)
	key := scale.Detect(context.Background(), parsed, keyHint)

	fmt.Printf("File: %v\n", name)
	fmt.Printf("Resolution: %v ticks per beat\n", midi.Resolution(parsed))
	fmt.Printf("File BPM: %v (filename hint: %v)\n", midi.FileBPM(parsed), bpmHint)
	fmt.Printf("Key: %v (confidence %.2f, source %v)\n\n", key.Name, key.Confidence, key.Source)

	tracks := extract.Tracks(parsed)
	fmt.Printf("Non-empty tracks: %v of %v\n", len(tracks), len(parsed.Tracks))
	for _, t := range tracks {
		fmt.Printf("Track %v: %v\n", t.Index, t.Instrument)
		if t.Name != "" {
			fmt.Printf("  Name: %v\n", t.Name)
		}
		fmt.Printf("  Note events: %v\n", t.NoteCount)
		fmt.Printf("  Span: ticks %v-%v (~%v sec)\n", t.FirstNoteTick, t.LastNoteTick, t.DurationSec)
	}
	return nil
}
