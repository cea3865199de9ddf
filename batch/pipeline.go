package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jsphweid/trackdex/constants"
	"github.com/jsphweid/trackdex/extract"
	"github.com/jsphweid/trackdex/hint"
	"github.com/jsphweid/trackdex/midi"
	"github.com/jsphweid/trackdex/model"
	"github.com/jsphweid/trackdex/scale"
	"github.com/jsphweid/trackdex/trim"
)

// Terminal outcome of one file's run. Outcomes are final; there are no
// retries.
type fileState int

const (
	stateCompleted fileState = iota
	stateTimedOut
	stateFailed
)

// trackOutput is a fully rendered track waiting for dedup and commit.
// Workers never write files; they only produce these.
type trackOutput struct {
	Track extract.Track
	Key   model.KeyGuess
	BPM   int
	Data  []byte
}

type fileResult struct {
	File   string
	State  fileState
	Err    error
	Tracks []trackOutput
}

// processFile runs the full in-memory pipeline for one source file:
// parse, hint, key detection, track extraction, trim, render. It checks
// ctx between the expensive steps so an abandoned file stops doing work.
func processFile(ctx context.Context, cfg model.RunConfig, name string) ([]trackOutput, error) {
	parsed, err := midi.ReadMidiFile(filepath.Join(cfg.InputDir, name))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bpmHint, keyHint := hint.Parse(name)
	key := scale.Detect(ctx, parsed, keyHint)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracks := extract.Tracks(parsed)
	if len(tracks) == 0 {
		return nil, errors.New("no non-empty tracks")
	}

	bpm := bpmHint
	if bpm == 0 {
		bpm = midi.FileBPM(parsed)
	}
	if bpm == 0 {
		bpm = constants.FallbackBPM
	}

	var res []trackOutput
	for _, t := range tracks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		events := t.Events
		if cfg.Trim {
			events, _ = trim.Track(events, trim.Options{
				MinTicks: cfg.MinTrimTicks,
				Trailing: cfg.TrimTrailing,
			})
		}

		data, err := midi.Render(midi.NewSingleTrack(parsed.TimeFormat, events))
		if err != nil {
			// drop only this track, siblings still count
			fmt.Printf("Skipping track %v of %v because: %v\n", t.Index, name, err)
			continue
		}
		res = append(res, trackOutput{Track: t, Key: key, BPM: bpm, Data: data})
	}
	if len(res) == 0 {
		return nil, errors.New("no renderable tracks")
	}
	return res, nil
}
