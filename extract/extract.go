// Package extract splits a parsed multi-track midi file into per-track
// buffers with instrument labels. Tracks without note events are dropped.
package extract

import (
	"math"

	"github.com/jsphweid/trackdex/midi"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Track is one non-empty track lifted out of a source file.
type Track struct {
	Index         int
	Name          string
	Instrument    string
	Program       int // -1 when the track has no program change
	Events        smf.Track
	NoteCount     int
	FirstNoteTick uint64
	LastNoteTick  uint64
	DurationSec   int
}

// Tracks enumerates all tracks of s, skipping those with zero note events.
func Tracks(s *smf.SMF) []Track {
	var res []Track
	tpq := midi.Resolution(s)
	for i, tr := range s.Tracks {
		t, ok := scanTrack(i, tr, tpq)
		if ok {
			res = append(res, t)
		}
	}
	return res
}

// scanTrack walks a track once, collecting note boundaries, the track name
// and the instrument metadata. Returns false for empty tracks.
func scanTrack(idx int, events smf.Track, tpq uint32) (Track, bool) {
	t := Track{
		Index:   idx,
		Program: -1,
		Events:  events,
	}

	var absTicks uint64
	var percussion bool
	var lastStart uint64

	for _, evt := range events {
		absTicks += uint64(evt.Delta)

		var channel, key, velocity uint8
		switch {
		case evt.Message.GetNoteStart(&channel, &key, &velocity):
			if t.NoteCount == 0 {
				t.FirstNoteTick = absTicks
			}
			t.NoteCount++
			lastStart = absTicks
			if channel == 9 {
				percussion = true
			}
		case evt.Message.GetNoteEnd(&channel, &key):
			if absTicks > t.LastNoteTick {
				t.LastNoteTick = absTicks
			}
			if channel == 9 {
				percussion = true
			}
		default:
			var name string
			if t.Name == "" && evt.Message.GetMetaTrackName(&name) {
				t.Name = name
			}
			var program uint8
			if t.Program < 0 && evt.Message.GetProgramChange(&channel, &program) {
				t.Program = int(program)
			}
			if evt.Message.GetChannel(&channel) && channel == 9 {
				percussion = true
			}
		}
	}

	if t.NoteCount == 0 {
		return t, false
	}
	if t.LastNoteTick < lastStart {
		t.LastNoteTick = lastStart
	}

	t.Instrument = InstrumentName(t.Program, percussion)
	t.DurationSec = durationSeconds(t.FirstNoteTick, t.LastNoteTick, tpq)
	return t, true
}

// durationSeconds converts the first-to-last note span to seconds at the
// 120 BPM assumption, rounding and never reporting less than a second.
func durationSeconds(first, last uint64, tpq uint32) int {
	if last <= first || tpq == 0 {
		return 1
	}
	seconds := float64(last-first) / float64(tpq) * 0.5
	res := int(math.Round(seconds))
	if res < 1 {
		res = 1
	}
	return res
}
