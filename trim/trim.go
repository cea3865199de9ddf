// Package trim removes leading and trailing silence from an extracted
// track. Trimming is a pure offset shift or truncation; relative timing of
// retained events is never altered.
package trim

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

type Options struct {
	// Gaps shorter than MinTicks are left alone.
	MinTicks uint64
	// Trailing enables truncation after the last note end.
	Trailing bool
}

type Stats struct {
	LeadingTicks  uint64
	TrailingTicks uint64
}

// Track returns a trimmed copy of events. Tracks without notes come back
// unchanged.
func Track(events smf.Track, opts Options) (smf.Track, Stats) {
	var stats Stats

	abs := make([]uint64, len(events))
	var ticks uint64
	var firstNote, lastNoteEnd uint64
	haveNote := false

	for i, evt := range events {
		ticks += uint64(evt.Delta)
		abs[i] = ticks

		var channel, key, velocity uint8
		if evt.Message.GetNoteStart(&channel, &key, &velocity) {
			if !haveNote {
				firstNote = ticks
				haveNote = true
			}
			if ticks > lastNoteEnd {
				lastNoteEnd = ticks
			}
		} else if evt.Message.GetNoteEnd(&channel, &key) {
			if ticks > lastNoteEnd {
				lastNoteEnd = ticks
			}
		}
	}

	if !haveNote {
		return events, stats
	}

	end := ticks

	var shift uint64
	if firstNote >= opts.MinTicks {
		shift = firstNote
		stats.LeadingTicks = shift
	}

	clamp := end
	if opts.Trailing && end-lastNoteEnd >= opts.MinTicks {
		clamp = lastNoteEnd
		stats.TrailingTicks = end - lastNoteEnd
	}

	if shift == 0 && clamp == end {
		return events, stats
	}

	res := make(smf.Track, len(events))
	var prev uint64
	for i, evt := range events {
		t := abs[i]
		if t > clamp {
			t = clamp
		}
		if t > shift {
			t -= shift
		} else {
			t = 0
		}
		evt.Delta = uint32(t - prev)
		prev = t
		res[i] = evt
	}
	return res, stats
}
