package midi

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/jsphweid/trackdex/constants"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// NewSingleTrack wraps one track in a fresh SMF carrying the source
// file's time format.
func NewSingleTrack(tf smf.TimeFormat, track smf.Track) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = tf
	res.Tracks = append(res.Tracks, track)
	return &res
}

// Render serializes an SMF to bytes. Panics from the underlying writer are
// returned as errors, same treatment as ReadMidiFile.
func Render(s *smf.SMF) (data []byte, e error) {
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	buf := new(bytes.Buffer)
	_, err := s.WriteTo(buf)
	if err != nil {
		return nil, fmt.Errorf("Error serializing midi file... %s", err.Error())
	}
	return buf.Bytes(), nil
}

// Resolution returns the file's ticks-per-quarter-note, falling back to a
// default for SMPTE-timed files.
func Resolution(s *smf.SMF) uint32 {
	if mt, ok := s.TimeFormat.(smf.MetricTicks); ok && mt > 0 {
		return uint32(mt)
	}
	return constants.DefaultTicksPerBeat
}

// FileBPM returns the BPM of the first tempo event anywhere in the file,
// or 0 when there is none.
func FileBPM(s *smf.SMF) int {
	for _, track := range s.Tracks {
		for _, evt := range track {
			var bpm float64
			if evt.Message.GetMetaTempo(&bpm) && bpm > 0 {
				return int(math.Round(bpm))
			}
		}
	}
	return 0
}
