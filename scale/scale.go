// Package scale detects the musical key of a midi file. A key hint parsed
// from the filename is trusted outright; otherwise the notes are run
// through the Krumhansl-Schmuckler pitch-class profile algorithm.
package scale

import (
	"context"
	"strings"

	"github.com/jsphweid/trackdex/constants"
	"github.com/jsphweid/trackdex/model"
	"gitlab.com/gomidi/midi/v2/smf"
	"gonum.org/v1/gonum/stat"
)

// Krumhansl-Kessler key profiles: perceived stability of each pitch class
// relative to the tonic.
var majorProfile = []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
var minorProfile = []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}

var noteNames = []string{"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// Detect resolves the key of s. When filenameHint is non-empty it is
// returned as-is with fixed confidence and the content is never analyzed.
func Detect(ctx context.Context, s *smf.SMF, filenameHint string) model.KeyGuess {
	if filenameHint != "" {
		return model.KeyGuess{
			Name:       filenameHint,
			Confidence: constants.HintConfidence,
			Source:     model.KeySourceHint,
		}
	}

	unknown := model.KeyGuess{Name: "unknown", Source: model.KeySourceAnalysis}

	if ctx.Err() != nil || s == nil {
		return unknown
	}

	hist := pitchClassHistogram(s)
	var total float64
	for _, v := range hist {
		total += v
	}
	if total == 0 {
		return unknown
	}

	name, confidence := bestKey(hist)
	if confidence > constants.MaxAnalysisConfidence {
		confidence = constants.MaxAnalysisConfidence
	}
	return model.KeyGuess{
		Name:       name,
		Confidence: confidence,
		Source:     model.KeySourceAnalysis,
	}
}

// pitchClassHistogram counts note starts per pitch class across all tracks.
func pitchClassHistogram(s *smf.SMF) []float64 {
	hist := make([]float64, 12)
	for _, track := range s.Tracks {
		for _, evt := range track {
			var channel, key, velocity uint8
			if evt.Message.GetNoteStart(&channel, &key, &velocity) {
				hist[key%12]++
			}
		}
	}
	return hist
}

// bestKey correlates the histogram against both profiles at every root and
// returns the winner. Confidence is the Pearson r rescaled to [0,1].
func bestKey(hist []float64) (string, float64) {
	best := -1.0
	name := "unknown"

	rotated := make([]float64, 12)
	for root := 0; root < 12; root++ {
		for i := 0; i < 12; i++ {
			rotated[i] = hist[(root+i)%12]
		}

		if r := stat.Correlation(rotated, majorProfile, nil); r > best {
			best = r
			name = noteNames[root] + " major"
		}
		if r := stat.Correlation(rotated, minorProfile, nil); r > best {
			best = r
			name = noteNames[root] + " minor"
		}
	}

	confidence := (best + 1.0) / 2.0
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}
	return name, confidence
}

// FormatForFilename turns "D minor" into the "dminor" token used in output
// names. Unknown keys produce an empty token.
func FormatForFilename(key model.KeyGuess) string {
	if !key.Known() {
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(key.Name), " ", "")
}
