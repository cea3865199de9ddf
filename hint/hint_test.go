package hint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsesBpmAndKey(t *testing.T) {
	assert := assert.New(t)

	bpm, key := Parse("Song - 125 BPM D Min.mid")
	assert.Equal(125, bpm)
	assert.Equal("D minor", key)
}

func TestParsesCompactForms(t *testing.T) {
	assert := assert.New(t)

	bpm, key := Parse("140bpm C# Maj.mid")
	assert.Equal(140, bpm)
	assert.Equal("C# major", key)

	_, key = Parse("darkloop F#m.mid")
	assert.Equal("F# minor", key)

	_, key = Parse("Db Major groove.midi")
	assert.Equal("Db major", key)
}

func TestCaseInsensitive(t *testing.T) {
	assert := assert.New(t)

	bpm, key := Parse("LOOP 90 bPm a MINOR.mid")
	assert.Equal(90, bpm)
	assert.Equal("A minor", key)
}

func TestNoHints(t *testing.T) {
	assert := assert.New(t)

	bpm, key := Parse("untitled.mid")
	assert.Equal(0, bpm)
	assert.Equal("", key)
}

func TestFirstMatchWinsForConflicts(t *testing.T) {
	assert := assert.New(t)

	// two BPM-like substrings: leftmost wins
	bpm, _ := Parse("120 BPM remix of 90 BPM track.mid")
	assert.Equal(120, bpm)

	// two key tokens: leftmost wins regardless of pattern order
	_, key := Parse("A Min vs C Maj.mid")
	assert.Equal("A minor", key)
}

func TestBpmDigitBounds(t *testing.T) {
	cases := []struct {
		name string
		bpm  int
	}{
		{"9 BPM tiny.mid", 0},     // single digit not a plausible tempo
		{"85 BPM lofi.mid", 85},
		{"194 BPM gabber.mid", 194},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("parse %v", c.name), func(t *testing.T) {
			bpm, _ := Parse(c.name)
			assert.Equal(t, c.bpm, bpm)
		})
	}
}
