// Package hint pulls tempo and key hints out of midi file names.
// Sample packs commonly encode both, e.g. "Cymatics - Infinite - 194 BPM D Min.mid".
package hint

import (
	"regexp"
	"strconv"
	"strings"
)

var bpmRegex = regexp.MustCompile(`(?i)(\d{2,3})\s*BPM`)

// Ordered: when two patterns match at the same offset the earlier one wins.
var keyRegexes = []*regexp.Regexp{
	// "C# Maj", "Db Major", "C-dur"
	regexp.MustCompile(`(?i)([A-G][#b]?)\s*[- ]?\s*(maj(?:or)?|dur)`),
	// "A Min", "D minor", "D m"
	regexp.MustCompile(`(?i)([A-G][#b]?)\s*[- ]?\s*(min(?:or)?|m)\b`),
	// compact forms like "F#m", "C#m"
	regexp.MustCompile(`(?i)([A-G][#b]?)(maj|min|m)\b`),
}

// Parse extracts BPM and key hints from a file name. Absent hints come back
// as 0 and "". Conflicting candidates resolve to the leftmost match.
func Parse(filename string) (bpm int, key string) {
	name := filename
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 {
		name = name[:idx]
	}

	if m := bpmRegex.FindStringSubmatch(name); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			bpm = v
		}
	}

	// Leftmost match across all key patterns wins.
	bestStart := -1
	var bestMatch []string
	for _, rx := range keyRegexes {
		loc := rx.FindStringSubmatchIndex(name)
		if loc == nil {
			continue
		}
		if bestStart == -1 || loc[0] < bestStart {
			bestStart = loc[0]
			bestMatch = matchStrings(name, rx, loc)
		}
	}
	if bestMatch != nil {
		key = normalizeKey(bestMatch[1], bestMatch[2])
	}

	return bpm, key
}

func matchStrings(s string, rx *regexp.Regexp, loc []int) []string {
	res := make([]string, 0, len(loc)/2)
	for i := 0; i < len(loc); i += 2 {
		if loc[i] < 0 {
			res = append(res, "")
		} else {
			res = append(res, s[loc[i]:loc[i+1]])
		}
	}
	return res
}

// normalizeKey produces the canonical "D minor" / "C# major" form.
func normalizeKey(tonicRaw, modeRaw string) string {
	tonic := strings.ToUpper(tonicRaw[:1])
	if len(tonicRaw) > 1 {
		switch tonicRaw[1] {
		case '#':
			tonic += "#"
		case 'b', 'B':
			tonic += "b"
		}
	}

	mode := strings.ToLower(modeRaw)
	switch {
	case strings.HasPrefix(mode, "maj") || mode == "dur":
		return tonic + " major"
	case strings.HasPrefix(mode, "min") || mode == "m":
		return tonic + " minor"
	}
	return tonic
}
