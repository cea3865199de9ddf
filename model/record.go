package model

// KeySource says where a key guess came from.
type KeySource string

const (
	KeySourceHint     KeySource = "hint"
	KeySourceAnalysis KeySource = "analysis"
)

// KeyGuess is a key/scale estimate with a confidence score. A failed
// analysis is represented as {Name: "unknown", Confidence: 0}.
type KeyGuess struct {
	Name       string
	Confidence float64
	Source     KeySource
}

func (k KeyGuess) Known() bool {
	return k.Name != "" && k.Name != "unknown"
}

// TrackRecord is the finalized result of extracting one track.
type TrackRecord struct {
	SourceFile  string
	TrackIndex  int
	Instrument  string
	Key         KeyGuess
	BPM         int
	DurationSec int
	OutputPath  string
	IsDuplicate bool
}

// LogEntry is the flattened, serializable view of a TrackRecord as it
// appears in the extraction log.
type LogEntry struct {
	SourceFile  string `json:"source_file"`
	TrackIndex  int    `json:"track_index"`
	Instrument  string `json:"instrument"`
	Scale       string `json:"scale"`
	BPM         int    `json:"bpm"`
	Duration    int    `json:"duration"`
	OutputPath  string `json:"output_path"`
	IsDuplicate bool   `json:"is_duplicate"`
}

func (r TrackRecord) ToLogEntry() LogEntry {
	return LogEntry{
		SourceFile:  r.SourceFile,
		TrackIndex:  r.TrackIndex,
		Instrument:  r.Instrument,
		Scale:       r.Key.Name,
		BPM:         r.BPM,
		Duration:    r.DurationSec,
		OutputPath:  r.OutputPath,
		IsDuplicate: r.IsDuplicate,
	}
}

// BatchStats aggregates counters across a whole run. Owned exclusively by
// the batch collector.
type BatchStats struct {
	TotalFiles      int
	Processed       int
	Skipped         int
	TimedOut        int
	TracksExtracted int
	UniqueTracks    int
	Duplicates      int
	BytesSaved      int64
	Errors          []string
}
