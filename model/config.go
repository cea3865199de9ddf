package model

import "time"

// RunConfig holds everything the batch scheduler needs for one run.
type RunConfig struct {
	InputDir     string
	OutputDir    string
	Timeout      time.Duration
	Workers      int
	Trim         bool
	TrimTrailing bool
	MinTrimTicks uint64
	DeleteAfter  bool

	// DynamoDB table holding per-file tag metadata. Empty disables
	// tag-based folder organization.
	TagTable string
}
