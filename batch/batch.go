// Package batch drives the extraction pipeline across a directory of midi
// files with a fixed worker pool and per-file timeouts. Workers stay off
// the filesystem; the single collector goroutine owns all writes, the
// stats and the extraction log, so an abandoned file leaves nothing
// behind.
package batch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/trackdex/constants"
	"github.com/jsphweid/trackdex/db"
	"github.com/jsphweid/trackdex/dedup"
	"github.com/jsphweid/trackdex/model"
	"github.com/jsphweid/trackdex/scale"
	"github.com/jsphweid/trackdex/tags"
	"github.com/jsphweid/trackdex/util"
)

type Runner struct {
	cfg      model.RunConfig
	registry *dedup.Registry
}

func NewRunner(cfg model.RunConfig) *Runner {
	return &Runner{cfg: cfg, registry: dedup.NewRegistry()}
}

// Run processes every eligible file in the input directory and returns the
// aggregate stats plus the log entries that were written. Only the input
// directory being unreadable is fatal; per-file failures become counters.
func (r *Runner) Run() (*model.BatchStats, []model.LogEntry, error) {
	files, err := util.ListMidiFiles(r.cfg.InputDir)
	if err != nil {
		return nil, nil, fmt.Errorf("could not read input dir: %w", err)
	}

	stats := &model.BatchStats{TotalFiles: len(files)}

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = util.Min(runtime.NumCPU(), constants.MaxWorkers)
	}

	fmt.Printf("Starting batch processing of %v midi files...\n", len(files))
	fmt.Printf("Output directory: %v\n", r.cfg.OutputDir)
	fmt.Printf("Processing timeout: %v per file\n", r.cfg.Timeout)
	fmt.Printf("Using %v workers for parallel extraction\n\n", workers)

	tagFolders := r.lookupTagFolders(files)

	jobs := make(chan string)
	results := make(chan fileResult)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				results <- r.runOne(name)
			}
		}()
	}
	go func() {
		for _, name := range files {
			jobs <- name
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	entries := make([]model.LogEntry, 0)
	prog := newProgress(len(files))
	for res := range results {
		r.collect(res, stats, &entries, tagFolders[res.File])
		prog.fileDone()
	}
	prog.flush()

	// re-sort so a run's log is deterministic regardless of completion order
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SourceFile != entries[j].SourceFile {
			return entries[i].SourceFile < entries[j].SourceFile
		}
		return entries[i].TrackIndex < entries[j].TrackIndex
	})

	if err := r.writeLog(entries); err != nil {
		stats.Errors = append(stats.Errors, "Failed writing extraction log: "+err.Error())
	}

	r.printSummary(stats)
	return stats, entries, nil
}

// runOne bounds a single file's pipeline by the configured timeout. On
// timeout the in-flight goroutine is abandoned and its results discarded.
func (r *Runner) runOne(name string) fileResult {
	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Timeout)
	defer cancel()

	done := make(chan fileResult, 1)
	go func() {
		tracks, err := processFile(ctx, r.cfg, name)
		if err != nil {
			done <- fileResult{File: name, State: stateFailed, Err: err}
			return
		}
		done <- fileResult{File: name, State: stateCompleted, Tracks: tracks}
	}()

	select {
	case res := <-done:
		if res.Err != nil && errors.Is(res.Err, context.DeadlineExceeded) {
			return fileResult{File: name, State: stateTimedOut, Err: res.Err}
		}
		return res
	case <-ctx.Done():
		return fileResult{File: name, State: stateTimedOut, Err: ctx.Err()}
	}
}

// collect merges one file's outcome into the aggregate state. Runs only on
// the collector goroutine.
func (r *Runner) collect(res fileResult, stats *model.BatchStats, entries *[]model.LogEntry, tagFolder string) {
	switch res.State {
	case stateTimedOut:
		stats.Skipped++
		stats.TimedOut++
		stats.Errors = append(stats.Errors, "Timeout processing file: "+res.File)
		fmt.Printf("Skipping %v because: timeout\n", res.File)

	case stateFailed:
		stats.Skipped++
		stats.Errors = append(stats.Errors, fmt.Sprintf("Error processing %v: %v", res.File, res.Err))
		fmt.Printf("Skipping %v because: %v\n", res.File, res.Err)

	case stateCompleted:
		instrumentCounts := make(map[string]int)
		for _, out := range res.Tracks {
			instrumentCounts[out.Track.Instrument]++
		}

		clean := true
		for _, out := range res.Tracks {
			multi := instrumentCounts[out.Track.Instrument] > 1
			record, ok := r.commitTrack(res.File, out, tagFolder, multi, stats)
			if !ok {
				clean = false
				continue
			}
			*entries = append(*entries, record.ToLogEntry())
		}
		stats.Processed++

		if r.cfg.DeleteAfter && clean {
			src := filepath.Join(r.cfg.InputDir, res.File)
			if err := os.Remove(src); err != nil {
				stats.Errors = append(stats.Errors, fmt.Sprintf("Failed to delete %v: %v", res.File, err))
			}
		}
	}
}

// commitTrack runs dedup and, for first occurrences, the physical write.
// A failed write drops only this track; the hash reservation is released
// so a later identical buffer can win.
func (r *Runner) commitTrack(file string, out trackOutput, tagFolder string, multi bool, stats *model.BatchStats) (model.TrackRecord, bool) {
	folder := filepath.Join(r.cfg.OutputDir, filepath.FromSlash(tagFolder), util.SanitizeFilename(out.Track.Instrument))
	outPath := filepath.Join(folder, outputFilename(out, multi))

	canonical, dup := r.registry.Register(out.Data, outPath)

	record := model.TrackRecord{
		SourceFile:  file,
		TrackIndex:  out.Track.Index,
		Instrument:  out.Track.Instrument,
		Key:         out.Key,
		BPM:         out.BPM,
		DurationSec: out.Track.DurationSec,
		OutputPath:  canonical,
		IsDuplicate: dup,
	}

	stats.TracksExtracted++
	if dup {
		stats.Duplicates++
		stats.BytesSaved += int64(len(out.Data))
		return record, true
	}

	if err := writeFileAtomic(folder, outPath, out.Data); err != nil {
		r.registry.Forget(out.Data, outPath)
		stats.TracksExtracted--
		stats.Errors = append(stats.Errors, fmt.Sprintf("Failed writing %v: %v", outPath, err))
		fmt.Printf("Could not write %v because: %v\n", outPath, err)
		return record, false
	}
	stats.UniqueTracks++
	return record, true
}

// writeFileAtomic lands data at path via a temp name and rename, so a
// reader never sees a half-written track.
func writeFileAtomic(folder, path string, data []byte) error {
	if err := os.MkdirAll(folder, 0777); err != nil {
		return err
	}
	tmp := path + "." + uuid.New().String() + ".tmp"
	if err := os.WriteFile(tmp, data, 0666); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// outputFilename builds names like "piano_125_BPM_30_sec_dminor.mid". The
// track index is appended when a file yields several tracks of the same
// instrument.
func outputFilename(out trackOutput, multi bool) string {
	name := fmt.Sprintf("%v_%v_BPM_%v_sec", util.SanitizeFilename(out.Track.Instrument), out.BPM, out.Track.DurationSec)
	if token := scale.FormatForFilename(out.Key); token != "" {
		name += "_" + token
	}
	if multi {
		name += fmt.Sprintf("_%v", out.Track.Index)
	}
	return name + ".mid"
}

// lookupTagFolders fetches tag metadata for all files up front. Lookup
// failures degrade to instrument-only organization, never fail the run.
func (r *Runner) lookupTagFolders(files []string) map[string]string {
	res := make(map[string]string)
	if r.cfg.TagTable == "" {
		return res
	}

	tagsByFile, err := db.GetTrackTags(r.cfg.TagTable, files)
	if err != nil {
		fmt.Printf("Tag lookup failed, organizing by instrument only: %v\n", err)
		return res
	}
	for file, tagList := range tagsByFile {
		res[file] = tags.FolderPath(tagList)
	}
	return res
}

func (r *Runner) writeLog(entries []model.LogEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0777); err != nil {
		return err
	}
	path := filepath.Join(r.cfg.OutputDir, constants.LogFilename)
	if err := os.WriteFile(path, data, 0666); err != nil {
		return err
	}
	fmt.Printf("\nExtraction log saved to: %v\n", path)
	return nil
}

func (r *Runner) printSummary(stats *model.BatchStats) {
	report := r.registry.GetReport()

	fmt.Println("\n============================================================")
	fmt.Println("BATCH PROCESSING COMPLETE")
	fmt.Println("============================================================")
	fmt.Printf("Total midi files processed:    %v\n", stats.Processed)
	fmt.Printf("Skipped (corrupted/timeout):   %v\n", stats.Skipped)
	fmt.Printf("Processing timeouts:           %v\n", stats.TimedOut)
	fmt.Printf("Total tracks extracted:        %v\n", stats.TracksExtracted)
	fmt.Printf("Unique extracted tracks:       %v\n", stats.UniqueTracks)
	fmt.Printf("Duplicates found:              %v\n", report.Duplicates)
	fmt.Printf("Disk bytes saved:              %v\n", report.BytesSaved)

	if len(stats.Errors) > 0 {
		fmt.Printf("Errors encountered:            %v\n", len(stats.Errors))
		for i, msg := range stats.Errors {
			if i == 5 {
				fmt.Printf("  ... and %v more\n", len(stats.Errors)-5)
				break
			}
			fmt.Printf("  - %v\n", msg)
		}
	}
	fmt.Println("============================================================")
}
