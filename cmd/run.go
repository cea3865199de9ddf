package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/jsphweid/trackdex/batch"
	"github.com/jsphweid/trackdex/constants"
	"github.com/jsphweid/trackdex/model"
	"github.com/spf13/cobra"
)

var runFlags struct {
	inputDir     string
	outputDir    string
	timeout      int
	workers      int
	noTrim       bool
	noTrailing   bool
	minTrimTicks uint64
	deleteAfter  bool
	tagTable     string
}

func init() {
	runCmd.Flags().StringVar(&runFlags.inputDir, "input-dir", "midi_files", "Directory containing midi files")
	runCmd.Flags().StringVar(&runFlags.outputDir, "output-dir", "extracted_tracks", "Output directory for organized tracks")
	runCmd.Flags().IntVar(&runFlags.timeout, "timeout", constants.DefaultTimeoutSeconds, "Processing timeout per file in seconds")
	runCmd.Flags().IntVar(&runFlags.workers, "workers", 0, "Parallel workers (0 = automatic)")
	runCmd.Flags().BoolVar(&runFlags.noTrim, "no-trim", false, "Disable trimming of leading/trailing empty space")
	runCmd.Flags().BoolVar(&runFlags.noTrailing, "no-trim-trailing", false, "Disable trimming of trailing empty space")
	runCmd.Flags().Uint64Var(&runFlags.minTrimTicks, "min-trim-ticks", constants.DefaultMinTrimTicks, "Minimum number of ticks to trim")
	runCmd.Flags().BoolVar(&runFlags.deleteAfter, "delete-after", false, "Delete source files after successful processing")
	runCmd.Flags().StringVar(&runFlags.tagTable, "tag-table", "", "DynamoDB table with per-file tag metadata")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Runs the batch extraction pipeline",
	Long:  `Runs the batch extraction pipeline`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(runFlags.inputDir); err != nil {
			return fmt.Errorf("input directory does not exist: %v", runFlags.inputDir)
		}

		cfg := model.RunConfig{
			InputDir:     runFlags.inputDir,
			OutputDir:    runFlags.outputDir,
			Timeout:      time.Duration(runFlags.timeout) * time.Second,
			Workers:      runFlags.workers,
			Trim:         !runFlags.noTrim,
			TrimTrailing: !runFlags.noTrailing,
			MinTrimTicks: runFlags.minTrimTicks,
			DeleteAfter:  runFlags.deleteAfter,
			TagTable:     runFlags.tagTable,
		}

		_, _, err := batch.NewRunner(cfg).Run()
		return err
	},
}
