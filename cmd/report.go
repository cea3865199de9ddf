package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/trackdex/constants"
	"github.com/jsphweid/trackdex/model"
	"github.com/jsphweid/trackdex/util"
	"github.com/spf13/cobra"
)

var reportDir string

func init() {
	reportCmd.Flags().StringVar(&reportDir, "dir", "extracted_tracks", "Output directory holding the extraction log")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes an extraction log",
	Long:  `Summarizes an extraction log`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(reportDir)
	},
}

func readLog(dir string) ([]model.LogEntry, error) {
	data, err := os.ReadFile(filepath.Join(dir, constants.LogFilename))
	if err != nil {
		return nil, err
	}
	var entries []model.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func report(dir string) error {
	entries, err := readLog(dir)
	if err != nil {
		return err
	}

	perInstrument := make(map[string]int)
	var duplicates int
	for _, entry := range entries {
		perInstrument[entry.Instrument]++
		if entry.IsDuplicate {
			duplicates++
		}
	}

	fmt.Printf("Log entries: %v\n", len(entries))
	fmt.Printf("Unique tracks: %v\n", len(entries)-duplicates)
	fmt.Printf("Duplicates: %v\n\n", duplicates)

	for _, instrument := range util.GetKeysSorted(perInstrument) {
		fmt.Printf("%v: %v\n", instrument, perInstrument[instrument])
	}
	return nil
}
