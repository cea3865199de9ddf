package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trackdex",
	Short: "Splits multi-track midi files into organized per-instrument tracks",
	Long:  `Splits multi-track midi files into organized per-instrument tracks`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
