package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "winline",
	Short: "Payline winning combination tools",
	Long: `winline evaluates a single payline offline.

A winning combination is a run of three or more equal symbols.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
