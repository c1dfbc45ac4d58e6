package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "Trading-discipline and performance-tracking service",
}

func Execute() error {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(migrateCmd)
	return rootCmd.Execute()
}
