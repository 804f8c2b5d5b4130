package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dictionary-bot/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
