package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dictbot",
	Short: "Discord dictionary bot backed by dictionary.com",
	// Errors are reported by each command so that "not found" stays quiet.
	SilenceErrors: true,
	SilenceUsage:  true,
}
