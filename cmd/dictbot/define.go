package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dictionary-bot/internal/app"
	"github.com/heartmarshall/dictionary-bot/internal/domain"
)

var defineCmd = &cobra.Command{
	Use:   "define <word>",
	Short: "Look up a word and print its definition",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word := strings.Join(args, " ")
		err := app.Define(cmd.Context(), word, cmd.OutOrStdout())
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintf(os.Stderr, "dictbot: %v\n", err)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(defineCmd)
}
