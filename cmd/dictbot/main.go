// Command dictbot runs the Discord dictionary bot.
//
// Subcommands:
//
//	serve          connect to Discord and answer !define commands
//	define <word>  one-shot lookup printed to stdout
//	version        print build information
//
// Exit codes: 0 = success, 1 = error or word not found.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
