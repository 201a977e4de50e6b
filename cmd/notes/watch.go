package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	notelifecycle "github.com/aretw0/notes/pkg/adapters/lifecycle"
	"github.com/aretw0/notes/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the notes again whenever the notes file changes",
	Long:  `Watch observes the notes file and prints the list each time another process changes it. Stop with Ctrl+C.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		svc := openService()
		defer svc.Close()

		store, ok := svc.Store().(core.Watchable)
		if !ok {
			fatal("Failed to watch notes", fmt.Errorf("backend %q does not support watching", cfg.Backend))
		}

		src := notelifecycle.NewSource(store)
		if err := src.Start(ctx); err != nil {
			fatal("Failed to watch notes", err)
		}

		fmt.Printf("Watching %s (Ctrl+C to stop)\n", cfg.File)
		for e := range src.Events() {
			fmt.Printf("\n%s\n", e)
			printCurrent(ctx, svc)
		}
	},
}

func printCurrent(ctx context.Context, svc *core.Service) {
	list, err := svc.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading notes: %v\n", err)
		return
	}
	printNotes(list, "The note list is empty.")
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
