package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/internal/shell"
	"github.com/aretw0/notes/pkg/core"
)

var (
	listJSON  bool
	listTitle string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		var (
			list []core.Note
			err  error
		)
		if listTitle != "" {
			list, err = svc.Match(cmd.Context(), listTitle)
		} else {
			list, err = svc.List(cmd.Context())
		}
		if err != nil {
			fatal("Failed to list notes", err)
		}

		printNotes(list, "The note list is empty.")
	},
}

// printNotes writes notes as summary lines, or as JSON with --json.
func printNotes(list []core.Note, empty string) {
	if listJSON {
		if list == nil {
			list = []core.Note{}
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(list); err != nil {
			fatal("Failed to encode JSON", err)
		}
		return
	}

	if len(list) == 0 {
		fmt.Println(empty)
		return
	}
	for _, n := range list {
		fmt.Println(shell.FormatSummary(n))
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listTitle, "title", "", "Only notes whose title matches a glob pattern")
}
