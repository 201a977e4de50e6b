package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/internal/shell"
	"github.com/aretw0/notes/pkg/core"
)

var viewJSON bool

var viewCmd = &cobra.Command{
	Use:   "view [id]",
	Short: "View a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := core.ParseID(args[0])
		if err != nil {
			fatal("Invalid note number", err)
		}

		svc := openService()
		defer svc.Close()

		note, err := svc.Get(cmd.Context(), id)
		if err != nil {
			fatal("Failed to read note", err)
		}

		if viewJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetEscapeHTML(false)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		fmt.Println(shell.FormatDetail(note))
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "Output in JSON format")
}
