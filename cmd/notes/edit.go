package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
)

var (
	editTitle string
	editBody  string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Replace the title or body of a note",
	Long: `Edit replaces the title and/or body of a note and refreshes its timestamp.
The id is kept, and a field whose flag is not given keeps its current value.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := core.ParseID(args[0])
		if err != nil {
			fatal("Invalid note number", err)
		}

		svc := openService()
		defer svc.Close()

		current, err := svc.Get(cmd.Context(), id)
		if err != nil {
			fatal("Failed to edit note", err)
		}

		flags := cmd.Flags()
		title, body := editedFields(current, flags.Changed("title"), flags.Changed("body"))
		if _, err := svc.Edit(cmd.Context(), id, title, body); err != nil {
			fatal("Failed to edit note", err)
		}
		fmt.Printf("Note %d edited.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New note title")
	editCmd.Flags().StringVarP(&editBody, "body", "b", "", "New note body")
	editCmd.MarkFlagsOneRequired("title", "body")
}

// editedFields returns the title and body to store, keeping the current
// value of every field whose flag was not set.
func editedFields(current core.Note, titleSet, bodySet bool) (string, string) {
	title, body := current.Title, current.Body
	if titleSet {
		title = editTitle
	}
	if bodySet {
		body = editBody
	}
	return title, body
}
