package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := core.ParseID(args[0])
		if err != nil {
			fatal("Invalid note number", err)
		}

		svc := openService()
		defer svc.Close()

		if err := svc.Delete(cmd.Context(), id); err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Printf("Note deleted: %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
