package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addTitle string
	addBody  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a note",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		note, err := svc.Add(cmd.Context(), addTitle, addBody)
		if err != nil {
			fatal("Failed to add note", err)
		}
		fmt.Printf("Note %d saved.\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addBody, "body", "b", "", "Note body")
	addCmd.MarkFlagRequired("title")
}
