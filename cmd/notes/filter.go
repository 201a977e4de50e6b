package main

import (
	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter [YYYY-MM-DD]",
	Short: "List notes created or edited on a given day",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		list, err := svc.FilterByDate(cmd.Context(), args[0])
		if err != nil {
			fatal("Failed to filter notes", err)
		}
		printNotes(list, "No notes found for the given date.")
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
