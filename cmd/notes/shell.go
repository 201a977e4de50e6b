package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell (default)",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	svc := openService()
	defer svc.Close()

	session := shell.NewSession(svc, os.Stdin, os.Stdout)
	return shell.New(session, shell.WithLogger(slog.Default())).Run(cmd.Context())
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
