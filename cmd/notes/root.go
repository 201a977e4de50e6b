package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes"
	"github.com/aretw0/notes/internal/config"
	"github.com/aretw0/notes/pkg/core"
)

var (
	flagConfig   config.Config
	flagReadOnly bool
	flagVerbose  bool
	cfg          *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Take, list and filter short text notes",
	Long: `notes keeps short text notes in a local file.
Run without a subcommand to start the interactive shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Only flags given on the command line take part in the merge.
		if cmd.Flags().Changed("read-only") {
			flagConfig.ReadOnly = &flagReadOnly
		}
		if cmd.Flags().Changed("verbose") {
			flagConfig.Verbose = &flagVerbose
		}

		var err error
		cfg, err = config.Load(&flagConfig)
		if err != nil {
			return err
		}

		level := slog.LevelWarn
		if cfg.IsVerbose() {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		slog.Debug("configuration loaded", "file", cfg.File, "backend", cfg.Backend, "read_only", cfg.IsReadOnly())
		return nil
	},
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&flagConfig.File, "file", "f", "", "Notes file (default \""+config.DefaultFile+"\")")
	flags.StringVar(&flagConfig.Backend, "backend", "", "Storage backend: fs, bolt or memory (default \""+config.DefaultBackend+"\")")
	flags.StringVarP(&flagConfig.ConfigFile, "config", "c", "", "YAML configuration file")
	flags.BoolVar(&flagReadOnly, "read-only", false, "Refuse every change to the notes file")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
}

// openService builds the notes service from the loaded configuration.
func openService() *core.Service {
	svc, err := notes.New(cfg.File,
		notes.WithBackend(cfg.Backend),
		notes.WithReadOnly(cfg.IsReadOnly()),
		notes.WithLogger(slog.Default()),
	)
	if err != nil {
		fatal("Failed to open notes", err)
	}
	return svc
}
