package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tlr/internal/cli"
	"tlr/internal/cli/commands"
	"tlr/internal/config"
	tlrerrors "tlr/internal/errors"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})

	// Create initial config with defaults, then .env and environment overrides
	cfg := config.New()
	if err := cfg.LoadEnv(config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return tlrerrors.GetExitCode(err)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	rootCmd := &cobra.Command{
		Use:           "tlr",
		Short:         "Test log reporter",
		Long:          `Aggregate PASS/FAIL/SKIP results from XML test logs scattered under a directory tree into a plain-text report.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.Verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.SetArgs(args)

	cmds := commands.NewCommands(cfg, logger)
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return tlrerrors.GetExitCode(err)
	}
	return tlrerrors.ExitSuccess
}
