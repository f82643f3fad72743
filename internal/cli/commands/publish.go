package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tlr/internal/config"
	"tlr/internal/export"
	"tlr/internal/storage"
)

// ExporterFactory builds an exporter for a resolved DSN
type ExporterFactory func(dsn string) export.Exporter

// PublishCommand handles the publish command
type PublishCommand struct {
	config      *config.Config
	storage     storage.Storage
	newExporter ExporterFactory
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(cfg *config.Config, st storage.Storage, newExporter ExporterFactory) *PublishCommand {
	return &PublishCommand{config: cfg, storage: st, newExporter: newExporter}
}

// Execute runs the command
func (pc *PublishCommand) Execute(cmd *cobra.Command, args []string) error {
	output, err := pc.storage.Load()
	if err != nil {
		return err
	}

	runID, err := pc.newExporter(pc.config.GetDSN()).Publish(cmd.Context(), output)
	if err != nil {
		return err
	}

	color.Green("✓ Published run #%d with %d suite(s)", runID, len(output.Suites))
	return nil
}
