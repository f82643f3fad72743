package commands

import (
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tlr/internal/aggregate"
	"tlr/internal/config"
	"tlr/internal/reader"
	"tlr/internal/report"
	"tlr/internal/storage"
	"tlr/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	newReader func() *reader.Reader
	aggr      *aggregate.Aggregator
	report    *report.Formatter
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
	logger    zerolog.Logger
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(
	cfg *config.Config,
	newReader func() *reader.Reader,
	aggr *aggregate.Aggregator,
	reportFormatter *report.Formatter,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
	logger zerolog.Logger,
) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		newReader: newReader,
		aggr:      aggr,
		report:    reportFormatter,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
		logger:    logger,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	start := time.Now()
	r := rc.newReader()

	files, err := r.Discover(rc.config.RootDir, rc.config.Extension, rc.config.Flags.NameFilter)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No log files matching %q under %s", rc.config.Extension, rc.config.RootDir)
	} else {
		r.Pool().SetProgress(ui.NewProgressBar(len(files)))
	}

	records, err := r.ParseFiles(cmd.Context(), files)
	if err != nil {
		return err
	}

	summary := rc.aggr.Aggregate(records)

	if _, err := rc.report.Write(rc.config.OutputPath, summary); err != nil {
		return err
	}
	rc.logger.Info().Str("path", rc.config.OutputPath).Int("suites", len(summary.Suites)).Msg("report written")

	output, err := storage.BuildOutput(summary, storage.RunInfo{
		RootDir:    rc.config.RootDir,
		Extension:  rc.config.Extension,
		ReportPath: rc.config.OutputPath,
		Duration:   time.Since(start),
		Workers:    rc.config.Processors,
	})
	if err != nil {
		return err
	}

	if !rc.config.Flags.NoSave {
		if err := rc.storage.SaveOutput(output); err != nil {
			return err
		}
	}

	rc.formatter.PrintRunStats(output)

	if rc.config.Flags.Open {
		return rc.viewer.View(output)
	}
	return nil
}
