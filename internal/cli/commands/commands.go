package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tlr/internal/aggregate"
	"tlr/internal/cli"
	"tlr/internal/config"
	"tlr/internal/discovery"
	"tlr/internal/export"
	"tlr/internal/parser"
	"tlr/internal/reader"
	"tlr/internal/report"
	"tlr/internal/storage"
	"tlr/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Report  *ReportCommand
	List    *ListCommand
	Show    *ShowCommand
	Browse  *BrowseCommand
	Publish *PublishCommand
}

// NewCommands creates all commands with dependencies.
// Scanner and worker pool are built per run in the commands because
// ignore dirs and processors come from flags parsed after construction.
func NewCommands(cfg *config.Config, logger zerolog.Logger) *Commands {
	logParser := parser.NewXMLParser()
	filter := discovery.NewFilter()
	aggregator := aggregate.NewAggregator(logger)
	reportFormatter := report.NewFormatter(logger)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, logParser)
	browser := ui.NewSuiteBrowser(jsonStorage)

	newReader := func() *reader.Reader {
		scanner := discovery.NewScanner(cfg.PathsToIgnore)
		pool := reader.NewWorkerPool(cfg.Processors, logParser, logger)
		return reader.NewReader(scanner, filter, pool, logger)
	}

	return &Commands{
		Report:  NewReportCommand(cfg, newReader, aggregator, reportFormatter, jsonStorage, formatter, browser, logger),
		List:    NewListCommand(cfg, newReader, formatter),
		Show:    NewShowCommand(jsonStorage, formatter),
		Browse:  NewBrowseCommand(jsonStorage, browser),
		Publish: NewPublishCommand(cfg, jsonStorage, func(dsn string) export.Exporter {
			return export.NewMySQLExporter(dsn, logger)
		}),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Apply(flags.ToConfigFlags())
		return cfg.Validate()
	}

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Aggregate test logs into a text report",
		Long:    "Find every log file under the root directory, tally PASS/FAIL/SKIP per suite and overall, and write the report",
		RunE:    c.Report.Execute,
		PreRunE: applyFlags,
	}
	addInputFlags(reportCmd, flags)
	reportCmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Report file to write (default ./report.txt)")
	reportCmd.Flags().IntVarP(&flags.Processors, "processors", "p", 0, "Number of files to parse in parallel (default 1)")
	reportCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not store the run snapshot used by show/browse/publish")
	reportCmd.Flags().BoolVar(&flags.Open, "open", false, "Open the suite browser when the report is written")
	rootCmd.AddCommand(reportCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered log files",
		Long:    "Scan and list the log files a report would read, without aggregating them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	addInputFlags(listCmd, flags)
	listCmd.Flags().BoolVarP(&flags.Cases, "cases", "c", false, "Parse each file and show its suite and case count")
	rootCmd.AddCommand(listCmd)

	// Show command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show statistics of the last report run",
		RunE:  c.Show.Execute,
	})

	// Browse command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "browse",
		Short: "Browse suites of the last report run interactively",
		RunE:  c.Browse.Execute,
	})

	// Publish command
	publishCmd := &cobra.Command{
		Use:     "publish",
		Short:   "Publish the last report run to MySQL",
		Long:    "Insert the stored run snapshot into the tlr_runs and tlr_suites tables, creating them if needed",
		RunE:    c.Publish.Execute,
		PreRunE: applyFlags,
	}
	publishCmd.Flags().StringVar(&flags.DSN, "dsn", "", "MySQL DSN (default built from DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD, DB_DATABASE)")
	rootCmd.AddCommand(publishCmd)
}

func addInputFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.RootDir, "root", "r", "", "Directory to search for log files (default .)")
	cmd.Flags().StringVarP(&flags.Extension, "ext", "e", "", "Extension a log file name must contain after a dot (default xml)")
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter log files by name pattern (supports wildcards, e.g. 'nightly-*' or '*smoke*')")
	cmd.Flags().StringSliceVar(&flags.Ignore, "ignore", nil, "Directory names to skip while scanning")
}
