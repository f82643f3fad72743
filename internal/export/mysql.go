package export

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"tlr/internal/domain"
	tlrerrors "tlr/internal/errors"
)

// Tables written by the MySQL exporter
const (
	RunsTable   = "tlr_runs"
	SuitesTable = "tlr_suites"
)

var schema = []string{
	"CREATE TABLE IF NOT EXISTS `" + RunsTable + "` (" +
		"`id` BIGINT AUTO_INCREMENT PRIMARY KEY," +
		"`root_dir` VARCHAR(1024) NOT NULL," +
		"`report_path` VARCHAR(1024) NOT NULL," +
		"`suites` INT NOT NULL," +
		"`pass` INT NOT NULL," +
		"`fail` INT NOT NULL," +
		"`skip` INT NOT NULL," +
		"`unknown` INT NOT NULL," +
		"`success_rate` DOUBLE NOT NULL," +
		"`duration_seconds` DOUBLE NOT NULL," +
		"`run_at` VARCHAR(64) NOT NULL," +
		"`published_at` TIMESTAMP DEFAULT CURRENT_TIMESTAMP)",
	"CREATE TABLE IF NOT EXISTS `" + SuitesTable + "` (" +
		"`id` BIGINT AUTO_INCREMENT PRIMARY KEY," +
		"`run_id` BIGINT NOT NULL," +
		"`suite` VARCHAR(255) NOT NULL," +
		"`environment` VARCHAR(255) NOT NULL," +
		"`debug` VARCHAR(1024) NOT NULL," +
		"`pass` INT NOT NULL," +
		"`fail` INT NOT NULL," +
		"`skip` INT NOT NULL," +
		"`unknown` INT NOT NULL," +
		"`success_rate` DOUBLE NOT NULL," +
		"INDEX `idx_run` (`run_id`))",
}

const (
	insertRun = "INSERT INTO `" + RunsTable + "` " +
		"(root_dir, report_path, suites, pass, fail, skip, unknown, success_rate, duration_seconds, run_at) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	insertSuite = "INSERT INTO `" + SuitesTable + "` " +
		"(run_id, suite, environment, debug, pass, fail, skip, unknown, success_rate) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"
)

// MySQLExporter writes snapshots into MySQL tables
type MySQLExporter struct {
	dsn    string
	logger zerolog.Logger
}

var _ Exporter = (*MySQLExporter)(nil)

// NewMySQLExporter creates a new MySQLExporter for dsn
func NewMySQLExporter(dsn string, logger zerolog.Logger) *MySQLExporter {
	return &MySQLExporter{dsn: dsn, logger: logger}
}

// ValidateDSN parses the DSN with the driver's own parser
func ValidateDSN(dsn string) (*mysql.Config, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, tlrerrors.Export("invalid MySQL DSN", err)
	}
	if cfg.DBName == "" {
		return nil, tlrerrors.Export("MySQL DSN must name a database", nil)
	}
	return cfg, nil
}

// Publish stores output as one run row plus one row per suite, in a single
// transaction, and returns the new run id
func (e *MySQLExporter) Publish(ctx context.Context, output *domain.RunOutput) (int64, error) {
	dbCfg, err := ValidateDSN(e.dsn)
	if err != nil {
		return 0, err
	}

	db, err := sql.Open("mysql", dbCfg.FormatDSN())
	if err != nil {
		return 0, tlrerrors.Export("failed to connect to database server", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return 0, tlrerrors.Export("failed to ping database server", err)
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return 0, tlrerrors.Export("failed to create tables", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, tlrerrors.Export("failed to begin transaction", err)
	}
	defer tx.Rollback()

	runID, err := insertOutput(ctx, tx, output)
	if err != nil {
		return 0, tlrerrors.Export("failed to insert run", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, tlrerrors.Export("failed to commit run", err)
	}

	e.logger.Info().Int64("run_id", runID).Str("database", dbCfg.DBName).Int("suites", len(output.Suites)).Msg("published run")
	return runID, nil
}

// execer is the part of *sql.Tx used for inserts
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertOutput(ctx context.Context, tx execer, output *domain.RunOutput) (int64, error) {
	m := output.Meta
	res, err := tx.ExecContext(ctx, insertRun,
		m.RootDir, m.ReportPath, m.TotalSuites,
		m.Counts.Pass, m.Counts.Fail, m.Counts.Skip, m.Counts.Unknown,
		m.SuccessRate, m.DurationSeconds, m.Timestamp,
	)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, s := range output.Suites {
		c := s.Counts
		if _, err := tx.ExecContext(ctx, insertSuite,
			runID, s.Record.Suite, s.Record.Environment, s.Record.Debug,
			c.Pass, c.Fail, c.Skip, c.Unknown, s.SuccessRate,
		); err != nil {
			return 0, fmt.Errorf("suite %s: %w", s.Record.Suite, err)
		}
	}
	return runID, nil
}
