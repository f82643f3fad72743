package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"tlr/internal/aggregate"
	"tlr/internal/domain"
	tlrerrors "tlr/internal/errors"
)

// RunInfo describes how a report run was produced
type RunInfo struct {
	RootDir    string
	Extension  string
	ReportPath string
	Duration   time.Duration
	Workers    int
}

// BuildOutput assembles the snapshot for a summary
func BuildOutput(summary *aggregate.Summary, info RunInfo) (*domain.RunOutput, error) {
	rates, err := summary.Rates()
	if err != nil {
		return nil, err
	}

	output := &domain.RunOutput{
		Meta: domain.RunMeta{
			RootDir:         info.RootDir,
			Extension:       info.Extension,
			ReportPath:      info.ReportPath,
			TotalSuites:     len(summary.Suites),
			TotalCases:      summary.TotalCases(),
			Counts:          summary.Global,
			SuccessRate:     rates.Global,
			Duration:        info.Duration.String(),
			DurationSeconds: info.Duration.Seconds(),
			Workers:         info.Workers,
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Suites: make([]domain.SuiteResult, 0, len(summary.Suites)),
	}
	for i, suite := range summary.Suites {
		output.Suites = append(output.Suites, domain.SuiteResult{
			Record:      suite.Record,
			Counts:      suite.Counts,
			SuccessRate: rates.Suites[i],
		})
	}
	return output, nil
}

// Load reads the last snapshot from the configured JSON file
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetSnapshotPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tlrerrors.Storage(path, "read snapshot (run `tlr report` first)", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, tlrerrors.Storage(path, "parse snapshot", err)
	}
	return &output, nil
}

// SaveOutput writes the full snapshot to the configured JSON file
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	path := s.cfg.GetSnapshotPath()
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return tlrerrors.Storage(path, "marshal snapshot", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return tlrerrors.Storage(path, "create snapshot dir", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return tlrerrors.Storage(path, "write snapshot", err)
	}
	return nil
}
