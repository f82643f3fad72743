package domain

// RunMeta contains metadata about a report run
type RunMeta struct {
	RootDir         string     `json:"root_dir"`
	Extension       string     `json:"extension"`
	ReportPath      string     `json:"report_path"`
	TotalSuites     int        `json:"total_suites"`
	TotalCases      int        `json:"total_cases"`
	Counts          CounterSet `json:"counts"`
	SuccessRate     float64    `json:"success_rate"`
	Duration        string     `json:"duration"`
	DurationSeconds float64    `json:"duration_seconds"`
	Workers         int        `json:"workers"`
	Timestamp       string     `json:"timestamp"`
}

// RunOutput is the complete stored snapshot of a report run
type RunOutput struct {
	Meta   RunMeta       `json:"meta"`
	Suites []SuiteResult `json:"suites"`
}
