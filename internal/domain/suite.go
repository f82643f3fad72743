package domain

// SuiteResult is the stored form of one suite in a run snapshot
type SuiteResult struct {
	Record      LogRecord  `json:"record"`
	Counts      CounterSet `json:"counts"`
	SuccessRate float64    `json:"success_rate"`
	Reviewed    bool       `json:"reviewed,omitempty"` // Toggled from the suite browser
}
