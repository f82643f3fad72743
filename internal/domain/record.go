package domain

// LogRecord is one parsed log file: a named suite and its test cases
type LogRecord struct {
	Path        string           `json:"path"`        // File the record was parsed from
	Suite       string           `json:"suite"`       // test_suite attribute
	Environment string           `json:"environment"` // environment element
	Debug       string           `json:"debug,omitempty"`
	Cases       []TestCaseResult `json:"cases"`
}

// TestCaseResult represents a single test case within a suite
type TestCaseResult struct {
	ID     string `json:"id"`
	Status string `json:"status"` // Raw result attribute, classified on demand
	Debug  string `json:"debug,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Outcome classifies the raw status of the test case
func (tc TestCaseResult) Outcome() OutcomeKind {
	return Classify(tc.Status)
}

// Placeholder is rendered in place of an absent optional field
const Placeholder = "-"

// OrPlaceholder returns s, or Placeholder when s is empty
func OrPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
