package aggregate

import (
	"github.com/rs/zerolog"

	"tlr/internal/domain"
	tlrerrors "tlr/internal/errors"
)

// ScopeGlobal names the run-wide counter set in errors and logs
const ScopeGlobal = "global"

// SuiteSummary pairs a record with its own counters
type SuiteSummary struct {
	Record domain.LogRecord
	Counts domain.CounterSet
}

// Summary is the result of aggregating a run
type Summary struct {
	Global domain.CounterSet
	Suites []SuiteSummary // Same order as the input records
}

// Aggregator classifies every test case and accumulates counters
type Aggregator struct {
	logger zerolog.Logger
}

// NewAggregator creates a new Aggregator
func NewAggregator(logger zerolog.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Aggregate builds the global and per-suite counter sets.
// Cases whose status is not PASS, FAIL or SKIP only increment Unknown and
// are reported with a warning.
func (a *Aggregator) Aggregate(records []domain.LogRecord) *Summary {
	summary := &Summary{Suites: make([]SuiteSummary, 0, len(records))}

	for _, record := range records {
		var counts domain.CounterSet
		for _, tc := range record.Cases {
			kind := tc.Outcome()
			if kind == domain.OutcomeUnknown {
				a.logger.Warn().
					Str("suite", record.Suite).
					Str("case", tc.ID).
					Str("status", tc.Status).
					Str("file", record.Path).
					Msg("unrecognized test result excluded from totals")
			}
			counts.Add(kind)
		}
		summary.Global.Merge(counts)
		summary.Suites = append(summary.Suites, SuiteSummary{Record: record, Counts: counts})
	}

	if summary.Global.Unknown > 0 {
		a.logger.Warn().Int("unknown", summary.Global.Unknown).Msg("some test results were not counted")
	}
	return summary
}

// Rate returns the success rate of counts, or an aggregate error naming
// scope when there are no PASS or FAIL results to divide by
func Rate(scope string, counts domain.CounterSet) (float64, error) {
	rate, err := counts.SuccessRate()
	if err != nil {
		return 0, tlrerrors.Aggregate("cannot compute success rate for "+scope, err)
	}
	return rate, nil
}

// Rates holds every success rate of a summary
type Rates struct {
	Global float64
	Suites []float64
}

// Rates computes the global and per-suite success rates, failing on the
// first set that has no PASS or FAIL results
func (s *Summary) Rates() (Rates, error) {
	var rates Rates
	var err error

	if rates.Global, err = Rate(ScopeGlobal, s.Global); err != nil {
		return Rates{}, err
	}

	rates.Suites = make([]float64, len(s.Suites))
	for i, suite := range s.Suites {
		if rates.Suites[i], err = Rate("suite "+suite.Record.Suite, suite.Counts); err != nil {
			return Rates{}, err
		}
	}
	return rates, nil
}

// TotalCases returns the number of test cases across all suites, including unknown ones
func (s *Summary) TotalCases() int {
	return s.Global.Known() + s.Global.Unknown
}
