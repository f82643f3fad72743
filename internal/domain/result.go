package domain

import (
	"errors"
	"strconv"
)

// OutcomeKind is the classification of a single test case result
type OutcomeKind int

const (
	OutcomeUnknown OutcomeKind = iota
	OutcomePass
	OutcomeFail
	OutcomeSkip
)

// Raw status strings recognized by Classify
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
	StatusSkip = "SKIP"
)

// Classify maps a raw status string to an OutcomeKind.
// Matching is exact and case-sensitive; anything else is OutcomeUnknown.
func Classify(raw string) OutcomeKind {
	switch raw {
	case StatusPass:
		return OutcomePass
	case StatusFail:
		return OutcomeFail
	case StatusSkip:
		return OutcomeSkip
	default:
		return OutcomeUnknown
	}
}

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePass:
		return StatusPass
	case OutcomeFail:
		return StatusFail
	case OutcomeSkip:
		return StatusSkip
	default:
		return "UNKNOWN"
	}
}

// ErrNoClassifiedResults is returned by SuccessRate when PASS+FAIL is zero
var ErrNoClassifiedResults = errors.New("success rate undefined: no PASS or FAIL results")

// CounterSet tallies outcomes for one scope (a suite or the whole run).
// Unknown is tracked separately and never contributes to the success rate.
type CounterSet struct {
	Pass    int `json:"pass"`
	Fail    int `json:"fail"`
	Skip    int `json:"skip"`
	Unknown int `json:"unknown"`
}

// Add increments the counter matching kind
func (c *CounterSet) Add(kind OutcomeKind) {
	switch kind {
	case OutcomePass:
		c.Pass++
	case OutcomeFail:
		c.Fail++
	case OutcomeSkip:
		c.Skip++
	default:
		c.Unknown++
	}
}

// Merge adds other's counters into c
func (c *CounterSet) Merge(other CounterSet) {
	c.Pass += other.Pass
	c.Fail += other.Fail
	c.Skip += other.Skip
	c.Unknown += other.Unknown
}

// Known returns PASS+FAIL+SKIP
func (c CounterSet) Known() int {
	return c.Pass + c.Fail + c.Skip
}

// SuccessRate returns PASS/(PASS+FAIL) rounded to 2 decimal digits.
// Exact ties go to the even digit, so 0.125 becomes 0.12.
func (c CounterSet) SuccessRate() (float64, error) {
	denom := c.Pass + c.Fail
	if denom == 0 {
		return 0, ErrNoClassifiedResults
	}
	return roundRate(float64(c.Pass) / float64(denom)), nil
}

// roundRate rounds the exact binary value of x half-to-even at 2 digits
func roundRate(x float64) float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	return v
}
