package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutcomeKind tags the result of checking a single alert.
type OutcomeKind string

// Outcome kinds.
const (
	OutcomeExpired  OutcomeKind = "expired"
	OutcomeNotified OutcomeKind = "notified"
	OutcomeNoChange OutcomeKind = "no_change"
	OutcomeSkipped  OutcomeKind = "skipped"
)

// SkipReason classifies why an alert was skipped for a pass.
type SkipReason string

// Skip reasons.
const (
	SkipStore    SkipReason = "store"
	SkipProvider SkipReason = "provider"
	SkipData     SkipReason = "data"
)

// Outcome is the tagged result of one per-alert check. NewPrice is only set
// for OutcomeNotified; Reason and Err only for OutcomeSkipped.
type Outcome struct {
	AlertID  string          `json:"alert_id"`
	Kind     OutcomeKind     `json:"kind"`
	NewPrice decimal.Decimal `json:"new_price,omitzero"`
	Reason   SkipReason      `json:"reason,omitempty"`
	Err      error           `json:"-"`
}

// Expired is the outcome for an alert whose departure date has passed.
func Expired(alertID string) Outcome {
	return Outcome{AlertID: alertID, Kind: OutcomeExpired}
}

// NotifiedAndRatcheted is the outcome for a price drop; the threshold moved
// down to newPrice.
func NotifiedAndRatcheted(alertID string, newPrice decimal.Decimal) Outcome {
	return Outcome{AlertID: alertID, Kind: OutcomeNotified, NewPrice: newPrice}
}

// NoChange is the outcome when no offer undercut the threshold.
func NoChange(alertID string) Outcome {
	return Outcome{AlertID: alertID, Kind: OutcomeNoChange}
}

// Skipped is the outcome when the alert could not be evaluated this pass.
func Skipped(alertID string, reason SkipReason, err error) Outcome {
	return Outcome{AlertID: alertID, Kind: OutcomeSkipped, Reason: reason, Err: err}
}

// PassSummary aggregates the outcomes of one full pass.
type PassSummary struct {
	RunID       string    `json:"run_id,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Eligible    int       `json:"eligible"`
	Expired     int       `json:"expired"`
	Notified    int       `json:"notified"`
	NoChange    int       `json:"no_change"`
	Skipped     int       `json:"skipped"`
	Interrupted bool      `json:"interrupted,omitempty"`
	Outcomes    []Outcome `json:"outcomes"`
}

// Record adds an outcome to the summary counters.
func (s *PassSummary) Record(o Outcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch o.Kind {
	case OutcomeExpired:
		s.Expired++
	case OutcomeNotified:
		s.Notified++
	case OutcomeNoChange:
		s.NoChange++
	case OutcomeSkipped:
		s.Skipped++
	}
}

// Processed returns the number of alerts that produced an outcome.
func (s *PassSummary) Processed() int {
	return s.Expired + s.Notified + s.NoChange + s.Skipped
}

// Pass run statuses.
const (
	PassRunning     = "running"
	PassSucceeded   = "succeeded"
	PassFailed      = "failed"
	PassInterrupted = "interrupted"
)

// PassRun is the persisted record of a pass.
type PassRun struct {
	ID          string     `json:"id"                     db:"id"`
	StartedAt   time.Time  `json:"started_at"             db:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	Status      string     `json:"status"                 db:"status"`
	ErrorText   string     `json:"error_text,omitempty"   db:"error_text"`
	Eligible    int        `json:"eligible"               db:"eligible"`
	Expired     int        `json:"expired"                db:"expired"`
	Notified    int        `json:"notified"               db:"notified"`
	NoChange    int        `json:"no_change"              db:"no_change"`
	Skipped     int        `json:"skipped"                db:"skipped"`
}

// SystemState is an aggregate view of the alert table.
type SystemState struct {
	AlertsTotal    int      `json:"alerts_total"`
	AlertsActive   int      `json:"alerts_active"`
	AlertsEligible int      `json:"alerts_eligible"`
	LastPass       *PassRun `json:"last_pass,omitempty"`
}
