package validator

import (
	"math"

	"freightdoc/internal/domain"
)

const (
	startingLocationScore  = 100
	locationMismatchPoints = 25
	locationScoreThreshold = 80
	weightVarianceLimitPct = 10.0
)

// Cause groups reasons for the status decision.
type Cause string

const (
	CauseLocation Cause = "location"
	CauseWeight   Cause = "weight"
	CauseHazmat   Cause = "hazmat"
	CausePO       Cause = "po"
	CauseOther    Cause = "other"
)

type reason struct {
	cause Cause
	text  string
}

// Scorecard accumulates findings for one validation run.
type Scorecard struct {
	LocationScore     int
	WeightVariancePct *float64
	HazmatMismatch    bool
	POMismatch        bool
	reasons           []reason

	// weightOverLimit is decided on the unrounded variance.
	weightOverLimit bool
}

func newScorecard() *Scorecard {
	return &Scorecard{LocationScore: startingLocationScore}
}

// AddReason records a finding under the given cause.
func (sc *Scorecard) AddReason(cause Cause, text string) {
	sc.reasons = append(sc.reasons, reason{cause: cause, text: text})
}

// Deduct lowers the location score, never below zero.
func (sc *Scorecard) Deduct(points int) {
	sc.LocationScore = max(0, sc.LocationScore-points)
}

// Reasons returns the recorded reason texts in order.
func (sc *Scorecard) Reasons() []string {
	out := make([]string, 0, len(sc.reasons))
	for _, r := range sc.reasons {
		out = append(out, r.text)
	}
	return out
}

func (sc *Scorecard) weightExceeded() bool {
	return sc.weightOverLimit
}

// hasOtherReasons reports reasons outside the location, weight, hazmat and
// PO checks. The weight note is informational and never counts here.
func (sc *Scorecard) hasOtherReasons() bool {
	for _, r := range sc.reasons {
		if r.cause == CauseOther {
			return true
		}
	}
	return false
}

// Status applies the decision order: hazmat mismatch fails; a low location
// score, a weight variance over the limit or a PO mismatch warns; any other
// recorded reason warns; otherwise the verdict passes.
func (sc *Scorecard) Status() domain.VerdictStatus {
	switch {
	case sc.HazmatMismatch:
		return domain.VerdictStatusFailed
	case sc.LocationScore < locationScoreThreshold || sc.weightExceeded() || sc.POMismatch:
		return domain.VerdictStatusWarning
	case sc.hasOtherReasons():
		return domain.VerdictStatusWarning
	default:
		return domain.VerdictStatusPassed
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
