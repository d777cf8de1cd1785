// Package scheduler turns risk clauses into notification records. It never
// resolves a deadline itself: Absolute triggers carry the clause's stated
// date, Relative triggers carry the offset and start event, and Conditional
// triggers are left to whatever evaluates the named start event later.
package scheduler

import (
	"time"

	"github.com/google/uuid"

	"freightdoc/internal/domain"
)

// Plan emits one pending notification per clause that carries a
// notification intent. Clause text and trigger metadata are copied unchanged.
func Plan(organizationID, rateConfirmationID uuid.UUID, clauses []domain.RiskClause) []domain.ScheduledNotification {
	var out []domain.ScheduledNotification
	for i := range clauses {
		c := &clauses[i]
		if c.Notification == nil {
			continue
		}
		n := c.Notification
		out = append(out, domain.ScheduledNotification{
			ID:                    uuid.NewSHA1(c.ID, []byte("notification")),
			OrganizationID:        organizationID,
			RateConfirmationID:    rateConfirmationID,
			RiskClauseID:          c.ID,
			Severity:              c.Severity,
			Title:                 n.Title,
			Description:           n.Description,
			ClauseTitleEN:         c.TitleEN,
			ClauseTitleES:         c.TitleES,
			ClauseExplanationEN:   c.ExplanationEN,
			ClauseExplanationES:   c.ExplanationES,
			TriggerType:           n.TriggerType,
			DeadlineDate:          copyString(n.DeadlineDate),
			RelativeMinutesOffset: copyInt(n.RelativeMinutesOffset),
			StartEvent:            n.StartEvent,
			OriginalClause:        n.OriginalClause,
			Status:                domain.NotificationStatusPending,
		})
	}
	return out
}

// CountByTier tallies clauses per severity tier.
func CountByTier(clauses []domain.RiskClause) map[domain.RiskTier]int {
	counts := make(map[domain.RiskTier]int, 4)
	for i := range clauses {
		counts[clauses[i].Severity]++
	}
	return counts
}

// AbsoluteDeadline returns the stated deadline of an Absolute notification
// as midnight UTC of that date.
func AbsoluteDeadline(n *domain.ScheduledNotification) (time.Time, bool) {
	if n.TriggerType != domain.TriggerTypeAbsolute || n.DeadlineDate == nil {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", *n.DeadlineDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ResolveRelativeDeadline computes start event time plus offset for a
// Relative notification. It is meant for the evaluator that observes the
// start event, not for ingestion.
func ResolveRelativeDeadline(n *domain.ScheduledNotification, startEventAt time.Time) (time.Time, bool) {
	if n.TriggerType != domain.TriggerTypeRelative || n.RelativeMinutesOffset == nil {
		return time.Time{}, false
	}
	return startEventAt.Add(time.Duration(*n.RelativeMinutesOffset) * time.Minute), true
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
