package scheduler

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdoc/internal/domain"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestPlan(t *testing.T) {
	orgID, rcID := uuid.New(), uuid.New()
	clauses := []domain.RiskClause{
		{
			ID:            uuid.New(),
			Severity:      domain.RiskTierRed,
			TitleEN:       "Detention notice",
			TitleES:       "Aviso de detención",
			ExplanationEN: "Notify within 30 minutes.",
			ExplanationES: "Notificar dentro de 30 minutos.",
			Notification: &domain.NotificationIntent{
				Title:                 "Notify broker",
				TriggerType:           domain.TriggerTypeRelative,
				RelativeMinutesOffset: intPtr(30),
				StartEvent:            "arrival_at_pickup",
			},
		},
		{ID: uuid.New(), Severity: domain.RiskTierGreen},
		{
			ID:       uuid.New(),
			Severity: domain.RiskTierYellow,
			Notification: &domain.NotificationIntent{
				Title:        "Submit invoice",
				TriggerType:  domain.TriggerTypeAbsolute,
				DeadlineDate: strPtr("2025-04-01"),
			},
		},
		{
			ID:       uuid.New(),
			Severity: domain.RiskTierUnknown,
			Notification: &domain.NotificationIntent{
				Title:       "Lumper receipt",
				TriggerType: domain.TriggerTypeConditional,
				StartEvent:  "lumper_paid",
			},
		},
	}

	out := Plan(orgID, rcID, clauses)
	require.Len(t, out, 3)

	t.Run("relative keeps offset and no deadline", func(t *testing.T) {
		n := out[0]
		assert.Equal(t, clauses[0].ID, n.RiskClauseID)
		assert.Equal(t, domain.TriggerTypeRelative, n.TriggerType)
		require.NotNil(t, n.RelativeMinutesOffset)
		assert.Equal(t, 30, *n.RelativeMinutesOffset)
		assert.Nil(t, n.DeadlineDate)
		assert.Equal(t, "arrival_at_pickup", n.StartEvent)
		assert.Equal(t, "Aviso de detención", n.ClauseTitleES)
		assert.Equal(t, "Notificar dentro de 30 minutos.", n.ClauseExplanationES)
		assert.Equal(t, domain.NotificationStatusPending, n.Status)
		assert.Equal(t, orgID, n.OrganizationID)
		assert.Equal(t, rcID, n.RateConfirmationID)
	})

	t.Run("absolute keeps stated date", func(t *testing.T) {
		require.NotNil(t, out[1].DeadlineDate)
		assert.Equal(t, "2025-04-01", *out[1].DeadlineDate)
		deadline, ok := AbsoluteDeadline(&out[1])
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), deadline)
	})

	t.Run("conditional passes through", func(t *testing.T) {
		assert.Equal(t, domain.TriggerTypeConditional, out[2].TriggerType)
		assert.Nil(t, out[2].DeadlineDate)
		_, ok := AbsoluteDeadline(&out[2])
		assert.False(t, ok)
		_, ok = ResolveRelativeDeadline(&out[2], time.Now())
		assert.False(t, ok)
	})

	t.Run("copies are independent of the clause", func(t *testing.T) {
		*clauses[0].Notification.RelativeMinutesOffset = 45
		assert.Equal(t, 30, *out[0].RelativeMinutesOffset)
	})

	t.Run("deterministic ids", func(t *testing.T) {
		again := Plan(orgID, rcID, clauses)
		assert.Equal(t, out[1].ID, again[1].ID)
	})
}

func TestResolveRelativeDeadline(t *testing.T) {
	start := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	n := &domain.ScheduledNotification{TriggerType: domain.TriggerTypeRelative, RelativeMinutesOffset: intPtr(30)}
	at, ok := ResolveRelativeDeadline(n, start)
	require.True(t, ok)
	assert.Equal(t, start.Add(30*time.Minute), at)

	n.RelativeMinutesOffset = nil
	_, ok = ResolveRelativeDeadline(n, start)
	assert.False(t, ok)
}

func TestCountByTier(t *testing.T) {
	counts := CountByTier([]domain.RiskClause{
		{Severity: domain.RiskTierRed},
		{Severity: domain.RiskTierRed},
		{Severity: domain.RiskTierGreen},
	})
	assert.Equal(t, 2, counts[domain.RiskTierRed])
	assert.Equal(t, 1, counts[domain.RiskTierGreen])
	assert.Equal(t, 0, counts[domain.RiskTierYellow])
}
