package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"freightdoc/internal/domain"
	"freightdoc/internal/port"
)

type notificationRepo struct {
	db *sqlx.DB
}

// NewNotificationRepo creates a new PostgreSQL-backed NotificationRepository.
func NewNotificationRepo(db *sqlx.DB) port.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.ScheduledNotification) error {
	n.CreatedAt = time.Now().UTC()

	query := `INSERT INTO clause_notifications (
		id, organization_id, rate_confirmation_id, risk_clause_id, severity, title, description,
		clause_title_en, clause_title_es, clause_explanation_en, clause_explanation_es,
		trigger_type, deadline_date, relative_minutes_offset, start_event, original_clause,
		status, created_at
	) VALUES (
		:id, :organization_id, :rate_confirmation_id, :risk_clause_id, :severity, :title, :description,
		:clause_title_en, :clause_title_es, :clause_explanation_en, :clause_explanation_es,
		:trigger_type, :deadline_date, :relative_minutes_offset, :start_event, :original_clause,
		:status, :created_at
	)`

	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return fmt.Errorf("notificationRepo.Create: %w", err)
	}
	return nil
}

func (r *notificationRepo) ListByRateConfirmation(ctx context.Context, orgID, rateConfirmationID uuid.UUID) ([]domain.ScheduledNotification, error) {
	notifications := []domain.ScheduledNotification{}
	err := r.db.SelectContext(ctx, &notifications,
		`SELECT * FROM clause_notifications
		 WHERE rate_confirmation_id = $1 AND organization_id = $2
		 ORDER BY created_at, id`,
		rateConfirmationID, orgID)
	if err != nil {
		return nil, fmt.Errorf("notificationRepo.ListByRateConfirmation: %w", err)
	}
	return notifications, nil
}
