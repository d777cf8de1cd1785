package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"freightdoc/internal/domain"
	"freightdoc/internal/port"
)

type validationVerdictRepo struct {
	db *sqlx.DB
}

// NewValidationVerdictRepo creates a new PostgreSQL-backed ValidationVerdictRepository.
func NewValidationVerdictRepo(db *sqlx.DB) port.ValidationVerdictRepository {
	return &validationVerdictRepo{db: db}
}

// Upsert inserts the verdict or replaces the existing one for the same
// (bol_id, load_id) pair. ValidatedAt is refreshed from the database clock.
func (r *validationVerdictRepo) Upsert(ctx context.Context, v *domain.ValidationVerdict) error {
	if v.Reasons == nil {
		v.Reasons = domain.StringList{}
	}

	query := `INSERT INTO validation_verdicts (
		id, organization_id, bol_id, load_id, status, location_match_score,
		weight_variance_pct, has_hazmat_mismatch, has_po_mismatch, reasons, validated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	ON CONFLICT (bol_id, load_id) DO UPDATE SET
		status = EXCLUDED.status,
		location_match_score = EXCLUDED.location_match_score,
		weight_variance_pct = EXCLUDED.weight_variance_pct,
		has_hazmat_mismatch = EXCLUDED.has_hazmat_mismatch,
		has_po_mismatch = EXCLUDED.has_po_mismatch,
		reasons = EXCLUDED.reasons,
		validated_at = NOW()
	RETURNING id, validated_at`

	err := r.db.QueryRowxContext(ctx, query,
		v.ID, v.OrganizationID, v.BOLID, v.LoadID, v.Status, v.LocationMatchScore,
		v.WeightVariancePct, v.HasHazmatMismatch, v.HasPOMismatch, v.Reasons,
	).Scan(&v.ID, &v.ValidatedAt)
	if err != nil {
		return fmt.Errorf("validationVerdictRepo.Upsert: %w", err)
	}
	return nil
}

// GetByBOL returns the most recent verdict recorded for the BOL.
func (r *validationVerdictRepo) GetByBOL(ctx context.Context, orgID, bolID uuid.UUID) (*domain.ValidationVerdict, error) {
	var v domain.ValidationVerdict
	err := r.db.GetContext(ctx, &v,
		`SELECT * FROM validation_verdicts WHERE bol_id = $1 AND organization_id = $2
		 ORDER BY validated_at DESC LIMIT 1`,
		bolID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVerdictNotFound
		}
		return nil, fmt.Errorf("validationVerdictRepo.GetByBOL: %w", err)
	}
	return &v, nil
}

func (r *validationVerdictRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.ValidationVerdict, error) {
	verdicts := []domain.ValidationVerdict{}
	err := r.db.SelectContext(ctx, &verdicts,
		"SELECT * FROM validation_verdicts WHERE organization_id = $1 ORDER BY validated_at DESC", orgID)
	if err != nil {
		return nil, fmt.Errorf("validationVerdictRepo.ListByOrganization: %w", err)
	}
	return verdicts, nil
}
