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

type loadRepo struct {
	db *sqlx.DB
}

// NewLoadRepo creates a new PostgreSQL-backed LoadRepository.
func NewLoadRepo(db *sqlx.DB) port.LoadRepository {
	return &loadRepo{db: db}
}

func (r *loadRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Load, error) {
	var load domain.Load
	err := r.db.GetContext(ctx, &load,
		"SELECT * FROM loads WHERE id = $1 AND organization_id = $2", id, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLoadNotFound
		}
		return nil, fmt.Errorf("loadRepo.GetByID: %w", err)
	}
	return &load, nil
}
