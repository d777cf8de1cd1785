package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"freightdoc/internal/domain"
	"freightdoc/internal/port"
)

type detentionRepo struct {
	db *sqlx.DB
}

// NewDetentionRepo creates a new PostgreSQL-backed DetentionRepository.
func NewDetentionRepo(db *sqlx.DB) port.DetentionRepository {
	return &detentionRepo{db: db}
}

func (r *detentionRepo) GetRecord(ctx context.Context, orgID, id uuid.UUID) (*domain.DetentionRecord, error) {
	var rec domain.DetentionRecord
	err := r.db.GetContext(ctx, &rec,
		"SELECT * FROM detention_records WHERE id = $1 AND organization_id = $2", id, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDetentionRecordNotFound
		}
		return nil, fmt.Errorf("detentionRepo.GetRecord: %w", err)
	}
	return &rec, nil
}

func (r *detentionRepo) CreateInvoice(ctx context.Context, inv *domain.DetentionInvoice) error {
	inv.CreatedAt = time.Now().UTC()

	query := `INSERT INTO detention_invoices (
		id, organization_id, detention_record_id, load_id, invoice_number,
		facility_name, facility_address, start_time, end_time,
		total_hours, free_time_hours, payable_hours, rate_per_hour, total_due, currency,
		po_number, bol_number, broker_email, status, generated_date, sent_at, created_at
	) VALUES (
		:id, :organization_id, :detention_record_id, :load_id, :invoice_number,
		:facility_name, :facility_address, :start_time, :end_time,
		:total_hours, :free_time_hours, :payable_hours, :rate_per_hour, :total_due, :currency,
		:po_number, :bol_number, :broker_email, :status, :generated_date, :sent_at, :created_at
	)`

	if _, err := r.db.NamedExecContext(ctx, query, inv); err != nil {
		return fmt.Errorf("detentionRepo.CreateInvoice: %w", err)
	}
	return nil
}

func (r *detentionRepo) GetInvoice(ctx context.Context, orgID, id uuid.UUID) (*domain.DetentionInvoice, error) {
	var inv domain.DetentionInvoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM detention_invoices WHERE id = $1 AND organization_id = $2", id, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("detentionRepo.GetInvoice: %w", err)
	}
	return &inv, nil
}

func (r *detentionRepo) ListInvoices(ctx context.Context, orgID uuid.UUID) ([]domain.DetentionInvoice, error) {
	invoices := []domain.DetentionInvoice{}
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM detention_invoices WHERE organization_id = $1 ORDER BY generated_date DESC, id", orgID)
	if err != nil {
		return nil, fmt.Errorf("detentionRepo.ListInvoices: %w", err)
	}
	return invoices, nil
}

func (r *detentionRepo) MarkInvoiceSent(ctx context.Context, orgID, id uuid.UUID, sentAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE detention_invoices SET status = $1, sent_at = $2
		 WHERE id = $3 AND organization_id = $4`,
		domain.InvoiceStatusSent, sentAt, id, orgID)
	if err != nil {
		return fmt.Errorf("detentionRepo.MarkInvoiceSent: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("detentionRepo.MarkInvoiceSent rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}
