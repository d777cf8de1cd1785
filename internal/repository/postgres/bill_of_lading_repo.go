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

type billOfLadingRepo struct {
	db *sqlx.DB
}

// NewBillOfLadingRepo creates a new PostgreSQL-backed BillOfLadingRepository.
func NewBillOfLadingRepo(db *sqlx.DB) port.BillOfLadingRepository {
	return &billOfLadingRepo{db: db}
}

func (r *billOfLadingRepo) Create(ctx context.Context, bol *domain.BillOfLading) error {
	bol.CreatedAt = time.Now().UTC()

	query := `INSERT INTO bills_of_lading (
		id, organization_id, document_id, load_id, bol_number, pro_number,
		pickup_date, delivery_date,
		shipper_name, shipper_address, shipper_city, shipper_state, shipper_zip,
		consignee_name, consignee_address, consignee_city, consignee_state, consignee_zip,
		bill_to_name, bill_to_address, carrier_name, carrier_scac,
		total_handling_units, total_weight_lbs, is_hazmat, declared_value, payment_terms,
		shipper_signed, carrier_signed, receiver_signed, remarks, created_at
	) VALUES (
		:id, :organization_id, :document_id, :load_id, :bol_number, :pro_number,
		:pickup_date, :delivery_date,
		:shipper_name, :shipper_address, :shipper_city, :shipper_state, :shipper_zip,
		:consignee_name, :consignee_address, :consignee_city, :consignee_state, :consignee_zip,
		:bill_to_name, :bill_to_address, :carrier_name, :carrier_scac,
		:total_handling_units, :total_weight_lbs, :is_hazmat, :declared_value, :payment_terms,
		:shipper_signed, :carrier_signed, :receiver_signed, :remarks, :created_at
	)`

	if _, err := r.db.NamedExecContext(ctx, query, bol); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDocumentAlreadyIngested
		}
		return fmt.Errorf("billOfLadingRepo.Create: %w", err)
	}
	return nil
}

func (r *billOfLadingRepo) CreateLineItems(ctx context.Context, items []domain.BOLLineItem) error {
	rows := make([][]interface{}, 0, len(items))
	for _, it := range items {
		rows = append(rows, []interface{}{
			it.ID, it.BOLID, it.Position, it.Description, it.HandlingUnits, it.PackageType,
			it.WeightLbs, it.FreightClass, it.NMFCCode, it.IsHazmat,
		})
	}
	err := insertRows(ctx, r.db, "bol_line_items", []string{
		"id", "bol_id", "position", "description", "handling_units", "package_type",
		"weight_lbs", "freight_class", "nmfc_code", "is_hazmat",
	}, rows)
	if err != nil {
		return fmt.Errorf("billOfLadingRepo.CreateLineItems: %w", err)
	}
	return nil
}

func (r *billOfLadingRepo) CreateReferences(ctx context.Context, refs []domain.BOLReference) error {
	rows := make([][]interface{}, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, []interface{}{ref.ID, ref.BOLID, ref.Position, ref.ReferenceType, ref.Value})
	}
	err := insertRows(ctx, r.db, "bol_references",
		[]string{"id", "bol_id", "position", "reference_type", "value"}, rows)
	if err != nil {
		return fmt.Errorf("billOfLadingRepo.CreateReferences: %w", err)
	}
	return nil
}

func (r *billOfLadingRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.BillOfLading, error) {
	var bol domain.BillOfLading
	err := r.db.GetContext(ctx, &bol,
		"SELECT * FROM bills_of_lading WHERE id = $1 AND organization_id = $2", id, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBillOfLadingNotFound
		}
		return nil, fmt.Errorf("billOfLadingRepo.GetByID: %w", err)
	}
	return &bol, nil
}

func (r *billOfLadingRepo) ListLineItems(ctx context.Context, bolID uuid.UUID) ([]domain.BOLLineItem, error) {
	items := []domain.BOLLineItem{}
	err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM bol_line_items WHERE bol_id = $1 ORDER BY position", bolID)
	if err != nil {
		return nil, fmt.Errorf("billOfLadingRepo.ListLineItems: %w", err)
	}
	return items, nil
}

func (r *billOfLadingRepo) ListReferences(ctx context.Context, bolID uuid.UUID) ([]domain.BOLReference, error) {
	refs := []domain.BOLReference{}
	err := r.db.SelectContext(ctx, &refs,
		"SELECT * FROM bol_references WHERE bol_id = $1 ORDER BY position", bolID)
	if err != nil {
		return nil, fmt.Errorf("billOfLadingRepo.ListReferences: %w", err)
	}
	return refs, nil
}

// ListLinked returns BOLs that carry a load id, oldest first. A nil orgID
// lists across all organizations.
func (r *billOfLadingRepo) ListLinked(ctx context.Context, orgID *uuid.UUID) ([]domain.BillOfLading, error) {
	bols := []domain.BillOfLading{}
	var err error
	if orgID == nil {
		err = r.db.SelectContext(ctx, &bols,
			"SELECT * FROM bills_of_lading WHERE load_id IS NOT NULL ORDER BY created_at, id")
	} else {
		err = r.db.SelectContext(ctx, &bols,
			"SELECT * FROM bills_of_lading WHERE load_id IS NOT NULL AND organization_id = $1 ORDER BY created_at, id",
			*orgID)
	}
	if err != nil {
		return nil, fmt.Errorf("billOfLadingRepo.ListLinked: %w", err)
	}
	return bols, nil
}
