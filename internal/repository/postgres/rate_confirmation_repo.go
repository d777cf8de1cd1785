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

type rateConfirmationRepo struct {
	db *sqlx.DB
}

// NewRateConfirmationRepo creates a new PostgreSQL-backed RateConfirmationRepository.
func NewRateConfirmationRepo(db *sqlx.DB) port.RateConfirmationRepository {
	return &rateConfirmationRepo{db: db}
}

func (r *rateConfirmationRepo) Create(ctx context.Context, rc *domain.RateConfirmation) error {
	now := time.Now().UTC()
	rc.CreatedAt = now
	rc.UpdatedAt = now

	query := `INSERT INTO rate_confirmations (
		id, organization_id, document_id, load_id, load_number,
		broker_name, broker_mc_number, broker_address, broker_phone, broker_email, broker_contact,
		carrier_name, carrier_mc_number, carrier_dot_number, carrier_address, carrier_phone, carrier_email,
		total_rate_amount, currency, commodity_description, commodity_weight, equipment_type,
		document_date, overall_risk_tier, status, created_at, updated_at
	) VALUES (
		:id, :organization_id, :document_id, :load_id, :load_number,
		:broker_name, :broker_mc_number, :broker_address, :broker_phone, :broker_email, :broker_contact,
		:carrier_name, :carrier_mc_number, :carrier_dot_number, :carrier_address, :carrier_phone, :carrier_email,
		:total_rate_amount, :currency, :commodity_description, :commodity_weight, :equipment_type,
		:document_date, :overall_risk_tier, :status, :created_at, :updated_at
	)`

	if _, err := r.db.NamedExecContext(ctx, query, rc); err != nil {
		if isDuplicateKey(err) {
			return domain.ErrDocumentAlreadyIngested
		}
		return fmt.Errorf("rateConfirmationRepo.Create: %w", err)
	}
	return nil
}

func (r *rateConfirmationRepo) CreateStops(ctx context.Context, stops []domain.Stop) error {
	rows := make([][]interface{}, 0, len(stops))
	for i := range stops {
		s := &stops[i]
		rows = append(rows, []interface{}{
			s.ID, s.RateConfirmationID, s.SequenceNumber, s.StopType, s.FacilityName, s.Address,
			s.ScheduledArrival, s.ScheduledDeparture, s.Date, s.Time,
			s.ContactName, s.ContactPhone, s.Notes,
		})
	}
	err := insertRows(ctx, r.db, "rate_confirmation_stops", []string{
		"id", "rate_confirmation_id", "sequence_number", "stop_type", "facility_name", "address",
		"scheduled_arrival", "scheduled_departure", `"date"`, `"time"`,
		"contact_name", "contact_phone", "notes",
	}, rows)
	if err != nil {
		return fmt.Errorf("rateConfirmationRepo.CreateStops: %w", err)
	}
	return nil
}

func (r *rateConfirmationRepo) CreateReferenceNumbers(ctx context.Context, refs []domain.ReferenceNumber) error {
	rows := make([][]interface{}, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, []interface{}{ref.ID, ref.RateConfirmationID, ref.Position, ref.ReferenceType, ref.Value})
	}
	err := insertRows(ctx, r.db, "rate_confirmation_reference_numbers",
		[]string{"id", "rate_confirmation_id", "position", "reference_type", "value"}, rows)
	if err != nil {
		return fmt.Errorf("rateConfirmationRepo.CreateReferenceNumbers: %w", err)
	}
	return nil
}

func (r *rateConfirmationRepo) CreateCharges(ctx context.Context, charges []domain.Charge) error {
	rows := make([][]interface{}, 0, len(charges))
	for _, c := range charges {
		rows = append(rows, []interface{}{c.ID, c.RateConfirmationID, c.Position, c.Description, c.Amount})
	}
	err := insertRows(ctx, r.db, "rate_confirmation_charges",
		[]string{"id", "rate_confirmation_id", "position", "description", "amount"}, rows)
	if err != nil {
		return fmt.Errorf("rateConfirmationRepo.CreateCharges: %w", err)
	}
	return nil
}

func (r *rateConfirmationRepo) CreateRiskClause(ctx context.Context, clause *domain.RiskClause) error {
	query := `INSERT INTO risk_clauses (
		id, rate_confirmation_id, position, clause_type, severity,
		title_en, title_es, explanation_en, explanation_es, original_text, notification
	) VALUES (
		:id, :rate_confirmation_id, :position, :clause_type, :severity,
		:title_en, :title_es, :explanation_en, :explanation_es, :original_text, :notification
	)`
	if _, err := r.db.NamedExecContext(ctx, query, clause); err != nil {
		return fmt.Errorf("rateConfirmationRepo.CreateRiskClause: %w", err)
	}
	return nil
}

func (r *rateConfirmationRepo) CreateDispatchInstructions(ctx context.Context, instructions []domain.DispatchInstruction) error {
	rows := make([][]interface{}, 0, len(instructions))
	for _, in := range instructions {
		rows = append(rows, []interface{}{in.ID, in.RateConfirmationID, in.Position, in.Instruction})
	}
	err := insertRows(ctx, r.db, "dispatch_instructions",
		[]string{"id", "rate_confirmation_id", "position", "instruction"}, rows)
	if err != nil {
		return fmt.Errorf("rateConfirmationRepo.CreateDispatchInstructions: %w", err)
	}
	return nil
}

func (r *rateConfirmationRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error) {
	var rc domain.RateConfirmation
	err := r.db.GetContext(ctx, &rc,
		"SELECT * FROM rate_confirmations WHERE id = $1 AND organization_id = $2", id, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRateConfirmationNotFound
		}
		return nil, fmt.Errorf("rateConfirmationRepo.GetByID: %w", err)
	}
	return &rc, nil
}

func (r *rateConfirmationRepo) ListStops(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.Stop, error) {
	stops := []domain.Stop{}
	err := r.db.SelectContext(ctx, &stops,
		"SELECT * FROM rate_confirmation_stops WHERE rate_confirmation_id = $1 ORDER BY sequence_number",
		rateConfirmationID)
	if err != nil {
		return nil, fmt.Errorf("rateConfirmationRepo.ListStops: %w", err)
	}
	return stops, nil
}

func (r *rateConfirmationRepo) ListReferenceNumbers(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.ReferenceNumber, error) {
	refs := []domain.ReferenceNumber{}
	err := r.db.SelectContext(ctx, &refs,
		"SELECT * FROM rate_confirmation_reference_numbers WHERE rate_confirmation_id = $1 ORDER BY position",
		rateConfirmationID)
	if err != nil {
		return nil, fmt.Errorf("rateConfirmationRepo.ListReferenceNumbers: %w", err)
	}
	return refs, nil
}

func (r *rateConfirmationRepo) ListCharges(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.Charge, error) {
	charges := []domain.Charge{}
	err := r.db.SelectContext(ctx, &charges,
		"SELECT * FROM rate_confirmation_charges WHERE rate_confirmation_id = $1 ORDER BY position",
		rateConfirmationID)
	if err != nil {
		return nil, fmt.Errorf("rateConfirmationRepo.ListCharges: %w", err)
	}
	return charges, nil
}

func (r *rateConfirmationRepo) ListRiskClauses(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.RiskClause, error) {
	clauses := []domain.RiskClause{}
	err := r.db.SelectContext(ctx, &clauses,
		"SELECT * FROM risk_clauses WHERE rate_confirmation_id = $1 ORDER BY position",
		rateConfirmationID)
	if err != nil {
		return nil, fmt.Errorf("rateConfirmationRepo.ListRiskClauses: %w", err)
	}
	return clauses, nil
}

func (r *rateConfirmationRepo) ListDispatchInstructions(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.DispatchInstruction, error) {
	instructions := []domain.DispatchInstruction{}
	err := r.db.SelectContext(ctx, &instructions,
		"SELECT * FROM dispatch_instructions WHERE rate_confirmation_id = $1 ORDER BY position",
		rateConfirmationID)
	if err != nil {
		return nil, fmt.Errorf("rateConfirmationRepo.ListDispatchInstructions: %w", err)
	}
	return instructions, nil
}

func (r *rateConfirmationRepo) GetStop(ctx context.Context, orgID, stopID uuid.UUID) (*domain.Stop, error) {
	var stop domain.Stop
	err := r.db.GetContext(ctx, &stop,
		`SELECT s.* FROM rate_confirmation_stops s
		 INNER JOIN rate_confirmations rc ON rc.id = s.rate_confirmation_id
		 WHERE s.id = $1 AND rc.organization_id = $2`,
		stopID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStopNotFound
		}
		return nil, fmt.Errorf("rateConfirmationRepo.GetStop: %w", err)
	}
	return &stop, nil
}

// FirstStopForLoad returns the lowest-sequence stop of the rate confirmation
// linked to the load. The load's own rate_confirmation_id wins over rate
// confirmations that point at the load.
func (r *rateConfirmationRepo) FirstStopForLoad(ctx context.Context, orgID, loadID uuid.UUID) (*domain.Stop, error) {
	var stop domain.Stop
	err := r.db.GetContext(ctx, &stop,
		`SELECT s.* FROM rate_confirmation_stops s
		 INNER JOIN rate_confirmations rc ON rc.id = s.rate_confirmation_id
		 LEFT JOIN loads l ON l.id = $1 AND l.organization_id = $2
		 WHERE rc.organization_id = $2
		   AND (rc.id = l.rate_confirmation_id OR rc.load_id = $1)
		 ORDER BY (rc.id = l.rate_confirmation_id) DESC NULLS LAST, rc.created_at DESC, s.sequence_number
		 LIMIT 1`,
		loadID, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStopNotFound
		}
		return nil, fmt.Errorf("rateConfirmationRepo.FirstStopForLoad: %w", err)
	}
	return &stop, nil
}

// UpdateStatus moves a rate confirmation from one status to another. It
// fails with ErrInvalidStatusTransition when the current status is not from.
func (r *rateConfirmationRepo) UpdateStatus(ctx context.Context, orgID, id uuid.UUID, from, to domain.RateConfirmationStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE rate_confirmations SET status = $1, updated_at = $2
		 WHERE id = $3 AND organization_id = $4 AND status = $5`,
		to, time.Now().UTC(), id, orgID, from)
	if err != nil {
		return fmt.Errorf("rateConfirmationRepo.UpdateStatus: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rateConfirmationRepo.UpdateStatus rows: %w", err)
	}
	if rows == 0 {
		return domain.ErrInvalidStatusTransition
	}
	return nil
}
