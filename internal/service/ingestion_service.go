package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freightdoc/internal/domain"
	"freightdoc/internal/mapper"
	"freightdoc/internal/port"
	"freightdoc/internal/scheduler"
	"freightdoc/internal/validator"
)

// Stage names reported in ingestion warnings.
const (
	StageStops                = "stops"
	StageReferenceNumbers     = "reference_numbers"
	StageCharges              = "charges"
	StageRiskClauses          = "risk_clauses"
	StageDispatchInstructions = "dispatch_instructions"
	StageNotifications        = "notifications"
	StageLineItems            = "line_items"
	StageReferences           = "references"
	StageValidation           = "validation"
)

// IngestInput is the DTO for normalizing one extraction payload.
type IngestInput struct {
	OrganizationID uuid.UUID
	DocumentID     uuid.UUID
	DocumentType   domain.DocumentType
	LoadID         *uuid.UUID
	Payload        []byte
}

// StageWarning records a pipeline stage that failed without aborting ingestion.
type StageWarning struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}

// IngestResult is the outcome of an ingestion. Exactly one of
// RateConfirmation and BillOfLading is set.
type IngestResult struct {
	DocumentType     domain.DocumentType         `json:"document_type"`
	RecordID         uuid.UUID                   `json:"record_id"`
	RateConfirmation *domain.RateConfirmationSet `json:"rate_confirmation,omitempty"`
	Notifications    int                         `json:"notifications_scheduled"`
	BillOfLading     *domain.BillOfLadingSet     `json:"bill_of_lading,omitempty"`
	Verdict          *domain.ValidationVerdict   `json:"verdict,omitempty"`
	VerdictState     domain.VerdictState         `json:"verdict_state,omitempty"`
	Warnings         []StageWarning              `json:"warnings"`
}

func (r *IngestResult) warn(stage string, err error) {
	r.Warnings = append(r.Warnings, StageWarning{Stage: stage, Message: err.Error()})
}

// IngestionService turns extraction payloads into stored records.
type IngestionService interface {
	Ingest(ctx context.Context, input *IngestInput) (*IngestResult, error)
	IngestRateConfirmation(ctx context.Context, input *IngestInput) (*IngestResult, error)
	IngestBillOfLading(ctx context.Context, input *IngestInput) (*IngestResult, error)
}

type ingestionService struct {
	rcRepo    port.RateConfirmationRepository
	bolRepo   port.BillOfLadingRepository
	notifRepo port.NotificationRepository
	validator *validator.Engine
	log       zerolog.Logger
}

// NewIngestionService creates a new IngestionService implementation.
func NewIngestionService(
	rcRepo port.RateConfirmationRepository,
	bolRepo port.BillOfLadingRepository,
	notifRepo port.NotificationRepository,
	validationEngine *validator.Engine,
	log zerolog.Logger,
) IngestionService {
	return &ingestionService{
		rcRepo:    rcRepo,
		bolRepo:   bolRepo,
		notifRepo: notifRepo,
		validator: validationEngine,
		log:       log.With().Str("component", "ingestion").Logger(),
	}
}

func (s *ingestionService) Ingest(ctx context.Context, input *IngestInput) (*IngestResult, error) {
	switch input.DocumentType {
	case domain.DocumentTypeRateConfirmation:
		return s.IngestRateConfirmation(ctx, input)
	case domain.DocumentTypeBillOfLading:
		return s.IngestBillOfLading(ctx, input)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDocumentType, input.DocumentType)
	}
}

// IngestRateConfirmation maps and stores a rate confirmation. Only a mapping
// failure or a failed header insert is returned as an error. Every child
// collection is written on its own and failures are reported as warnings.
func (s *ingestionService) IngestRateConfirmation(ctx context.Context, input *IngestInput) (*IngestResult, error) {
	set, err := mapper.MapRateConfirmation(input.Payload, input.DocumentID, input.OrganizationID)
	if err != nil {
		return nil, err
	}
	rc := &set.RateConfirmation
	rc.LoadID = input.LoadID

	if err := s.rcRepo.Create(ctx, rc); err != nil {
		return nil, fmt.Errorf("storing rate confirmation: %w", err)
	}

	result := &IngestResult{
		DocumentType:     domain.DocumentTypeRateConfirmation,
		RecordID:         rc.ID,
		RateConfirmation: set,
		Warnings:         []StageWarning{},
	}

	s.writeChild(result, StageStops, len(set.Stops), func() error {
		return s.rcRepo.CreateStops(ctx, set.Stops)
	})
	s.writeChild(result, StageReferenceNumbers, len(set.ReferenceNumbers), func() error {
		return s.rcRepo.CreateReferenceNumbers(ctx, set.ReferenceNumbers)
	})
	s.writeChild(result, StageCharges, len(set.Charges), func() error {
		return s.rcRepo.CreateCharges(ctx, set.Charges)
	})
	for i := range set.RiskClauses {
		clause := &set.RiskClauses[i]
		s.writeChild(result, StageRiskClauses, 1, func() error {
			return s.rcRepo.CreateRiskClause(ctx, clause)
		})
	}
	s.writeChild(result, StageDispatchInstructions, len(set.DispatchInstructions), func() error {
		return s.rcRepo.CreateDispatchInstructions(ctx, set.DispatchInstructions)
	})

	notifications := scheduler.Plan(rc.OrganizationID, rc.ID, set.RiskClauses)
	for i := range notifications {
		n := &notifications[i]
		if err := s.notifRepo.Create(ctx, n); err != nil {
			s.stageFailed(result, StageNotifications, err)
			continue
		}
		result.Notifications++
	}

	tiers := scheduler.CountByTier(set.RiskClauses)
	s.log.Info().
		Str("rate_confirmation_id", rc.ID.String()).
		Str("document_id", rc.DocumentID.String()).
		Str("overall_risk", string(rc.OverallRiskTier)).
		Int("stops", len(set.Stops)).
		Int("clauses", len(set.RiskClauses)).
		Int("red_clauses", tiers[domain.RiskTierRed]).
		Int("notifications", result.Notifications).
		Int("warnings", len(result.Warnings)).
		Msg("ingestionService.IngestRateConfirmation: stored")

	return result, nil
}

// IngestBillOfLading maps and stores a BOL and, when it is linked to a load,
// validates it. A failed validation is reported through VerdictState and a
// warning, never as an error.
func (s *ingestionService) IngestBillOfLading(ctx context.Context, input *IngestInput) (*IngestResult, error) {
	set, err := mapper.MapBillOfLading(input.Payload, input.DocumentID, input.OrganizationID)
	if err != nil {
		return nil, err
	}
	bol := &set.BillOfLading
	bol.LoadID = input.LoadID

	if err := s.bolRepo.Create(ctx, bol); err != nil {
		return nil, fmt.Errorf("storing bill of lading: %w", err)
	}

	result := &IngestResult{
		DocumentType: domain.DocumentTypeBillOfLading,
		RecordID:     bol.ID,
		BillOfLading: set,
		Warnings:     []StageWarning{},
	}

	s.writeChild(result, StageLineItems, len(set.LineItems), func() error {
		return s.bolRepo.CreateLineItems(ctx, set.LineItems)
	})
	s.writeChild(result, StageReferences, len(set.References), func() error {
		return s.bolRepo.CreateReferences(ctx, set.References)
	})

	s.validate(ctx, result, bol, set.References)

	s.log.Info().
		Str("bol_id", bol.ID.String()).
		Str("document_id", bol.DocumentID.String()).
		Str("verdict_state", string(result.VerdictState)).
		Int("line_items", len(set.LineItems)).
		Int("references", len(set.References)).
		Int("warnings", len(result.Warnings)).
		Msg("ingestionService.IngestBillOfLading: stored")

	return result, nil
}

func (s *ingestionService) validate(ctx context.Context, result *IngestResult, bol *domain.BillOfLading, refs []domain.BOLReference) {
	if bol.LoadID == nil {
		result.VerdictState = domain.VerdictStateNotApplicable
		return
	}

	verdict, err := s.validator.Validate(ctx, bol, refs)
	var persistErr *domain.PersistenceFailure
	switch {
	case err == nil:
		result.Verdict = verdict
		result.VerdictState = domain.VerdictStateComputed
	case errors.As(err, &persistErr) && verdict != nil:
		result.Verdict = verdict
		result.VerdictState = domain.VerdictStateComputed
		s.stageFailed(result, StageValidation, err)
	default:
		result.VerdictState = domain.VerdictStateMissing
		s.stageFailed(result, StageValidation, err)
	}
}

func (s *ingestionService) writeChild(result *IngestResult, stage string, n int, write func() error) {
	if n == 0 {
		return
	}
	if err := write(); err != nil {
		s.stageFailed(result, stage, &domain.PersistenceFailure{Stage: stage, Err: err})
	}
}

func (s *ingestionService) stageFailed(result *IngestResult, stage string, err error) {
	s.log.Warn().Err(err).
		Str("stage", stage).
		Str("record_id", result.RecordID.String()).
		Msg("ingestionService: stage failed")
	result.warn(stage, err)
}
