package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"freightdoc/internal/domain"
	"freightdoc/internal/port"
	"freightdoc/internal/validator"
)

// BillOfLadingService defines read and re-validation operations on BOLs.
type BillOfLadingService interface {
	Get(ctx context.Context, orgID, id uuid.UUID) (*domain.BillOfLadingSet, error)
	Validate(ctx context.Context, orgID, id uuid.UUID) (*domain.ValidationVerdict, error)
	GetVerdict(ctx context.Context, orgID, id uuid.UUID) (*domain.ValidationVerdict, error)
}

type billOfLadingService struct {
	bolRepo     port.BillOfLadingRepository
	verdictRepo port.ValidationVerdictRepository
	validator   *validator.Engine
}

// NewBillOfLadingService creates a new BillOfLadingService implementation.
func NewBillOfLadingService(
	bolRepo port.BillOfLadingRepository,
	verdictRepo port.ValidationVerdictRepository,
	validationEngine *validator.Engine,
) BillOfLadingService {
	return &billOfLadingService{
		bolRepo:     bolRepo,
		verdictRepo: verdictRepo,
		validator:   validationEngine,
	}
}

func (s *billOfLadingService) Get(ctx context.Context, orgID, id uuid.UUID) (*domain.BillOfLadingSet, error) {
	bol, err := s.bolRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	set := &domain.BillOfLadingSet{BillOfLading: *bol}
	if set.LineItems, err = s.bolRepo.ListLineItems(ctx, bol.ID); err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}
	if set.References, err = s.bolRepo.ListReferences(ctx, bol.ID); err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}
	return set, nil
}

// Validate recomputes the verdict from scratch and replaces the stored one.
// Unlike ingestion, lookup and persistence failures are returned to the caller.
func (s *billOfLadingService) Validate(ctx context.Context, orgID, id uuid.UUID) (*domain.ValidationVerdict, error) {
	verdict, err := s.validator.ValidateByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	return verdict, nil
}

func (s *billOfLadingService) GetVerdict(ctx context.Context, orgID, id uuid.UUID) (*domain.ValidationVerdict, error) {
	if _, err := s.bolRepo.GetByID(ctx, orgID, id); err != nil {
		return nil, err
	}
	return s.verdictRepo.GetByBOL(ctx, orgID, id)
}
