package validator

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freightdoc/internal/domain"
	"freightdoc/internal/port"
)

// Engine orchestrates BOL to load validation.
type Engine struct {
	registry    *Registry
	bolRepo     port.BillOfLadingRepository
	loadRepo    port.LoadRepository
	verdictRepo port.ValidationVerdictRepository
	log         zerolog.Logger
}

// NewEngine creates a new validation engine.
func NewEngine(
	registry *Registry,
	bolRepo port.BillOfLadingRepository,
	loadRepo port.LoadRepository,
	verdictRepo port.ValidationVerdictRepository,
	log zerolog.Logger,
) *Engine {
	return &Engine{
		registry:    registry,
		bolRepo:     bolRepo,
		loadRepo:    loadRepo,
		verdictRepo: verdictRepo,
		log:         log.With().Str("component", "validator").Logger(),
	}
}

// Evaluate runs every registered check and builds the verdict. It touches no
// storage and returns the same verdict for the same input.
func (e *Engine) Evaluate(in *Input) *domain.ValidationVerdict {
	sc := newScorecard()
	for _, v := range e.registry.All() {
		v.Validate(in, sc)
	}

	return &domain.ValidationVerdict{
		ID:                 uuid.NewSHA1(in.BOL.ID, in.Load.ID[:]),
		OrganizationID:     in.BOL.OrganizationID,
		BOLID:              in.BOL.ID,
		LoadID:             in.Load.ID,
		Status:             sc.Status(),
		LocationMatchScore: sc.LocationScore,
		WeightVariancePct:  sc.WeightVariancePct,
		HasHazmatMismatch:  sc.HazmatMismatch,
		HasPOMismatch:      sc.POMismatch,
		Reasons:            sc.Reasons(),
	}
}

// Validate compares a BOL with its linked load and stores the verdict,
// replacing any earlier verdict for the same pair.
//
// A missing load yields a *domain.LookupFailure and no verdict. A failed
// write yields the computed verdict together with a *domain.PersistenceFailure.
func (e *Engine) Validate(ctx context.Context, bol *domain.BillOfLading, refs []domain.BOLReference) (*domain.ValidationVerdict, error) {
	if bol.LoadID == nil {
		return nil, domain.ErrNoLinkedLoad
	}

	load, err := e.loadRepo.GetByID(ctx, bol.OrganizationID, *bol.LoadID)
	if err != nil {
		return nil, &domain.LookupFailure{Entity: "load", Key: bol.LoadID.String(), Err: err}
	}

	verdict := e.Evaluate(&Input{BOL: bol, References: refs, Load: load})
	if err := e.verdictRepo.Upsert(ctx, verdict); err != nil {
		return verdict, &domain.PersistenceFailure{Stage: "validation_verdict", Err: err}
	}

	e.log.Info().
		Str("bol_id", bol.ID.String()).
		Str("load_id", load.ID.String()).
		Str("status", string(verdict.Status)).
		Int("location_score", verdict.LocationMatchScore).
		Int("reasons", len(verdict.Reasons)).
		Msg("bill of lading validated")
	return verdict, nil
}

// ValidateByID reloads a stored BOL and its references and validates it.
func (e *Engine) ValidateByID(ctx context.Context, orgID, bolID uuid.UUID) (*domain.ValidationVerdict, error) {
	bol, err := e.bolRepo.GetByID(ctx, orgID, bolID)
	if err != nil {
		return nil, fmt.Errorf("getting bill of lading: %w", err)
	}
	refs, err := e.bolRepo.ListReferences(ctx, bol.ID)
	if err != nil {
		return nil, &domain.LookupFailure{Entity: "bol_references", Key: bol.ID.String(), Err: err}
	}
	return e.Validate(ctx, bol, refs)
}
