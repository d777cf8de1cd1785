package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freightdoc/internal/domain"
	"freightdoc/internal/port"
)

// RateConfirmationService defines the rate confirmation review contract.
type RateConfirmationService interface {
	Get(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmationSet, error)
	ListNotifications(ctx context.Context, orgID, id uuid.UUID) ([]domain.ScheduledNotification, error)
	Accept(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error)
	Reject(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error)
}

type rateConfirmationService struct {
	rcRepo    port.RateConfirmationRepository
	notifRepo port.NotificationRepository
	log       zerolog.Logger
}

// NewRateConfirmationService creates a new RateConfirmationService implementation.
func NewRateConfirmationService(
	rcRepo port.RateConfirmationRepository,
	notifRepo port.NotificationRepository,
	log zerolog.Logger,
) RateConfirmationService {
	return &rateConfirmationService{
		rcRepo:    rcRepo,
		notifRepo: notifRepo,
		log:       log.With().Str("component", "rate_confirmation").Logger(),
	}
}

func (s *rateConfirmationService) Get(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmationSet, error) {
	rc, err := s.rcRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	set := &domain.RateConfirmationSet{RateConfirmation: *rc}
	if set.Stops, err = s.rcRepo.ListStops(ctx, rc.ID); err != nil {
		return nil, fmt.Errorf("listing stops: %w", err)
	}
	if set.ReferenceNumbers, err = s.rcRepo.ListReferenceNumbers(ctx, rc.ID); err != nil {
		return nil, fmt.Errorf("listing reference numbers: %w", err)
	}
	if set.Charges, err = s.rcRepo.ListCharges(ctx, rc.ID); err != nil {
		return nil, fmt.Errorf("listing charges: %w", err)
	}
	if set.RiskClauses, err = s.rcRepo.ListRiskClauses(ctx, rc.ID); err != nil {
		return nil, fmt.Errorf("listing risk clauses: %w", err)
	}
	if set.DispatchInstructions, err = s.rcRepo.ListDispatchInstructions(ctx, rc.ID); err != nil {
		return nil, fmt.Errorf("listing dispatch instructions: %w", err)
	}
	return set, nil
}

func (s *rateConfirmationService) ListNotifications(ctx context.Context, orgID, id uuid.UUID) ([]domain.ScheduledNotification, error) {
	if _, err := s.rcRepo.GetByID(ctx, orgID, id); err != nil {
		return nil, err
	}
	return s.notifRepo.ListByRateConfirmation(ctx, orgID, id)
}

func (s *rateConfirmationService) Accept(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error) {
	return s.transition(ctx, orgID, id, domain.RateConfirmationStatusAccepted)
}

func (s *rateConfirmationService) Reject(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error) {
	return s.transition(ctx, orgID, id, domain.RateConfirmationStatusRejected)
}

// transition moves a rate confirmation out of review. Decisions are final.
func (s *rateConfirmationService) transition(ctx context.Context, orgID, id uuid.UUID, to domain.RateConfirmationStatus) (*domain.RateConfirmation, error) {
	rc, err := s.rcRepo.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if rc.Status != domain.RateConfirmationStatusUnderReview {
		return nil, domain.ErrInvalidStatusTransition
	}

	if err := s.rcRepo.UpdateStatus(ctx, orgID, id, domain.RateConfirmationStatusUnderReview, to); err != nil {
		return nil, err
	}
	rc.Status = to

	s.log.Info().
		Str("rate_confirmation_id", id.String()).
		Str("status", string(to)).
		Msg("rateConfirmationService: status changed")
	return rc, nil
}
