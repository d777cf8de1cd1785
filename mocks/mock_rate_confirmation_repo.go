package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdoc/internal/domain"
)

// MockRateConfirmationRepo is a mock implementation of port.RateConfirmationRepository.
type MockRateConfirmationRepo struct {
	mock.Mock
}

func (m *MockRateConfirmationRepo) Create(ctx context.Context, rc *domain.RateConfirmation) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockRateConfirmationRepo) CreateStops(ctx context.Context, stops []domain.Stop) error {
	args := m.Called(ctx, stops)
	return args.Error(0)
}

func (m *MockRateConfirmationRepo) CreateReferenceNumbers(ctx context.Context, refs []domain.ReferenceNumber) error {
	args := m.Called(ctx, refs)
	return args.Error(0)
}

func (m *MockRateConfirmationRepo) CreateCharges(ctx context.Context, charges []domain.Charge) error {
	args := m.Called(ctx, charges)
	return args.Error(0)
}

func (m *MockRateConfirmationRepo) CreateRiskClause(ctx context.Context, clause *domain.RiskClause) error {
	args := m.Called(ctx, clause)
	return args.Error(0)
}

func (m *MockRateConfirmationRepo) CreateDispatchInstructions(ctx context.Context, instructions []domain.DispatchInstruction) error {
	args := m.Called(ctx, instructions)
	return args.Error(0)
}

func (m *MockRateConfirmationRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfirmation), args.Error(1)
}

func (m *MockRateConfirmationRepo) ListStops(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.Stop, error) {
	args := m.Called(ctx, rateConfirmationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stop), args.Error(1)
}

func (m *MockRateConfirmationRepo) ListReferenceNumbers(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.ReferenceNumber, error) {
	args := m.Called(ctx, rateConfirmationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReferenceNumber), args.Error(1)
}

func (m *MockRateConfirmationRepo) ListCharges(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.Charge, error) {
	args := m.Called(ctx, rateConfirmationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Charge), args.Error(1)
}

func (m *MockRateConfirmationRepo) ListRiskClauses(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.RiskClause, error) {
	args := m.Called(ctx, rateConfirmationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RiskClause), args.Error(1)
}

func (m *MockRateConfirmationRepo) ListDispatchInstructions(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.DispatchInstruction, error) {
	args := m.Called(ctx, rateConfirmationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DispatchInstruction), args.Error(1)
}

func (m *MockRateConfirmationRepo) GetStop(ctx context.Context, orgID, stopID uuid.UUID) (*domain.Stop, error) {
	args := m.Called(ctx, orgID, stopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stop), args.Error(1)
}

func (m *MockRateConfirmationRepo) FirstStopForLoad(ctx context.Context, orgID, loadID uuid.UUID) (*domain.Stop, error) {
	args := m.Called(ctx, orgID, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stop), args.Error(1)
}

func (m *MockRateConfirmationRepo) UpdateStatus(ctx context.Context, orgID, id uuid.UUID, from, to domain.RateConfirmationStatus) error {
	args := m.Called(ctx, orgID, id, from, to)
	return args.Error(0)
}
