package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdoc/internal/domain"
)

// MockValidationVerdictRepo is a mock implementation of port.ValidationVerdictRepository.
type MockValidationVerdictRepo struct {
	mock.Mock
}

func (m *MockValidationVerdictRepo) Upsert(ctx context.Context, verdict *domain.ValidationVerdict) error {
	args := m.Called(ctx, verdict)
	return args.Error(0)
}

func (m *MockValidationVerdictRepo) GetByBOL(ctx context.Context, orgID, bolID uuid.UUID) (*domain.ValidationVerdict, error) {
	args := m.Called(ctx, orgID, bolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationVerdict), args.Error(1)
}

func (m *MockValidationVerdictRepo) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.ValidationVerdict, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationVerdict), args.Error(1)
}
