package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdoc/internal/domain"
)

// MockRateConfirmationService is a mock implementation of service.RateConfirmationService.
type MockRateConfirmationService struct {
	mock.Mock
}

func (m *MockRateConfirmationService) Get(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmationSet, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfirmationSet), args.Error(1)
}

func (m *MockRateConfirmationService) ListNotifications(ctx context.Context, orgID, id uuid.UUID) ([]domain.ScheduledNotification, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScheduledNotification), args.Error(1)
}

func (m *MockRateConfirmationService) Accept(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfirmation), args.Error(1)
}

func (m *MockRateConfirmationService) Reject(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateConfirmation), args.Error(1)
}
