package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdoc/internal/domain"
)

// MockBillOfLadingService is a mock implementation of service.BillOfLadingService.
type MockBillOfLadingService struct {
	mock.Mock
}

func (m *MockBillOfLadingService) Get(ctx context.Context, orgID, id uuid.UUID) (*domain.BillOfLadingSet, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillOfLadingSet), args.Error(1)
}

func (m *MockBillOfLadingService) Validate(ctx context.Context, orgID, id uuid.UUID) (*domain.ValidationVerdict, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationVerdict), args.Error(1)
}

func (m *MockBillOfLadingService) GetVerdict(ctx context.Context, orgID, id uuid.UUID) (*domain.ValidationVerdict, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationVerdict), args.Error(1)
}
