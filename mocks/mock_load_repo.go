package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdoc/internal/domain"
)

// MockLoadRepo is a mock implementation of port.LoadRepository.
type MockLoadRepo struct {
	mock.Mock
}

func (m *MockLoadRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Load, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Load), args.Error(1)
}
