package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdoc/internal/domain"
)

// MockBillOfLadingRepo is a mock implementation of port.BillOfLadingRepository.
type MockBillOfLadingRepo struct {
	mock.Mock
}

func (m *MockBillOfLadingRepo) Create(ctx context.Context, bol *domain.BillOfLading) error {
	args := m.Called(ctx, bol)
	return args.Error(0)
}

func (m *MockBillOfLadingRepo) CreateLineItems(ctx context.Context, items []domain.BOLLineItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockBillOfLadingRepo) CreateReferences(ctx context.Context, refs []domain.BOLReference) error {
	args := m.Called(ctx, refs)
	return args.Error(0)
}

func (m *MockBillOfLadingRepo) GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.BillOfLading, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillOfLading), args.Error(1)
}

func (m *MockBillOfLadingRepo) ListLineItems(ctx context.Context, bolID uuid.UUID) ([]domain.BOLLineItem, error) {
	args := m.Called(ctx, bolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BOLLineItem), args.Error(1)
}

func (m *MockBillOfLadingRepo) ListReferences(ctx context.Context, bolID uuid.UUID) ([]domain.BOLReference, error) {
	args := m.Called(ctx, bolID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BOLReference), args.Error(1)
}

func (m *MockBillOfLadingRepo) ListLinked(ctx context.Context, orgID *uuid.UUID) ([]domain.BillOfLading, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillOfLading), args.Error(1)
}
