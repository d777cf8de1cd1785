package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdoc/internal/domain"
)

// MockDetentionRepo is a mock implementation of port.DetentionRepository.
type MockDetentionRepo struct {
	mock.Mock
}

func (m *MockDetentionRepo) GetRecord(ctx context.Context, orgID, id uuid.UUID) (*domain.DetentionRecord, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetentionRecord), args.Error(1)
}

func (m *MockDetentionRepo) CreateInvoice(ctx context.Context, inv *domain.DetentionInvoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockDetentionRepo) GetInvoice(ctx context.Context, orgID, id uuid.UUID) (*domain.DetentionInvoice, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetentionInvoice), args.Error(1)
}

func (m *MockDetentionRepo) ListInvoices(ctx context.Context, orgID uuid.UUID) ([]domain.DetentionInvoice, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DetentionInvoice), args.Error(1)
}

func (m *MockDetentionRepo) MarkInvoiceSent(ctx context.Context, orgID, id uuid.UUID, sentAt time.Time) error {
	args := m.Called(ctx, orgID, id, sentAt)
	return args.Error(0)
}
