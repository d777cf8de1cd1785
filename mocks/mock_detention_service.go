package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdoc/internal/domain"
	"freightdoc/internal/service"
)

// MockDetentionService is a mock implementation of service.DetentionService.
type MockDetentionService struct {
	mock.Mock
}

func (m *MockDetentionService) GenerateInvoice(ctx context.Context, input *service.GenerateInvoiceInput) (*domain.DetentionInvoice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetentionInvoice), args.Error(1)
}

func (m *MockDetentionService) SendInvoice(ctx context.Context, orgID, invoiceID uuid.UUID) (*domain.DetentionInvoice, error) {
	args := m.Called(ctx, orgID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetentionInvoice), args.Error(1)
}

func (m *MockDetentionService) ExportRegister(ctx context.Context, orgID uuid.UUID) (*service.RegisterExport, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RegisterExport), args.Error(1)
}
