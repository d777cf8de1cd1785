package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"freightdoc/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendDetentionInvoice(ctx context.Context, msg *port.InvoiceEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
