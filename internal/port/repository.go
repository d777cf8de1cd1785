package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"freightdoc/internal/domain"
)

// RateConfirmationRepository defines the contract for rate confirmation
// persistence. Each child collection is written by its own call so that a
// failed child write never undoes the header.
type RateConfirmationRepository interface {
	Create(ctx context.Context, rc *domain.RateConfirmation) error
	CreateStops(ctx context.Context, stops []domain.Stop) error
	CreateReferenceNumbers(ctx context.Context, refs []domain.ReferenceNumber) error
	CreateCharges(ctx context.Context, charges []domain.Charge) error
	CreateRiskClause(ctx context.Context, clause *domain.RiskClause) error
	CreateDispatchInstructions(ctx context.Context, instructions []domain.DispatchInstruction) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.RateConfirmation, error)
	ListStops(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.Stop, error)
	ListReferenceNumbers(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.ReferenceNumber, error)
	ListCharges(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.Charge, error)
	ListRiskClauses(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.RiskClause, error)
	ListDispatchInstructions(ctx context.Context, rateConfirmationID uuid.UUID) ([]domain.DispatchInstruction, error)
	GetStop(ctx context.Context, orgID, stopID uuid.UUID) (*domain.Stop, error)
	FirstStopForLoad(ctx context.Context, orgID, loadID uuid.UUID) (*domain.Stop, error)
	UpdateStatus(ctx context.Context, orgID, id uuid.UUID, from, to domain.RateConfirmationStatus) error
}

// BillOfLadingRepository defines the contract for BOL persistence.
type BillOfLadingRepository interface {
	Create(ctx context.Context, bol *domain.BillOfLading) error
	CreateLineItems(ctx context.Context, items []domain.BOLLineItem) error
	CreateReferences(ctx context.Context, refs []domain.BOLReference) error
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.BillOfLading, error)
	ListLineItems(ctx context.Context, bolID uuid.UUID) ([]domain.BOLLineItem, error)
	ListReferences(ctx context.Context, bolID uuid.UUID) ([]domain.BOLReference, error)
	ListLinked(ctx context.Context, orgID *uuid.UUID) ([]domain.BillOfLading, error)
}

// LoadRepository reads loads owned by the dispatch system.
type LoadRepository interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Load, error)
}

// ValidationVerdictRepository stores one verdict per (BOL, load) pair.
type ValidationVerdictRepository interface {
	Upsert(ctx context.Context, verdict *domain.ValidationVerdict) error
	GetByBOL(ctx context.Context, orgID, bolID uuid.UUID) (*domain.ValidationVerdict, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]domain.ValidationVerdict, error)
}

// NotificationRepository stores scheduled clause notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.ScheduledNotification) error
	ListByRateConfirmation(ctx context.Context, orgID, rateConfirmationID uuid.UUID) ([]domain.ScheduledNotification, error)
}

// DetentionRepository defines the contract for detention records and invoices.
type DetentionRepository interface {
	GetRecord(ctx context.Context, orgID, id uuid.UUID) (*domain.DetentionRecord, error)
	CreateInvoice(ctx context.Context, inv *domain.DetentionInvoice) error
	GetInvoice(ctx context.Context, orgID, id uuid.UUID) (*domain.DetentionInvoice, error)
	ListInvoices(ctx context.Context, orgID uuid.UUID) ([]domain.DetentionInvoice, error)
	MarkInvoiceSent(ctx context.Context, orgID, id uuid.UUID, sentAt time.Time) error
}
