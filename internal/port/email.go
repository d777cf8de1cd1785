package port

import (
	"context"
	"time"
)

// InvoiceEmail is the content of a detention invoice sent to a broker.
type InvoiceEmail struct {
	ToEmail         string
	InvoiceNumber   string
	FacilityName    string
	FacilityAddress string
	StartTime       time.Time
	EndTime         time.Time
	TotalHours      float64
	FreeTimeHours   float64
	PayableHours    float64
	RatePerHour     float64
	TotalDue        float64
	Currency        string
	PONumber        string
	BOLNumber       string
	EvidenceURL     string
}

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendDetentionInvoice(ctx context.Context, msg *InvoiceEmail) error
}
