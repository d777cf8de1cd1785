package noop

import (
	"context"

	"github.com/rs/zerolog"

	"freightdoc/internal/port"
)

type noopSender struct {
	log zerolog.Logger
}

// NewNoopSender creates an EmailSender that only logs what would have been sent.
func NewNoopSender(log zerolog.Logger) port.EmailSender {
	return &noopSender{log: log.With().Str("component", "noop_email").Logger()}
}

func (s *noopSender) SendDetentionInvoice(_ context.Context, msg *port.InvoiceEmail) error {
	s.log.Info().
		Str("to", msg.ToEmail).
		Str("invoice_number", msg.InvoiceNumber).
		Float64("total_due", msg.TotalDue).
		Str("currency", msg.Currency).
		Str("evidence_url", msg.EvidenceURL).
		Msg("detention invoice email suppressed")
	return nil
}
