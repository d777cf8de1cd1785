package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdoc/internal/port"
)

func sampleInvoice() *port.InvoiceEmail {
	start := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	return &port.InvoiceEmail{
		ToEmail:         "broker@example.com",
		InvoiceNumber:   "DET-20250304-1",
		FacilityName:    "Cold Storage <A>",
		FacilityAddress: "1 Dock Rd",
		StartTime:       start,
		EndTime:         start.Add(5 * time.Hour),
		TotalHours:      5,
		FreeTimeHours:   2,
		PayableHours:    3,
		RatePerHour:     75,
		TotalDue:        225,
		Currency:        "USD",
		PONumber:        "PO-9",
	}
}

func TestInvoiceHTML(t *testing.T) {
	msg := sampleInvoice()
	msg.EvidenceURL = "https://example.com/photo.jpg"

	html, err := InvoiceHTML(msg)
	require.NoError(t, err)

	assert.Contains(t, html, "DET-20250304-1")
	assert.Contains(t, html, "Cold Storage &lt;A&gt;")
	assert.Contains(t, html, "225.00 USD")
	assert.Contains(t, html, "PO-9")
	assert.Contains(t, html, "https://example.com/photo.jpg")
	assert.NotContains(t, html, "<td>BOL</td>")
}

func TestInvoiceText_NoEvidence(t *testing.T) {
	text := InvoiceText(sampleInvoice())

	assert.Contains(t, text, "Payable hours: 3.00 of 5.00 (2.00 free)")
	assert.Contains(t, text, "Total due: 225.00 USD")
	assert.Contains(t, text, "Arrived: Mar 4, 2025 08:00")
	assert.NotContains(t, text, "Evidence:")
}

func TestInvoiceSubject(t *testing.T) {
	assert.Equal(t, "Detention invoice DET-20250304-1 - Cold Storage <A>", InvoiceSubject(sampleInvoice()))
}
