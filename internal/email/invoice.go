// Package email renders detention invoice messages for the sender adapters.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"freightdoc/internal/port"
)

const timeLayout = "Jan 2, 2006 15:04"

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Detention invoice {{.InvoiceNumber}}</h2>
  <p>Detention was recorded at <strong>{{.FacilityName}}</strong>, {{.FacilityAddress}}.</p>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td>Arrived</td><td>{{.Start}}</td></tr>
    <tr><td>Departed</td><td>{{.End}}</td></tr>
    <tr><td>Total hours</td><td>{{printf "%.2f" .TotalHours}}</td></tr>
    <tr><td>Free time</td><td>{{printf "%.2f" .FreeTimeHours}}</td></tr>
    <tr><td>Payable hours</td><td>{{printf "%.2f" .PayableHours}}</td></tr>
    <tr><td>Rate per hour</td><td>{{printf "%.2f" .RatePerHour}} {{.Currency}}</td></tr>
    <tr><td><strong>Total due</strong></td><td><strong>{{printf "%.2f" .TotalDue}} {{.Currency}}</strong></td></tr>
    {{- if .PONumber}}<tr><td>PO</td><td>{{.PONumber}}</td></tr>{{end}}
    {{- if .BOLNumber}}<tr><td>BOL</td><td>{{.BOLNumber}}</td></tr>{{end}}
  </table>
  {{- if .EvidenceURL}}
  <p style="margin-top: 20px;"><a href="{{.EvidenceURL}}">View evidence photo</a></p>
  {{- end}}
</body>
</html>`))

type invoiceView struct {
	*port.InvoiceEmail
	Start string
	End   string
}

// InvoiceSubject returns the subject line for an invoice email.
func InvoiceSubject(msg *port.InvoiceEmail) string {
	return fmt.Sprintf("Detention invoice %s - %s", msg.InvoiceNumber, msg.FacilityName)
}

// InvoiceHTML renders the HTML body.
func InvoiceHTML(msg *port.InvoiceEmail) (string, error) {
	var buf bytes.Buffer
	view := invoiceView{
		InvoiceEmail: msg,
		Start:        msg.StartTime.Format(timeLayout),
		End:          msg.EndTime.Format(timeLayout),
	}
	if err := invoiceTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("rendering invoice email: %w", err)
	}
	return buf.String(), nil
}

// InvoiceText renders the plain-text body.
func InvoiceText(msg *port.InvoiceEmail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Detention invoice %s\n\n", msg.InvoiceNumber)
	fmt.Fprintf(&b, "Facility: %s, %s\n", msg.FacilityName, msg.FacilityAddress)
	fmt.Fprintf(&b, "Arrived: %s\n", msg.StartTime.Format(timeLayout))
	fmt.Fprintf(&b, "Departed: %s\n", msg.EndTime.Format(timeLayout))
	fmt.Fprintf(&b, "Payable hours: %.2f of %.2f (%.2f free)\n", msg.PayableHours, msg.TotalHours, msg.FreeTimeHours)
	fmt.Fprintf(&b, "Rate: %.2f %s per hour\n", msg.RatePerHour, msg.Currency)
	fmt.Fprintf(&b, "Total due: %.2f %s\n", msg.TotalDue, msg.Currency)
	if msg.PONumber != "" {
		fmt.Fprintf(&b, "PO: %s\n", msg.PONumber)
	}
	if msg.BOLNumber != "" {
		fmt.Fprintf(&b, "BOL: %s\n", msg.BOLNumber)
	}
	if msg.EvidenceURL != "" {
		fmt.Fprintf(&b, "\nEvidence: %s\n", msg.EvidenceURL)
	}
	return b.String()
}
