// Package xlsxexport renders detention invoices as a spreadsheet register.
package xlsxexport

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"freightdoc/internal/domain"
)

const (
	SummarySheet  = "Summary"
	InvoicesSheet = "Invoices"
)

var invoiceHeaders = []string{
	"Invoice Number",
	"Generated",
	"Status",
	"Facility",
	"Facility Address",
	"Start",
	"End",
	"Total Hours",
	"Free Hours",
	"Payable Hours",
	"Rate / Hour",
	"Total Due",
	"Currency",
	"PO Number",
	"BOL Number",
	"Broker Email",
	"Sent At",
}

// WriteInvoiceRegister builds an XLSX workbook with a per-currency summary
// and one row per invoice, in the order given.
func WriteInvoiceRegister(invoices []domain.DetentionInvoice, generatedAt time.Time) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, fmt.Errorf("renaming summary sheet: %w", err)
	}
	writeSummary(file, invoices, generatedAt)

	if _, err := file.NewSheet(InvoicesSheet); err != nil {
		return nil, fmt.Errorf("creating invoices sheet: %w", err)
	}
	if err := writeInvoices(file, invoices); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(file *excelize.File, invoices []domain.DetentionInvoice, generatedAt time.Time) {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(SummarySheet, cell, value)
	}

	totals := map[string]float64{}
	sent := 0
	for i := range invoices {
		totals[invoices[i].Currency] += invoices[i].TotalDue
		if invoices[i].Status == domain.InvoiceStatusSent {
			sent++
		}
	}

	set("A1", "Generated")
	set("B1", generatedAt.UTC().Format(time.RFC3339))
	set("A2", "Invoices")
	set("B2", len(invoices))
	set("A3", "Sent")
	set("B3", sent)

	currencies := make([]string, 0, len(totals))
	for c := range totals {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)

	tableRow := 5
	set(fmt.Sprintf("A%d", tableRow), "Currency")
	set(fmt.Sprintf("B%d", tableRow), "Total Due")
	for i, c := range currencies {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), c)
		set(fmt.Sprintf("B%d", row), roundCents(totals[c]))
	}

	_ = file.SetColWidth(SummarySheet, "A", "A", 16)
	_ = file.SetColWidth(SummarySheet, "B", "B", 24)
}

func writeInvoices(file *excelize.File, invoices []domain.DetentionInvoice) error {
	for i, header := range invoiceHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		_ = file.SetCellValue(InvoicesSheet, cell, header)
	}

	for i := range invoices {
		inv := &invoices[i]
		sentAt := ""
		if inv.SentAt != nil {
			sentAt = formatTime(*inv.SentAt)
		}
		values := []interface{}{
			inv.InvoiceNumber,
			formatTime(inv.GeneratedDate),
			string(inv.Status),
			inv.FacilityName,
			inv.FacilityAddress,
			formatTime(inv.StartTime),
			formatTime(inv.EndTime),
			inv.TotalHours,
			inv.FreeTimeHours,
			inv.PayableHours,
			inv.RatePerHour,
			inv.TotalDue,
			inv.Currency,
			inv.PONumber,
			inv.BOLNumber,
			inv.BrokerEmail,
			sentAt,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row cell: %w", err)
		}
		if err := file.SetSheetRow(InvoicesSheet, cell, &values); err != nil {
			return fmt.Errorf("writing invoice %s: %w", inv.InvoiceNumber, err)
		}
	}

	_ = file.SetColWidth(InvoicesSheet, "A", "A", 26)
	_ = file.SetColWidth(InvoicesSheet, "B", "C", 20)
	_ = file.SetColWidth(InvoicesSheet, "D", "E", 32)
	_ = file.SetColWidth(InvoicesSheet, "F", "G", 20)
	_ = file.SetColWidth(InvoicesSheet, "H", "M", 12)
	_ = file.SetColWidth(InvoicesSheet, "N", "Q", 22)
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
