package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"freightdoc/internal/domain"
	"freightdoc/internal/xlsxexport"
)

func invoice(number, currency string, due float64, status domain.InvoiceStatus) domain.DetentionInvoice {
	start := time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)
	return domain.DetentionInvoice{
		ID:              uuid.New(),
		InvoiceNumber:   number,
		FacilityName:    "Acme DC",
		FacilityAddress: "1 Dock Rd",
		StartTime:       start,
		EndTime:         start.Add(5 * time.Hour),
		TotalHours:      5,
		FreeTimeHours:   2,
		PayableHours:    3,
		RatePerHour:     75,
		TotalDue:        due,
		Currency:        currency,
		Status:          status,
		GeneratedDate:   start.Add(6 * time.Hour),
	}
}

func TestWriteInvoiceRegister(t *testing.T) {
	invoices := []domain.DetentionInvoice{
		invoice("DET-20240304-1", "USD", 225, domain.InvoiceStatusApproved),
		invoice("DET-20240304-2", "USD", 100.5, domain.InvoiceStatusSent),
		invoice("DET-20240304-3", "CAD", 50, domain.InvoiceStatusApproved),
	}

	data, err := xlsxexport.WriteInvoiceRegister(invoices, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsxexport.SummarySheet, xlsxexport.InvoicesSheet}, f.GetSheetList())

	rows, err := f.GetRows(xlsxexport.InvoicesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "DET-20240304-1", rows[1][0])
	assert.Equal(t, "APPROVED", rows[1][2])
	assert.Equal(t, "2024-03-04 08:00", rows[1][5])
	assert.Equal(t, "DET-20240304-3", rows[3][0])

	count, err := f.GetCellValue(xlsxexport.SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", count)

	sent, err := f.GetCellValue(xlsxexport.SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "1", sent)

	// currencies are listed alphabetically
	cad, err := f.GetCellValue(xlsxexport.SummarySheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "CAD", cad)
	usdTotal, err := f.GetCellValue(xlsxexport.SummarySheet, "B7")
	require.NoError(t, err)
	assert.Equal(t, "325.5", usdTotal)
}

func TestWriteInvoiceRegister_Empty(t *testing.T) {
	data, err := xlsxexport.WriteInvoiceRegister(nil, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsxexport.InvoicesSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
