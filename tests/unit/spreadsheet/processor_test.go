package spreadsheet_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"invotab/internal/reconcile"
	"invotab/internal/spreadsheet"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// buildWorkbook creates an in-memory xlsx with the given rows, first row
// being the header.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestProcess_BasicWorkbook(t *testing.T) {
	p := spreadsheet.NewProcessorWithIDs(sequentialIDs())

	data := buildWorkbook(t, [][]interface{}{
		{"Serial Number", "Product Name", "Quantity", "Unit Price", "Tax", "Price With Tax", "Customer Name", "Phone Number", "Date", "Bank Details"},
		{"INV-1", "Widget", 2, 50, "5%", 105, "Acme Traders", "9876543210", "2024-01-05", "ifsc: AB01"},
		{"INV-1", "Gadget", 1, 59, "0%", 59, "Acme Traders", "9876543210", "2024-01-05", "ifsc: AB01"},
	})

	raw, err := p.Process(data)
	require.NoError(t, err)

	pipeline := reconcile.NewPipelineWithIDs(sequentialIDs())
	result := pipeline.Process(raw)

	require.Len(t, result.Products, 2)
	assert.Equal(t, "Widget", result.Products[0].ProductName)
	assert.Equal(t, 5.0, result.Products[0].Tax)
	assert.Equal(t, 105.0, result.Products[0].PriceWithTax)

	require.Len(t, result.Invoices, 2)
	assert.Equal(t, "INV-1", result.Invoices[0].SerialNumber)
	assert.Equal(t, "Acme Traders", result.Invoices[0].CustomerName)
	require.NotNil(t, result.Invoices[0].Date)
	assert.Equal(t, "2024-01-05", *result.Invoices[0].Date)
	assert.Equal(t, "ifsc: AB01", result.Invoices[0].BankDetails)

	// Same customer on both rows aggregates into one record
	require.Len(t, result.Customers, 1)
	assert.Equal(t, "Acme Traders", result.Customers[0].CustomerName)
	assert.Equal(t, 164.0, result.Customers[0].TotalPurchaseAmount)
}

func TestProcess_OutputIsPreStructured(t *testing.T) {
	p := spreadsheet.NewProcessorWithIDs(sequentialIDs())

	data := buildWorkbook(t, [][]interface{}{
		{"Invoice Number", "Product", "Qty", "Amount"},
		{"INV-1", "Widget", 2, 105},
	})

	raw, err := p.Process(data)
	require.NoError(t, err)
	assert.True(t, reconcile.IsPreStructured(raw))
}

func TestProcess_HeaderAliases(t *testing.T) {
	p := spreadsheet.NewProcessorWithIDs(sequentialIDs())

	data := buildWorkbook(t, [][]interface{}{
		{"invoice_no", "description", "qty", "rate", "gst", "total", "party name"},
		{"INV-2", "Bolt", "10", "1,050", "18%", "12,390", "Beta LLC"},
	})

	raw, err := p.Process(data)
	require.NoError(t, err)

	pipeline := reconcile.NewPipelineWithIDs(sequentialIDs())
	result := pipeline.Process(raw)

	require.Len(t, result.Products, 1)
	assert.Equal(t, "Bolt", result.Products[0].ProductName)
	assert.Equal(t, 10.0, result.Products[0].Quantity)
	assert.Equal(t, 1050.0, result.Products[0].UnitPrice)
	assert.Equal(t, 18.0, result.Products[0].Tax)
	assert.Equal(t, 12390.0, result.Products[0].PriceWithTax)
	require.Len(t, result.Customers, 1)
	assert.Equal(t, "Beta LLC", result.Customers[0].CustomerName)
}

func TestProcess_SkipsEmptyRows(t *testing.T) {
	p := spreadsheet.NewProcessorWithIDs(sequentialIDs())

	data := buildWorkbook(t, [][]interface{}{
		{"Serial Number", "Product Name", "Quantity"},
		{"INV-1", "Widget", 1},
		{"", "", ""},
		{nil, nil, nil},
	})

	raw, err := p.Process(data)
	require.NoError(t, err)

	pipeline := reconcile.NewPipelineWithIDs(sequentialIDs())
	result := pipeline.Process(raw)
	assert.Len(t, result.Products, 1)
	assert.Len(t, result.Invoices, 1)
}

func TestProcess_NoHeaderRow(t *testing.T) {
	p := spreadsheet.NewProcessorWithIDs(sequentialIDs())

	data := buildWorkbook(t, [][]interface{}{
		{"foo", "bar"},
		{"baz", "qux"},
	})

	_, err := p.Process(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recognizable header row")
}

func TestProcess_NotAWorkbook(t *testing.T) {
	p := spreadsheet.NewProcessorWithIDs(sequentialIDs())

	_, err := p.Process([]byte("definitely not a workbook"))
	require.Error(t, err)
}
