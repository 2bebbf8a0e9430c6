package csvexport

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invotab/internal/domain"
)

func TestWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteHeader())

	date := "2024-01-05"
	invoices := []domain.Invoice{
		{
			SerialNumber: "INV-9",
			CustomerName: "Acme Traders",
			ProductName:  "Widget",
			Quantity:     2,
			PriceWithTax: 105.5,
			Date:         &date,
			BankDetails:  "ifsc: AB01, accountNo: Unknown",
		},
		{
			SerialNumber: "Unknown Invoice",
			CustomerName: "-",
			ProductName:  "Gadget",
			Quantity:     1,
			PriceWithTax: 59,
		},
	}
	require.NoError(t, w.WriteInvoices(invoices))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(strings.NewReader(buf.String()))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Serial Number", "Customer Name", "Product Name", "Quantity", "Price With Tax", "Date", "Bank Details"}, records[0])
	assert.Equal(t, []string{"INV-9", "Acme Traders", "Widget", "2", "105.5", "2024-01-05", "ifsc: AB01, accountNo: Unknown"}, records[1])

	// Nil date renders as an empty cell
	assert.Equal(t, "", records[2][5])
	assert.Equal(t, "Unknown Invoice", records[2][0])
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Q3 Purchase Invoices", "Q3_Purchase_Invoices"},
		{"a/b\\c:d", "a_b_c_d"},
		{"__already__clean__", "already_clean"},
		{"invoice (final).pdf", "invoice_final_pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input: %q", tt.in)
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("a", 150)
	assert.Len(t, SanitizeFilename(long), 100)
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("My Invoices")
	assert.True(t, strings.HasPrefix(name, "My_Invoices_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
	assert.Contains(t, name, time.Now().Format("2006-01-02"))
}
