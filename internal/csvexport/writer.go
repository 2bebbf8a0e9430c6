package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"invotab/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for the flattened invoice table.
var columns = []string{
	"Serial Number",
	"Customer Name",
	"Product Name",
	"Quantity",
	"Price With Tax",
	"Date",
	"Bank Details",
}

// Writer wraps csv.Writer for exporting extraction results as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts the reconciled invoice rows to CSV rows and writes
// them. One CSV row per invoice line item.
func (w *Writer) WriteInvoices(invoices []domain.Invoice) error {
	for i := range invoices {
		row := invoiceToRow(&invoices[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func invoiceToRow(inv *domain.Invoice) []string {
	row := make([]string, len(columns))
	row[0] = inv.SerialNumber
	row[1] = inv.CustomerName
	row[2] = inv.ProductName
	row[3] = formatNumber(inv.Quantity)
	row[4] = formatNumber(inv.PriceWithTax)
	if inv.Date != nil {
		row[5] = *inv.Date
	}
	row[6] = inv.BankDetails
	return row
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans an uploaded document name for use in
// Content-Disposition. Replaces non-alphanumeric chars (except - _) with _,
// collapses consecutive underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_document_name}_{YYYY-MM-DD}.csv
func BuildFilename(documentName string) string {
	sanitized := SanitizeFilename(documentName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
