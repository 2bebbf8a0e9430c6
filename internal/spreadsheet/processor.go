// Package spreadsheet converts uploaded workbooks into the pre-structured
// extraction payload: one invoice row per product line, with customer and
// invoice metadata broadcast from each row's cells.
package spreadsheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// headerAliases maps normalized column headers to canonical field names.
// Normalization lowercases and strips spaces, underscores, and dots.
var headerAliases = map[string]string{
	"serialnumber":        "serialNumber",
	"invoicenumber":       "serialNumber",
	"invoiceno":           "serialNumber",
	"productname":         "productName",
	"product":             "productName",
	"itemname":            "productName",
	"description":         "productName",
	"quantity":            "quantity",
	"qty":                 "quantity",
	"unitprice":           "unitPrice",
	"price":               "unitPrice",
	"rate":                "unitPrice",
	"tax":                 "tax",
	"taxrate":             "tax",
	"gst":                 "tax",
	"pricewithtax":        "priceWithTax",
	"totalamount":         "priceWithTax",
	"amount":              "priceWithTax",
	"total":               "priceWithTax",
	"customername":        "customerName",
	"customer":            "customerName",
	"partyname":           "customerName",
	"phonenumber":         "phoneNumber",
	"phone":               "phoneNumber",
	"mobile":              "phoneNumber",
	"address":             "address",
	"totalpurchaseamount": "totalPurchaseAmount",
	"date":                "date",
	"invoicedate":         "date",
	"bankdetails":         "bankDetails",
}

type productRow struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"productName"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Tax          float64 `json:"tax"`
	PriceWithTax float64 `json:"priceWithTax"`
}

type invoiceRow struct {
	ID           string  `json:"id"`
	SerialNumber string  `json:"serialNumber"`
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Quantity     float64 `json:"quantity"`
	PriceWithTax float64 `json:"priceWithTax"`
	Date         *string `json:"date"`
	BankDetails  string  `json:"bankDetails"`
}

type customerRow struct {
	ID                  string  `json:"id"`
	CustomerName        string  `json:"customerName"`
	PhoneNumber         string  `json:"phoneNumber"`
	Address             string  `json:"address"`
	TotalPurchaseAmount float64 `json:"totalPurchaseAmount"`
}

type payload struct {
	Products  []productRow  `json:"products"`
	Invoices  []invoiceRow  `json:"invoices"`
	Customers []customerRow `json:"customers"`
}

// Processor reads workbooks with excelize and emits the pre-structured
// payload. It implements port.SpreadsheetProcessor.
type Processor struct {
	newID func() string
}

// NewProcessor creates a Processor with UUID id generation.
func NewProcessor() *Processor {
	return &Processor{newID: uuid.NewString}
}

// NewProcessorWithIDs creates a Processor with a custom id generator (for tests).
func NewProcessorWithIDs(newID func() string) *Processor {
	return &Processor{newID: newID}
}

// Process reads the first sheet of the workbook and converts its rows into
// the pre-structured payload. The first non-empty row is treated as the
// header; rows with no product name and no serial number are skipped.
func (p *Processor) Process(data []byte) (json.RawMessage, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	columns, dataRows := splitHeader(rows)
	if columns == nil {
		return nil, fmt.Errorf("sheet %q has no recognizable header row", sheets[0])
	}

	out := payload{
		Products:  []productRow{},
		Invoices:  []invoiceRow{},
		Customers: []customerRow{},
	}
	customerIndex := map[string]int{}

	for _, row := range dataRows {
		fields := rowFields(columns, row)
		productName := fields["productName"]
		serialNumber := fields["serialNumber"]
		if productName == "" && serialNumber == "" {
			continue
		}

		quantity := parseNumber(fields["quantity"])
		priceWithTax := parseNumber(fields["priceWithTax"])

		out.Products = append(out.Products, productRow{
			ID:           p.newID(),
			ProductName:  productName,
			Quantity:     quantity,
			UnitPrice:    parseNumber(fields["unitPrice"]),
			Tax:          parseNumber(fields["tax"]),
			PriceWithTax: priceWithTax,
		})

		var date *string
		if d := fields["date"]; d != "" {
			date = &d
		}
		out.Invoices = append(out.Invoices, invoiceRow{
			ID:           p.newID(),
			SerialNumber: serialNumber,
			CustomerName: fields["customerName"],
			ProductName:  productName,
			Quantity:     quantity,
			PriceWithTax: priceWithTax,
			Date:         date,
			BankDetails:  fields["bankDetails"],
		})

		if name := fields["customerName"]; name != "" {
			idx, seen := customerIndex[name]
			if !seen {
				customerIndex[name] = len(out.Customers)
				out.Customers = append(out.Customers, customerRow{
					ID:           p.newID(),
					CustomerName: name,
					PhoneNumber:  valueOrDash(fields["phoneNumber"]),
					Address:      valueOrDash(fields["address"]),
				})
				idx = customerIndex[name]
			}
			if total := fields["totalPurchaseAmount"]; total != "" {
				out.Customers[idx].TotalPurchaseAmount = parseNumber(total)
			} else {
				out.Customers[idx].TotalPurchaseAmount += priceWithTax
			}
		}
	}

	return json.Marshal(out)
}

// splitHeader finds the first row containing at least one known column
// header and returns the canonical field name per column index plus the
// remaining data rows.
func splitHeader(rows [][]string) ([]string, [][]string) {
	for i, row := range rows {
		columns := make([]string, len(row))
		matched := 0
		for j, cell := range row {
			if field, ok := headerAliases[normalizeHeader(cell)]; ok {
				columns[j] = field
				matched++
			}
		}
		if matched > 0 {
			return columns, rows[i+1:]
		}
	}
	return nil, nil
}

func rowFields(columns []string, row []string) map[string]string {
	fields := map[string]string{}
	for j, field := range columns {
		if field == "" || j >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[j]); v != "" {
			fields[field] = v
		}
	}
	return fields
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", ".", "", "(%)", "").Replace(s)
}

// parseNumber parses a cell as a float, tolerating currency commas and a
// trailing percent sign. Unparseable cells yield 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
