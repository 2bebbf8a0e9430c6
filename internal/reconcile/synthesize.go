package reconcile

import (
	"strings"

	"github.com/tidwall/gjson"

	"invotab/internal/domain"
)

// SynthesizeInvoices emits exactly one invoice row per normalized product,
// broadcasting the shared metadata record (serial number, date, bank
// details) and the first customer's name across every row.
func (p *Pipeline) SynthesizeInvoices(products []domain.Product, customers []domain.Customer, meta gjson.Result) []domain.Invoice {
	customerName := "-"
	if len(customers) > 0 && customers[0].CustomerName != "" {
		customerName = customers[0].CustomerName
	}

	serialNumber := stringOr(meta.Get("serialNumber"), "Unknown Invoice")

	bankDetails := formatBankDetails(meta.Get("bankDetails"))
	if bankDetails == "" {
		bankDetails = "-"
	}

	var date *string
	if d := meta.Get("date"); !isFalsy(d) {
		s := d.String()
		date = &s
	}

	invoices := make([]domain.Invoice, 0, len(products))
	for _, product := range products {
		invoices = append(invoices, domain.Invoice{
			ID:           p.newID(),
			SerialNumber: serialNumber,
			CustomerName: customerName,
			ProductName:  product.ProductName,
			Quantity:     product.Quantity,
			PriceWithTax: product.PriceWithTax,
			Date:         date,
			BankDetails:  bankDetails,
		})
	}
	return invoices
}

// formatBankDetails renders the bank-details value as an opaque display
// string: "key: value" pairs joined by commas, in document order, with
// "Unknown" substituted for falsy values. Non-objects render as "N/A".
func formatBankDetails(r gjson.Result) string {
	if !r.IsObject() {
		return "N/A"
	}

	var pairs []string
	r.ForEach(func(key, value gjson.Result) bool {
		v := value.String()
		if isFalsy(value) {
			v = "Unknown"
		}
		pairs = append(pairs, key.String()+": "+v)
		return true
	})
	return strings.Join(pairs, ", ")
}
