// Package reconcile collapses loosely-structured extraction payloads into a
// consistent, fully-populated triple of customers, products, and invoices.
package reconcile

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"invotab/internal/domain"
)

// Pipeline sequences response parsing, shape classification, entity
// normalization, and invoice synthesis. It is stateless apart from the
// injected id generator; every call is independent.
type Pipeline struct {
	newID func() string
}

// NewPipeline creates a Pipeline with UUID id generation.
func NewPipeline() *Pipeline {
	return &Pipeline{newID: uuid.NewString}
}

// NewPipelineWithIDs creates a Pipeline with a custom id generator so tests
// can produce deterministic ids.
func NewPipelineWithIDs(newID func() string) *Pipeline {
	return &Pipeline{newID: newID}
}

// Process collapses a JSON payload of either upstream shape into the
// canonical entity triple. It never fails: malformed input degrades to
// documented defaults, and the returned lists are never nil.
func (p *Pipeline) Process(data []byte) domain.ExtractedData {
	if IsPreStructured(data) {
		return p.passThrough(data)
	}

	customers := p.NormalizeCustomers(gjson.GetBytes(data, "customers"))
	products := p.NormalizeProducts(gjson.GetBytes(data, "products"))
	invoices := p.SynthesizeInvoices(products, customers, gjson.GetBytes(data, "invoices.0"))

	return domain.ExtractedData{
		Invoices:  invoices,
		Products:  products,
		Customers: customers,
	}
}

// ProcessResponses combines the raw texts of the two model calls (one
// expected to hold products, the other customers and invoice metadata) and
// runs the full pipeline over the joined payload. Unparseable responses
// degrade to an empty object rather than failing.
func (p *Pipeline) ProcessResponses(productsText, metadataText string) domain.ExtractedData {
	productsData, err := ParseModelResponse(productsText)
	if err != nil {
		log.Printf("reconcile.Pipeline: products response unparseable: %v", err)
	}
	metadataData, err := ParseModelResponse(metadataText)
	if err != nil {
		log.Printf("reconcile.Pipeline: metadata response unparseable: %v", err)
	}

	return p.Process(combine(productsData, metadataData))
}

// combine builds the joined payload {products, customers, invoices} from the
// two partial objects. Missing or non-list fields become empty lists.
func combine(productsData, metadataData json.RawMessage) []byte {
	listField := func(data json.RawMessage, key string) json.RawMessage {
		if r := gjson.GetBytes(data, key); r.IsArray() {
			return json.RawMessage(r.Raw)
		}
		return json.RawMessage("[]")
	}

	combined, _ := json.Marshal(map[string]json.RawMessage{
		"products":  listField(productsData, "products"),
		"customers": listField(metadataData, "customers"),
		"invoices":  listField(metadataData, "invoices"),
	})
	return combined
}

// passThrough handles the pre-structured branch: products and invoices are
// trusted as already canonical, so no defaults or fresh ids are applied.
// Static typing still forces numeric fields into float64 (a "5%" tax string
// becomes 5); everything else is carried over as given. Only the
// at-least-one-customer invariant is enforced.
func (p *Pipeline) passThrough(data []byte) domain.ExtractedData {
	out := domain.ExtractedData{
		Invoices:  []domain.Invoice{},
		Products:  []domain.Product{},
		Customers: []domain.Customer{},
	}

	for _, item := range gjson.GetBytes(data, "products").Array() {
		out.Products = append(out.Products, domain.Product{
			ID:           item.Get("id").String(),
			ProductName:  item.Get("productName").String(),
			Quantity:     coerceNumber(item.Get("quantity")),
			UnitPrice:    coerceNumber(item.Get("unitPrice")),
			Tax:          coerceTax(item.Get("tax")),
			PriceWithTax: coerceNumber(item.Get("priceWithTax")),
		})
	}

	for _, item := range gjson.GetBytes(data, "invoices").Array() {
		var date *string
		if d := item.Get("date"); d.Exists() && d.Type != gjson.Null {
			s := d.String()
			date = &s
		}
		out.Invoices = append(out.Invoices, domain.Invoice{
			ID:           item.Get("id").String(),
			SerialNumber: item.Get("serialNumber").String(),
			CustomerName: item.Get("customerName").String(),
			ProductName:  item.Get("productName").String(),
			Quantity:     coerceNumber(item.Get("quantity")),
			PriceWithTax: coerceNumber(item.Get("priceWithTax")),
			Date:         date,
			BankDetails:  item.Get("bankDetails").String(),
		})
	}

	for _, item := range gjson.GetBytes(data, "customers").Array() {
		out.Customers = append(out.Customers, domain.Customer{
			ID:                  item.Get("id").String(),
			CustomerName:        item.Get("customerName").String(),
			PhoneNumber:         item.Get("phoneNumber").String(),
			Address:             item.Get("address").String(),
			TotalPurchaseAmount: coerceNumber(item.Get("totalPurchaseAmount")),
		})
	}
	if len(out.Customers) == 0 {
		out.Customers = []domain.Customer{p.placeholderCustomer()}
	}

	return out
}
