package reconcile

import (
	"github.com/tidwall/gjson"

	"invotab/internal/domain"
)

// NormalizeCustomers maps an arbitrary-shaped customer list into canonical
// records. An absent or empty list yields exactly one placeholder row so the
// output always has at least one customer.
func (p *Pipeline) NormalizeCustomers(list gjson.Result) []domain.Customer {
	items := list.Array()
	if !list.IsArray() || len(items) == 0 {
		return []domain.Customer{p.placeholderCustomer()}
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		customers = append(customers, domain.Customer{
			ID:                  p.itemID(item),
			CustomerName:        stringOr(item.Get("customerName"), "Unknown Customer"),
			PhoneNumber:         stringOr(item.Get("phoneNumber"), "-"),
			Address:             stringOr(item.Get("address"), "-"),
			TotalPurchaseAmount: coerceNumber(item.Get("totalPurchaseAmount")),
		})
	}
	return customers
}

// NormalizeProducts maps an arbitrary-shaped product list into canonical
// records. An absent or empty list yields an empty slice; invoice synthesis
// then naturally produces zero rows.
func (p *Pipeline) NormalizeProducts(list gjson.Result) []domain.Product {
	items := list.Array()
	products := make([]domain.Product, 0, len(items))
	if !list.IsArray() {
		return products
	}

	for _, item := range items {
		products = append(products, domain.Product{
			ID:           p.itemID(item),
			ProductName:  stringOr(item.Get("productName"), "Unknown Product"),
			Quantity:     coerceNumber(item.Get("quantity")),
			UnitPrice:    coerceNumber(item.Get("unitPrice")),
			Tax:          coerceTax(item.Get("tax")),
			PriceWithTax: coerceNumber(item.Get("priceWithTax")),
		})
	}
	return products
}

// itemID preserves a string-coercible id from the source item, otherwise
// generates a fresh one.
func (p *Pipeline) itemID(item gjson.Result) string {
	if id := item.Get("id"); !isFalsy(id) {
		return id.String()
	}
	return p.newID()
}

func (p *Pipeline) placeholderCustomer() domain.Customer {
	return domain.Customer{
		ID:                  p.newID(),
		CustomerName:        "-",
		PhoneNumber:         "-",
		Address:             "-",
		TotalPurchaseAmount: 0,
	}
}
