package reconcile

import "github.com/tidwall/gjson"

// IsPreStructured reports whether a payload already has one invoice row per
// product, as produced by the spreadsheet path. The sole discriminator is a
// productName field on the first invoice record; model output carries only
// shared metadata there. This is a heuristic: it misclassifies if either
// upstream source changes its shape.
func IsPreStructured(data []byte) bool {
	return gjson.GetBytes(data, "products").IsArray() &&
		gjson.GetBytes(data, "invoices").IsArray() &&
		gjson.GetBytes(data, "invoices.0.productName").Exists()
}
