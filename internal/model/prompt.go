package model

// BuildProductsPrompt returns the extraction prompt for the products call.
func BuildProductsPrompt() string {
	return `Extract ONLY product details from the invoice. Return JSON with:
products (
    productName, quantity, unitPrice, tax, priceWithTax
)
Focus on accuracy of numbers and product details.`
}

// BuildMetadataPrompt returns the extraction prompt for the customer and
// invoice metadata call.
func BuildMetadataPrompt() string {
	return `Extract ONLY customer and invoice details. Return JSON with:
customers (
    customerName, phoneNumber, address, totalPurchaseAmount
),
invoices (
    serialNumber, totalAmount, date, bankDetails
)`
}
