package domain

// Product is one normalized line item extracted from a document.
type Product struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"productName"`
	Quantity     float64 `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	Tax          float64 `json:"tax"`
	PriceWithTax float64 `json:"priceWithTax"`
}

// Customer is one normalized customer record. Documents are assumed to
// carry a single customer; when none is found a placeholder row is used.
type Customer struct {
	ID                  string  `json:"id"`
	CustomerName        string  `json:"customerName"`
	PhoneNumber         string  `json:"phoneNumber"`
	Address             string  `json:"address"`
	TotalPurchaseAmount float64 `json:"totalPurchaseAmount"`
}

// Invoice is one synthesized invoice row. There is exactly one row per
// product; serial number, date, customer name, and bank details are
// broadcast from the shared invoice metadata.
type Invoice struct {
	ID           string  `json:"id"`
	SerialNumber string  `json:"serialNumber"`
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Quantity     float64 `json:"quantity"`
	PriceWithTax float64 `json:"priceWithTax"`
	Date         *string `json:"date"`
	BankDetails  string  `json:"bankDetails"`
}

// ExtractedData is the aggregate returned by the extraction pipeline.
// The field names are a wire contract; consumers edit rows by id.
type ExtractedData struct {
	Invoices  []Invoice  `json:"invoices"`
	Products  []Product  `json:"products"`
	Customers []Customer `json:"customers"`
}
