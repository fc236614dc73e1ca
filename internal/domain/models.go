package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID          int             `json:"id"`          // assigned by the store
	SKU         string          `json:"sku"`         // Stock Keeping Unit
	Description string          `json:"description"` // optional
	Price       decimal.Decimal `json:"price"`
}

// Prices go over the wire as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
