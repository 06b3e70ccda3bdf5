// Package core defines the shared types and error taxonomy for currency
// exchange operations.
package core

import "github.com/shopspring/decimal"

// ConversionRequest asks for amount units of From expressed in To. Both
// codes are validated and uppercased before a request is constructed.
type ConversionRequest struct {
	From   string
	To     string
	Amount decimal.Decimal
}

// Pair renders the currency pair for logs.
func (r ConversionRequest) Pair() string {
	return r.From + "/" + r.To
}
