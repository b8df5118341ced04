package entity

import "github.com/shopspring/decimal"

// BillingType tags how a line item is billed; it drives the UN/ECE unit code
// on the e-invoice line.
type BillingType string

const (
	BillingHourly BillingType = "hourly"
	BillingDaily  BillingType = "daily"
	BillingFixed  BillingType = "fixed"
)

// ResolvedLineItem is a fully-computed invoice line: quantity, rate and the
// resulting total have already been resolved by the invoice builder.
type ResolvedLineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	BillingType BillingType     `json:"billingType"`
	Total       decimal.Decimal `json:"total"`
}
