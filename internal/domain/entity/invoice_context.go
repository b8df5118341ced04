package entity

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// Translations is the slice of the locale bundle the e-invoice core consumes:
// the filename prefix ("Rechnung"/"Invoice") and the payment terms text
// (BT-20). The full bundle lives with the template renderer.
type Translations struct {
	FilePrefix   string `json:"filePrefix"`
	PaymentTerms string `json:"paymentTerms,omitempty"`
}

// InvoiceContext is a fully-resolved invoice as produced by the invoice
// builder. It is read-only input to the e-invoice core; the core never
// mutates it. Invoice and due dates are locale-formatted strings in the
// language given by Lang ("02.01.2006" for German, "2 Jan 2006" for English).
type InvoiceContext struct {
	Provider     Provider     `json:"provider"`
	Client       Client       `json:"client"`
	Translations Translations `json:"translations"`

	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	DueDate       string `json:"dueDate,omitempty"`
	ServicePeriod string `json:"servicePeriod,omitempty"`
	MonthName     string `json:"monthName"`

	Currency string       `json:"currency"`
	Lang     language.Tag `json:"lang"`

	BankDetails BankDetails        `json:"bankDetails"`
	LineItems   []ResolvedLineItem `json:"lineItems"`

	Subtotal    decimal.Decimal `json:"subtotal"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	// TaxRate is the flat fractional rate applied to the whole invoice,
	// e.g. 0.19 for 19% German VAT.
	TaxRate decimal.Decimal `json:"taxRate"`
}
