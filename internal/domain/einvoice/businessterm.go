package einvoice

import "github.com/shopspring/decimal"

// Document is the EN16931-shaped projection of an invoice: a flat set of
// BT-coded scalar fields plus the VAT breakdown (BG-23) and invoice lines
// (BG-25). JSON keys carry the Business Term codes so the JSON rendering of
// the document is self-describing against the standard.
type Document struct {
	// Document level
	InvoiceNumber  string `json:"BT-1"`
	IssueDate      string `json:"BT-2"`  // YYYY-MM-DD
	TypeCode       string `json:"BT-3"`  // 380 = commercial invoice
	Currency       string `json:"BT-5"`
	DueDate        string `json:"BT-9,omitempty"`
	BuyerReference string `json:"BT-10,omitempty"` // Leitweg-ID for XRechnung
	PaymentTerms   string `json:"BT-20,omitempty"`

	// Seller (BG-4)
	SellerName      string  `json:"BT-27"`
	SellerVATID     string  `json:"BT-31,omitempty"`
	SellerTaxNumber string  `json:"BT-32,omitempty"`
	SellerEmail     string  `json:"BT-34"`
	SellerStreet    string  `json:"BT-35"`
	SellerCity      string  `json:"BT-37"`
	SellerCountry   Country `json:"BT-40"`

	// Buyer (BG-7)
	BuyerName    string  `json:"BT-44"`
	BuyerEmail   string  `json:"BT-49,omitempty"`
	BuyerStreet  string  `json:"BT-50"`
	BuyerCity    string  `json:"BT-52"`
	BuyerCountry Country `json:"BT-55"`

	// Payment (BG-16)
	PaymentMeansCode   string `json:"BT-81"` // 58 = SEPA credit transfer
	PaymentAccountName string `json:"BT-83,omitempty"`
	PaymentIBAN        string `json:"BT-84,omitempty"`
	PaymentBIC         string `json:"BT-86,omitempty"`

	// Document totals (BG-22)
	LineNetTotal      decimal.Decimal `json:"BT-106"`
	TaxExclusiveTotal decimal.Decimal `json:"BT-109"`
	TaxTotal          decimal.Decimal `json:"BT-110"`
	TaxInclusiveTotal decimal.Decimal `json:"BT-112"`
	PayableAmount     decimal.Decimal `json:"BT-115"`

	VATBreakdown []VATBreakdown `json:"vatBreakdown"`
	Lines        []Line         `json:"lines"`
}

// VATBreakdown is one BG-23 group: taxable amount, tax amount, category and
// rate for one distinct category/rate pair. The flat tax-rate invoice model
// always yields exactly one entry.
type VATBreakdown struct {
	TaxableAmount decimal.Decimal `json:"BT-116"`
	TaxAmount     decimal.Decimal `json:"BT-117"`
	CategoryCode  string          `json:"BT-118"`
	RatePercent   decimal.Decimal `json:"BT-119"`
}

// Line is one BG-25 invoice line.
type Line struct {
	ID              string          `json:"BT-126"` // 1-based
	Quantity        decimal.Decimal `json:"BT-129"`
	UnitCode        string          `json:"BT-130"` // UN/ECE rec 20
	NetAmount       decimal.Decimal `json:"BT-131"`
	UnitPrice       decimal.Decimal `json:"BT-146"`
	VATCategoryCode string          `json:"BT-151"`
	VATRatePercent  decimal.Decimal `json:"BT-152"`
	Description     string          `json:"BT-153"`
}
