package entity

// Address is a minimal postal address as stored in provider/client config.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// BankDetails carries the payment account used on invoices.
type BankDetails struct {
	Name string `json:"name"`
	IBAN string `json:"iban"`
	BIC  string `json:"bic"`
}

// Provider is the invoicing party (seller). CountryCode is the raw configured
// value; callers resolve it to a validated country at the boundary.
type Provider struct {
	Name        string      `json:"name"`
	Address     Address     `json:"address"`
	Phone       string      `json:"phone,omitempty"`
	Email       string      `json:"email"`
	Bank        BankDetails `json:"bank"`
	TaxNumber   string      `json:"taxNumber,omitempty"`
	VATID       string      `json:"vatId,omitempty"`
	CountryCode string      `json:"countryCode,omitempty"`
}
