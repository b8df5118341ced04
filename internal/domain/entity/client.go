package entity

// EmailConfig holds the configured recipients for invoice emails. The first
// To entry doubles as the buyer electronic address and may be stored in
// "Display Name <addr>" form.
type EmailConfig struct {
	To  []string `json:"to"`
	CC  []string `json:"cc,omitempty"`
	BCC []string `json:"bcc,omitempty"`
}

// EInvoiceConfig carries client e-invoice routing preferences.
type EInvoiceConfig struct {
	// RoutingID is a government routing identifier, e.g. Germany's Leitweg-ID
	// for B2G invoices (BT-10).
	RoutingID string `json:"routingId,omitempty"`
	// BuyerReference is a generic buyer reference (BT-10) for non-government
	// buyers.
	BuyerReference string `json:"buyerReference,omitempty"`
	// PreferredFormat is a raw format identifier; invalid values simply fall
	// back to the country default at generation time.
	PreferredFormat string `json:"preferredFormat,omitempty"`
}

// Client is the invoiced party (buyer).
type Client struct {
	Name             string          `json:"name"`
	Address          Address         `json:"address"`
	ProjectReference string          `json:"projectReference,omitempty"`
	Email            *EmailConfig    `json:"email,omitempty"`
	CountryCode      string          `json:"countryCode,omitempty"`
	EInvoice         *EInvoiceConfig `json:"eInvoice,omitempty"`
}
