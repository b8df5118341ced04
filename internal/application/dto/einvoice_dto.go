package dto

import (
	"github.com/invoicr/invoicr/internal/domain/einvoice"
	"github.com/invoicr/invoicr/internal/domain/entity"
)

// CountryFormatsResponse lists the e-invoice formats of one country.
type CountryFormatsResponse struct {
	Country     string                      `json:"country"`
	CountryName string                      `json:"countryName"`
	Formats     []einvoice.FormatDescriptor `json:"formats"`
}

// TransactionFormatsResponse answers "which formats work for this
// provider/client pair". Country and CountryName are only set when the two
// countries match, since cross-border pairs have no shared format.
type TransactionFormatsResponse struct {
	ProviderCountry string                      `json:"providerCountry"`
	ClientCountry   string                      `json:"clientCountry"`
	CountriesMatch  bool                        `json:"countriesMatch"`
	Country         string                      `json:"country,omitempty"`
	CountryName     string                      `json:"countryName,omitempty"`
	Formats         []einvoice.FormatDescriptor `json:"formats"`
}

// CountryResponse is one supported country.
type CountryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ValidateEInvoiceRequest asks whether an invoice context would produce a
// valid e-invoice for a country pair. Format is optional; empty means the
// country default.
type ValidateEInvoiceRequest struct {
	ProviderCountry string                `json:"providerCountry"`
	ClientCountry   string                `json:"clientCountry"`
	Format          string                `json:"format,omitempty"`
	Context         entity.InvoiceContext `json:"context"`
}

// ValidateEInvoiceResponse reports validation outcome. CanGenerate is false
// when the country pair rules out generation regardless of invoice content.
type ValidateEInvoiceResponse struct {
	Valid       bool     `json:"valid"`
	CanGenerate bool     `json:"canGenerate"`
	Format      string   `json:"format,omitempty"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
}

// GenerateEInvoiceRequest generates an e-invoice document from a full
// invoice context.
type GenerateEInvoiceRequest struct {
	ProviderCountry string                `json:"providerCountry"`
	ClientCountry   string                `json:"clientCountry"`
	Format          string                `json:"format,omitempty"`
	SkipValidation  bool                  `json:"skipValidation,omitempty"`
	// Save also writes the document to the server's configured output
	// directory; the resulting path is returned in Path.
	Save    bool                  `json:"save,omitempty"`
	Context entity.InvoiceContext `json:"context"`
}

// GenerateEInvoiceResponse carries the generated document (base64) plus
// metadata and the validation result that accompanied generation.
type GenerateEInvoiceResponse struct {
	Success    bool                      `json:"success"`
	Format     string                    `json:"format"`
	Filename   string                    `json:"fileName"`
	MIMEType   string                    `json:"mimeType"`
	Path       string                    `json:"path,omitempty"`
	Content    string                    `json:"content"` // base64
	Validation einvoice.ValidationResult `json:"validation"`
}
