package einvoice

import (
	"fmt"
	"regexp"

	"github.com/invoicr/invoicr/internal/domain/entity"
)

// ValidationResult collects hard errors and soft warnings from a validation
// pass. Valid is true iff Errors is empty; warnings never affect validity.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// routingIDPattern is the Leitweg-ID shape: XX-XXXX...XXX-XX.
var routingIDPattern = regexp.MustCompile(`^\d{2}-[A-Z0-9-]+-\d{2}$`)

// Validate checks an invoice context against the common rule set and the
// format-specific rules for the chosen format. It never fails for missing
// optional data and has no side effects; every violated rule is reported so
// a user can fix the configuration in one pass.
//
// The format switch is exhaustive over the closed Format set: a new Format
// constant needs an arm here even when the arm is intentionally empty.
func Validate(ctx *entity.InvoiceContext, format Format, providerCountry, clientCountry Country) ValidationResult {
	var errors, warnings []string

	validateCommon(ctx, &errors, &warnings)

	switch format {
	case FormatXRechnung:
		validateXRechnung(ctx, &errors, &warnings)
	case FormatZUGFeRD:
		validateZUGFeRD(ctx, &errors, &warnings)
	case FormatCIUSRO:
		validateCIUSRO(ctx, &errors, &warnings)
	case FormatUBL, FormatFacturX, FormatFatturaPA, FormatFacturae,
		FormatPeppolBIS, FormatNLCIUS, FormatEHF, FormatOIOUBL,
		FormatFinvoice, FormatEbInterface, FormatISDOC, FormatKSeF,
		FormatSEFaktura,
		FormatGSTEInvoice, FormatEFaktur, FormatMyInvois, FormatPeppolSG,
		FormatPeppolANZ, FormatETaxKR, FormatPeppolJP, FormatEGUI,
		FormatVATVN, FormatETaxTH, FormatCASPH,
		FormatFatoora, FormatEFaturaTR, FormatJoFotara, FormatEReceiptEG,
		FormatNFe, FormatCFDI, FormatFeAR, FormatDTE, FormatFeCO,
		FormatFePE, FormatFeEC, FormatFeCR, FormatCFE, FormatFePA,
		FormatFEL, FormatECF, FormatFeBO,
		FormatTIMS, FormatEVATGH, FormatEFDTZ, FormatEBM:
		// No rules beyond the common set.
	}

	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}

// validateCommon applies the format-independent minimum for EN16931-style
// e-invoices.
func validateCommon(ctx *entity.InvoiceContext, errors, warnings *[]string) {
	if ctx.Provider.VATID == "" && ctx.Provider.TaxNumber == "" {
		*errors = append(*errors, "Provider must have either VAT ID or Tax Number")
	}
	if ctx.Provider.Email == "" {
		*errors = append(*errors, "Provider email is required (BT-34: Seller electronic address)")
	}
	if ctx.Provider.Name == "" {
		*errors = append(*errors, "Provider name is required")
	}
	if ctx.Provider.Address.Street == "" {
		*errors = append(*errors, "Provider street address is required")
	}
	if ctx.Provider.Address.City == "" {
		*errors = append(*errors, "Provider city is required")
	}

	if ctx.Client.Name == "" {
		*errors = append(*errors, "Client name is required")
	}
	if ctx.Client.Address.Street == "" {
		*errors = append(*errors, "Client street address is required")
	}
	if ctx.Client.Address.City == "" {
		*errors = append(*errors, "Client city is required")
	}
	if ctx.Client.Email == nil || len(ctx.Client.Email.To) == 0 {
		*warnings = append(*warnings, "Client email missing - Buyer electronic address (BT-49) will be empty")
	}

	if ctx.InvoiceNumber == "" {
		*errors = append(*errors, "Invoice number is required (BT-1)")
	}
	if ctx.InvoiceDate == "" {
		*errors = append(*errors, "Invoice date is required (BT-2)")
	}
	if len(ctx.LineItems) == 0 {
		*errors = append(*errors, "At least one line item is required")
	}

	if ctx.BankDetails.IBAN == "" {
		*warnings = append(*warnings, "IBAN is recommended for payment instructions")
	}
}

// validateXRechnung enforces the German XRechnung profile. The routing id
// (Leitweg-ID) is only mandatory for government buyers, which cannot be told
// apart here, so its absence is a warning rather than an error.
func validateXRechnung(ctx *entity.InvoiceContext, errors, warnings *[]string) {
	cfg := ctx.Client.EInvoice
	if cfg == nil || (cfg.RoutingID == "" && cfg.BuyerReference == "") {
		*warnings = append(*warnings, "No Leitweg-ID or Buyer Reference set. Required for B2G invoices (BT-10)")
	}
	if cfg != nil && cfg.RoutingID != "" && !routingIDPattern.MatchString(cfg.RoutingID) {
		*warnings = append(*warnings, fmt.Sprintf("Leitweg-ID format may be invalid: %s. Expected format: XX-XXXXX-XX", cfg.RoutingID))
	}

	if ctx.Provider.VATID == "" {
		*errors = append(*errors, "Provider VAT ID is required for XRechnung (BT-31)")
	}
	// Seller electronic address is mandatory since XRechnung 3.0.1.
	if ctx.Provider.Email == "" {
		*errors = append(*errors, "Provider email is required for XRechnung (BT-34)")
	}
}

// validateZUGFeRD: ZUGFeRD is considerably more permissive than XRechnung.
func validateZUGFeRD(ctx *entity.InvoiceContext, errors, warnings *[]string) {
	if ctx.Provider.VATID == "" {
		*warnings = append(*warnings, "Provider VAT ID is recommended for ZUGFeRD")
	}
}

// validateCIUSRO enforces the Romanian ANAF profile, which keys everything on
// the seller's fiscal code (CUI).
func validateCIUSRO(ctx *entity.InvoiceContext, errors, warnings *[]string) {
	if ctx.Provider.TaxNumber == "" {
		*errors = append(*errors, "Provider Tax Number (CUI) is required for CIUS-RO")
	}
	if ctx.Client.EInvoice == nil || ctx.Client.EInvoice.BuyerReference == "" {
		*warnings = append(*warnings, "Buyer reference is recommended for CIUS-RO invoices")
	}
}

// HasRequiredFields is a quick pre-flight for callers that do not yet know
// which format will be used: it repeats the format-independent required-field
// check as a single boolean.
func HasRequiredFields(ctx *entity.InvoiceContext) bool {
	return ctx.Provider.Name != "" &&
		ctx.Provider.Email != "" &&
		ctx.Provider.Address.Street != "" &&
		ctx.Provider.Address.City != "" &&
		(ctx.Provider.VATID != "" || ctx.Provider.TaxNumber != "") &&
		ctx.Client.Name != "" &&
		ctx.Client.Address.Street != "" &&
		ctx.Client.Address.City != "" &&
		ctx.InvoiceNumber != "" &&
		ctx.InvoiceDate != "" &&
		len(ctx.LineItems) > 0
}
