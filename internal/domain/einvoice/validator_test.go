package einvoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicr/invoicr/internal/domain/einvoice"
)

// ──────────────────────────────────────────────────────────────────────────────
// Common rules
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_CompleteContextIsValid(t *testing.T) {
	ctx := buildGermanContext()
	result := einvoice.Validate(ctx, einvoice.FormatXRechnung, einvoice.CountryDE, einvoice.CountryDE)

	assert.True(t, result.Valid, "complete context must validate, got errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidate_MissingTaxIdentity(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Provider.VATID = ""
	ctx.Provider.TaxNumber = ""

	result := einvoice.Validate(ctx, einvoice.FormatUBL, einvoice.CountryBE, einvoice.CountryBE)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Provider must have either VAT ID or Tax Number")
}

func TestValidate_TaxNumberAloneSatisfiesCommonRule(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Provider.VATID = ""

	result := einvoice.Validate(ctx, einvoice.FormatUBL, einvoice.CountryBE, einvoice.CountryBE)
	assert.True(t, result.Valid, "tax number alone satisfies the common identity rule: %v", result.Errors)
}

func TestValidate_RequiredFieldErrors(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Provider.Email = ""
	ctx.Provider.Name = ""
	ctx.Provider.Address.Street = ""
	ctx.Provider.Address.City = ""
	ctx.Client.Name = ""
	ctx.Client.Address.Street = ""
	ctx.Client.Address.City = ""
	ctx.InvoiceNumber = ""
	ctx.InvoiceDate = ""
	ctx.LineItems = nil

	result := einvoice.Validate(ctx, einvoice.FormatUBL, einvoice.CountryBE, einvoice.CountryBE)
	require.False(t, result.Valid)

	expected := []string{
		"Provider email is required (BT-34: Seller electronic address)",
		"Provider name is required",
		"Provider street address is required",
		"Provider city is required",
		"Client name is required",
		"Client street address is required",
		"Client city is required",
		"Invoice number is required (BT-1)",
		"Invoice date is required (BT-2)",
		"At least one line item is required",
	}
	for _, msg := range expected {
		assert.Contains(t, result.Errors, msg)
	}
}

func TestValidate_SoftWarningsDoNotAffectValidity(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Client.Email = nil
	ctx.BankDetails.IBAN = ""

	result := einvoice.Validate(ctx, einvoice.FormatZUGFeRD, einvoice.CountryDE, einvoice.CountryDE)
	assert.True(t, result.Valid, "warnings alone must not invalidate: %v", result.Errors)
	assert.Contains(t, result.Warnings, "Client email missing - Buyer electronic address (BT-49) will be empty")
	assert.Contains(t, result.Warnings, "IBAN is recommended for payment instructions")
}

// Fixing a missing field must strictly shrink the error list, never grow it.
func TestValidate_FixingFieldShrinksErrors(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Provider.Email = ""
	ctx.InvoiceNumber = ""

	before := einvoice.Validate(ctx, einvoice.FormatUBL, einvoice.CountryBE, einvoice.CountryBE)
	ctx.InvoiceNumber = "2024-001"
	after := einvoice.Validate(ctx, einvoice.FormatUBL, einvoice.CountryBE, einvoice.CountryBE)

	assert.Less(t, len(after.Errors), len(before.Errors))
}

// ──────────────────────────────────────────────────────────────────────────────
// XRechnung
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_XRechnung_RequiresVATID(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Provider.VATID = ""

	result := einvoice.Validate(ctx, einvoice.FormatXRechnung, einvoice.CountryDE, einvoice.CountryDE)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Provider VAT ID is required for XRechnung (BT-31)")
}

func TestValidate_XRechnung_RequiresEmail(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Provider.Email = ""

	result := einvoice.Validate(ctx, einvoice.FormatXRechnung, einvoice.CountryDE, einvoice.CountryDE)
	assert.Contains(t, result.Errors, "Provider email is required for XRechnung (BT-34)")
}

func TestValidate_XRechnung_MissingRoutingWarns(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Client.EInvoice = nil

	result := einvoice.Validate(ctx, einvoice.FormatXRechnung, einvoice.CountryDE, einvoice.CountryDE)
	assert.True(t, result.Valid, "missing Leitweg-ID is a warning, not an error")
	assert.Contains(t, result.Warnings, "No Leitweg-ID or Buyer Reference set. Required for B2G invoices (BT-10)")
}

func TestValidate_XRechnung_LeitwegShape(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Client.EInvoice.RoutingID = "991-33333-33" // three leading digits, not two

	result := einvoice.Validate(ctx, einvoice.FormatXRechnung, einvoice.CountryDE, einvoice.CountryDE)
	assert.True(t, result.Valid, "a malformed Leitweg-ID stays a warning")
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "Leitweg-ID format may be invalid: 991-33333-33")
}

func TestValidate_XRechnung_WellFormedLeitwegAccepted(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Client.EInvoice.RoutingID = "04-306-001-22"

	result := einvoice.Validate(ctx, einvoice.FormatXRechnung, einvoice.CountryDE, einvoice.CountryDE)
	assert.Empty(t, result.Warnings, "well-formed Leitweg-ID produces no warnings: %v", result.Warnings)
}

// ──────────────────────────────────────────────────────────────────────────────
// ZUGFeRD and CIUS-RO
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_ZUGFeRD_MissingVATIDOnlyWarns(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Provider.VATID = ""

	result := einvoice.Validate(ctx, einvoice.FormatZUGFeRD, einvoice.CountryDE, einvoice.CountryDE)
	assert.True(t, result.Valid, "ZUGFeRD accepts a provider with only a tax number: %v", result.Errors)
	assert.Contains(t, result.Warnings, "Provider VAT ID is recommended for ZUGFeRD")
}

func TestValidate_CIUSRO_RequiresTaxNumber(t *testing.T) {
	ctx := buildGermanContext()
	ctx.Provider.TaxNumber = ""

	result := einvoice.Validate(ctx, einvoice.FormatCIUSRO, einvoice.CountryRO, einvoice.CountryRO)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, "Provider Tax Number (CUI) is required for CIUS-RO")
}

func TestValidate_FormatsWithoutExtraRulesUseCommonSetOnly(t *testing.T) {
	ctx := buildGermanContext()
	for _, format := range []einvoice.Format{
		einvoice.FormatUBL, einvoice.FormatPeppolBIS, einvoice.FormatFatturaPA,
		einvoice.FormatGSTEInvoice, einvoice.FormatCFDI, einvoice.FormatTIMS,
	} {
		result := einvoice.Validate(ctx, format, einvoice.CountryDE, einvoice.CountryDE)
		assert.True(t, result.Valid, "format %s should pass with a complete context: %v", format, result.Errors)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// HasRequiredFields
// ──────────────────────────────────────────────────────────────────────────────

func TestHasRequiredFields(t *testing.T) {
	ctx := buildGermanContext()
	assert.True(t, einvoice.HasRequiredFields(ctx))

	ctx.InvoiceNumber = ""
	assert.False(t, einvoice.HasRequiredFields(ctx))

	ctx = buildGermanContext()
	ctx.Provider.VATID = ""
	assert.True(t, einvoice.HasRequiredFields(ctx), "tax number alone is enough")
	ctx.Provider.TaxNumber = ""
	assert.False(t, einvoice.HasRequiredFields(ctx))
}
