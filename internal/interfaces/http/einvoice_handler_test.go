package http_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/invoicr/invoicr/internal/application/dto"
	"github.com/invoicr/invoicr/internal/application/generator"
	"github.com/invoicr/invoicr/internal/domain/entity"
	"github.com/invoicr/invoicr/internal/infrastructure/docgen"
	"github.com/invoicr/invoicr/internal/infrastructure/storage"
	apphttp "github.com/invoicr/invoicr/internal/interfaces/http"
	"github.com/invoicr/invoicr/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp wires a full Fiber app against the real generation stack, with
// auth disabled and documents saved under a per-test temp dir.
func buildTestApp(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	svc := generator.NewService(docgen.NewService(), storage.NewFileStore(), log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Generator: svc,
		OutputDir: t.TempDir(),
		JWTSecret: jwtSecret,
		Log:       log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func sampleContext() entity.InvoiceContext {
	return entity.InvoiceContext{
		Provider: entity.Provider{
			Name:        "Musterfirma GmbH",
			Address:     entity.Address{Street: "Beispielstr. 12", City: "10115 Berlin"},
			Email:       "billing@musterfirma.de",
			VATID:       "DE123456789",
			CountryCode: "DE",
		},
		Client: entity.Client{
			Name:        "Kunde AG",
			Address:     entity.Address{Street: "Kundenweg 3", City: "80331 München"},
			Email:       &entity.EmailConfig{To: []string{"invoices@kunde.de"}},
			CountryCode: "DE",
			EInvoice:    &entity.EInvoiceConfig{RoutingID: "04-4711-22"},
		},
		Translations:  entity.Translations{FilePrefix: "Rechnung"},
		InvoiceNumber: "2024-042",
		InvoiceDate:   "15.12.2024",
		MonthName:     "Dezember 2024",
		Currency:      "EUR",
		Lang:          language.German,
		BankDetails:   entity.BankDetails{Name: "Musterbank", IBAN: "DE89 3704 0044 0532 0130 00"},
		LineItems: []entity.ResolvedLineItem{{
			Description: "Beratung",
			Quantity:    decimal.NewFromInt(160),
			Rate:        decimal.NewFromInt(95),
			BillingType: entity.BillingHourly,
			Total:       decimal.NewFromInt(15200),
		}},
		Subtotal:    decimal.NewFromInt(15200),
		TaxAmount:   decimal.NewFromInt(2888),
		TotalAmount: decimal.NewFromInt(18088),
		TaxRate:     decimal.NewFromFloat(0.19),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/einvoice/formats and /countries
// ──────────────────────────────────────────────────────────────────────────────

func TestFormats_SingleCountry(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodGet, "/api/einvoice/formats?country=de", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.CountryFormatsResponse](t, resp)
	assert.Equal(t, "DE", body.Country, "lowercase query codes are normalized")
	assert.Equal(t, "Germany", body.CountryName)
	require.NotEmpty(t, body.Formats)
	assert.Equal(t, "xrechnung", string(body.Formats[0].Format))
}

func TestFormats_UnknownCountry404(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodGet, "/api/einvoice/formats?country=ZZ", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestFormats_TransactionPair(t *testing.T) {
	app := buildTestApp(t, "")

	resp := doJSON(t, app, http.MethodGet, "/api/einvoice/formats?providerCountry=DE&clientCountry=DE", nil)
	body := decodeBody[dto.TransactionFormatsResponse](t, resp)
	assert.True(t, body.CountriesMatch)
	assert.Equal(t, "DE", body.Country)
	assert.Equal(t, "Germany", body.CountryName)
	assert.NotEmpty(t, body.Formats)

	resp = doJSON(t, app, http.MethodGet, "/api/einvoice/formats?providerCountry=DE&clientCountry=US", nil)
	body = decodeBody[dto.TransactionFormatsResponse](t, resp)
	assert.False(t, body.CountriesMatch)
	assert.Empty(t, body.Country)
	assert.Empty(t, body.Formats, "cross-border pairs get an empty format list, not null")
}

func TestFormats_AllCountries(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodGet, "/api/einvoice/formats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[[]dto.CountryFormatsResponse](t, resp)
	assert.Greater(t, len(body), 50, "the registry spans roughly seventy countries")
}

func TestCountries_ListsCodeAndName(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodGet, "/api/einvoice/countries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[[]dto.CountryResponse](t, resp)
	found := false
	for _, c := range body {
		if c.Code == "DE" {
			found = true
			assert.Equal(t, "Germany", c.Name)
		}
	}
	assert.True(t, found, "Germany must be listed")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/einvoice/validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_ValidGermanContext(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/validate", dto.ValidateEInvoiceRequest{
		ProviderCountry: "DE",
		ClientCountry:   "DE",
		Context:         sampleContext(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.ValidateEInvoiceResponse](t, resp)
	assert.True(t, body.CanGenerate)
	assert.True(t, body.Valid, "errors: %v", body.Errors)
	assert.Equal(t, "xrechnung", body.Format)
}

func TestValidate_UnsupportedCountryShortCircuits(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/validate", dto.ValidateEInvoiceRequest{
		ProviderCountry: "DE",
		ClientCountry:   "ZZ",
		Context:         sampleContext(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.ValidateEInvoiceResponse](t, resp)
	assert.False(t, body.CanGenerate)
	assert.False(t, body.Valid)
	assert.Contains(t, body.Errors,
		"Provider and client must be in the same supported country for e-invoice generation")
}

func TestValidate_ReportsFormatRuleViolations(t *testing.T) {
	app := buildTestApp(t, "")
	ctx := sampleContext()
	ctx.Provider.VATID = ""

	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/validate", dto.ValidateEInvoiceRequest{
		ProviderCountry: "DE",
		ClientCountry:   "DE",
		Context:         ctx,
	})
	body := decodeBody[dto.ValidateEInvoiceResponse](t, resp)
	assert.True(t, body.CanGenerate)
	assert.False(t, body.Valid)
	assert.Contains(t, body.Errors, "Provider must have either VAT ID or Tax Number")
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/einvoice/generate
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_ReturnsDocument(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/generate", dto.GenerateEInvoiceRequest{
		ProviderCountry: "DE",
		ClientCountry:   "DE",
		Context:         sampleContext(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.GenerateEInvoiceResponse](t, resp)
	assert.True(t, body.Success)
	assert.Equal(t, "xrechnung", body.Format)
	assert.Equal(t, "Rechnung_2024-042_Dezember_2024_xrechnung.xml", body.Filename)
	assert.Empty(t, body.Path, "nothing is saved unless requested")

	data, err := base64.StdEncoding.DecodeString(body.Content)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<cbc:ID>2024-042</cbc:ID>")
}

func TestGenerate_SaveWritesToOutputDir(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/generate", dto.GenerateEInvoiceRequest{
		ProviderCountry: "DE",
		ClientCountry:   "DE",
		Save:            true,
		Context:         sampleContext(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.GenerateEInvoiceResponse](t, resp)
	require.NotEmpty(t, body.Path)
	assert.True(t, strings.HasSuffix(body.Path, body.Filename))
}

func TestGenerate_ValidationFailure422(t *testing.T) {
	app := buildTestApp(t, "")
	ctx := sampleContext()
	ctx.Provider.VATID = ""

	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/generate", dto.GenerateEInvoiceRequest{
		ProviderCountry: "DE",
		ClientCountry:   "DE",
		Context:         ctx,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody[dto.ValidateEInvoiceResponse](t, resp)
	assert.False(t, body.Valid)
	assert.Contains(t, body.Errors, "Provider VAT ID is required for XRechnung (BT-31)")
}

func TestGenerate_SkipValidationSucceeds(t *testing.T) {
	app := buildTestApp(t, "")
	ctx := sampleContext()
	ctx.Provider.VATID = ""

	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/generate", dto.GenerateEInvoiceRequest{
		ProviderCountry: "DE",
		ClientCountry:   "DE",
		SkipValidation:  true,
		Context:         ctx,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[dto.GenerateEInvoiceResponse](t, resp)
	assert.True(t, body.Success)
	assert.False(t, body.Validation.Valid, "the failing validation result is reported")
}

func TestGenerate_MissingInvoiceNumber400(t *testing.T) {
	app := buildTestApp(t, "")
	ctx := sampleContext()
	ctx.InvoiceNumber = ""

	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/generate", dto.GenerateEInvoiceRequest{
		ProviderCountry: "DE",
		ClientCountry:   "DE",
		Context:         ctx,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerate_CrossBorderUnsupportedPair400(t *testing.T) {
	app := buildTestApp(t, "")
	resp := doJSON(t, app, http.MethodPost, "/api/einvoice/generate", dto.GenerateEInvoiceRequest{
		ProviderCountry: "ZZ",
		ClientCountry:   "DE",
		Context:         sampleContext(),
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
