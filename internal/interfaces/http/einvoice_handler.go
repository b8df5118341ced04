package http

import (
	"encoding/base64"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invoicr/invoicr/internal/application/dto"
	"github.com/invoicr/invoicr/internal/application/generator"
	"github.com/invoicr/invoicr/internal/domain/einvoice"
)

// crossBorderMessage explains the only reason the country pair itself can
// block generation.
const crossBorderMessage = "Provider and client must be in the same supported country for e-invoice generation"

// EInvoiceHandler serves format discovery, validation and generation.
type EInvoiceHandler struct {
	svc       *generator.Service
	outputDir string
}

// NewEInvoiceHandler builds the handler. outputDir is where save-requests
// write documents.
func NewEInvoiceHandler(svc *generator.Service, outputDir string) *EInvoiceHandler {
	return &EInvoiceHandler{svc: svc, outputDir: outputDir}
}

// Formats answers three query shapes:
//
//	GET /api/einvoice/formats                                   → all countries with their formats
//	GET /api/einvoice/formats?country=DE                        → one country
//	GET /api/einvoice/formats?providerCountry=DE&clientCountry=AT → formats for a transaction
func (h *EInvoiceHandler) Formats(c *fiber.Ctx) error {
	providerQ := c.Query("providerCountry")
	clientQ := c.Query("clientCountry")
	if providerQ != "" || clientQ != "" {
		provider, _ := einvoice.ParseCountry(providerQ)
		client, _ := einvoice.ParseCountry(clientQ)
		formats := einvoice.FormatsForTransaction(provider, client)
		if formats == nil {
			formats = []einvoice.FormatDescriptor{}
		}
		resp := dto.TransactionFormatsResponse{
			ProviderCountry: providerQ,
			ClientCountry:   clientQ,
			CountriesMatch:  provider != "" && provider == client,
			Formats:         formats,
		}
		if resp.CountriesMatch {
			resp.Country = string(provider)
			resp.CountryName = einvoice.CountryName(provider)
		}
		return c.JSON(resp)
	}

	if countryQ := c.Query("country"); countryQ != "" {
		country, err := einvoice.ParseCountry(countryQ)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_COUNTRY", Message: "unsupported country code: " + countryQ})
		}
		return c.JSON(dto.CountryFormatsResponse{
			Country:     string(country),
			CountryName: einvoice.CountryName(country),
			Formats:     einvoice.AvailableFormats(country),
		})
	}

	countries := einvoice.SupportedCountries()
	result := make([]dto.CountryFormatsResponse, 0, len(countries))
	for _, country := range countries {
		result = append(result, dto.CountryFormatsResponse{
			Country:     string(country),
			CountryName: einvoice.CountryName(country),
			Formats:     einvoice.AvailableFormats(country),
		})
	}
	return c.JSON(result)
}

// Countries lists every country with at least one registered format.
// GET /api/einvoice/countries
func (h *EInvoiceHandler) Countries(c *fiber.Ctx) error {
	countries := einvoice.SupportedCountries()
	result := make([]dto.CountryResponse, 0, len(countries))
	for _, country := range countries {
		result = append(result, dto.CountryResponse{
			Code: string(country),
			Name: einvoice.CountryName(country),
		})
	}
	return c.JSON(result)
}

// Validate checks an invoice context without generating anything.
// POST /api/einvoice/validate
func (h *EInvoiceHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateEInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	provider, _ := einvoice.ParseCountry(in.ProviderCountry)
	client, _ := einvoice.ParseCountry(in.ClientCountry)
	if provider == "" || client == "" || !einvoice.CanGenerate(provider, client) {
		return c.JSON(dto.ValidateEInvoiceResponse{
			Valid:       false,
			CanGenerate: false,
			Errors:      []string{crossBorderMessage},
			Warnings:    []string{},
		})
	}

	descriptor := einvoice.DefaultFormat(provider, einvoice.Format(in.Format))
	selected := einvoice.FormatUBL
	if descriptor != nil {
		selected = descriptor.Format
	}

	validation := einvoice.Validate(&in.Context, selected, provider, client)
	return c.JSON(dto.ValidateEInvoiceResponse{
		Valid:       validation.Valid,
		CanGenerate: true,
		Format:      string(selected),
		Errors:      validation.Errors,
		Warnings:    validation.Warnings,
	})
}

// Generate produces an e-invoice document and optionally saves it.
// POST /api/einvoice/generate
func (h *EInvoiceHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateEInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if in.Context.InvoiceNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "context.invoiceNumber is required"})
	}

	provider, _ := einvoice.ParseCountry(in.ProviderCountry)
	client, _ := einvoice.ParseCountry(in.ClientCountry)
	if provider == "" || client == "" || !einvoice.CanGenerate(provider, client) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: "E-invoice generation not available for this provider/client combination"})
	}

	result, err := h.svc.Generate(&in.Context, provider, client, generator.Options{
		Format:         einvoice.Format(in.Format),
		SkipValidation: in.SkipValidation,
	})
	if err != nil {
		if vErr, ok := generator.AsValidationFailed(err); ok {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidateEInvoiceResponse{
				Valid:       false,
				CanGenerate: true,
				Errors:      vErr.Validation.Errors,
				Warnings:    vErr.Validation.Warnings,
			})
		}
		if errors.Is(err, generator.ErrNoFormatAvailable) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FORMAT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	resp := dto.GenerateEInvoiceResponse{
		Success:    true,
		Format:     string(result.Format.Format),
		Filename:   result.Filename,
		MIMEType:   result.Format.MIMEType,
		Content:    base64.StdEncoding.EncodeToString(result.Data),
		Validation: result.Validation,
	}
	if in.Save {
		path, err := h.svc.Save(result, h.outputDir)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SAVE_FAILED", Message: err.Error()})
		}
		resp.Path = path
	}
	return c.JSON(resp)
}
