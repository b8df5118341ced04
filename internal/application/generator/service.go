// Package generator orchestrates e-invoice generation: format selection →
// business-term mapping → validation → serialization → filename, plus the
// companion save operation. Everything except Save is side-effect free, so
// concurrent generations need no coordination.
package generator

import (
	"fmt"
	"path/filepath"

	"github.com/invoicr/invoicr/internal/domain/einvoice"
	"github.com/invoicr/invoicr/internal/domain/entity"
	"github.com/invoicr/invoicr/pkg/logger"
)

// Options tunes a single generation request.
type Options struct {
	// Format overrides the client's preferred format. Empty means "use the
	// client preference, else the country default".
	Format einvoice.Format
	// SkipValidation proceeds even when validation fails; the failing result
	// is surfaced unchanged in the returned Result.
	SkipValidation bool
}

// Result is a finished e-invoice. All-or-nothing: a failed generation never
// returns a partial Result.
type Result struct {
	Data       []byte
	Format     einvoice.FormatDescriptor
	Filename   string
	Validation einvoice.ValidationResult
}

// Service wires the pure domain core to the serializer and file store.
type Service struct {
	serializer Serializer
	store      FileStore
	log        *logger.Logger
}

// NewService builds the generation service.
func NewService(serializer Serializer, store FileStore, log *logger.Logger) *Service {
	return &Service{serializer: serializer, store: store, log: log}
}

// Generate produces an e-invoice for the given context and country pair.
//
// The effective format is opts.Format if set, else the client's configured
// preference, resolved against the provider country's registry entries; a
// preference not valid for the country falls back to the country default.
// Validation failures abort with *ValidationFailedError unless
// opts.SkipValidation is set, in which case the failing result rides along
// in the returned Result for the caller to inspect.
func (s *Service) Generate(ctx *entity.InvoiceContext, providerCountry, clientCountry einvoice.Country, opts Options) (*Result, error) {
	preferred := opts.Format
	if preferred == "" && ctx.Client.EInvoice != nil {
		// Client preference is raw config; an unknown identifier is simply
		// not found in the registry and the country default wins.
		preferred = einvoice.Format(ctx.Client.EInvoice.PreferredFormat)
	}

	descriptor := einvoice.DefaultFormat(providerCountry, preferred)
	if descriptor == nil {
		return nil, fmt.Errorf("%w for country %s", ErrNoFormatAvailable, providerCountry)
	}

	validation := einvoice.Validate(ctx, descriptor.Format, providerCountry, clientCountry)
	if !validation.Valid && !opts.SkipValidation {
		return nil, &ValidationFailedError{Validation: validation}
	}

	doc := einvoice.MapInvoiceContext(ctx, descriptor.Format, providerCountry, clientCountry)
	if !einvoice.IsISODate(doc.IssueDate) {
		s.log.Warn().
			Str("invoice", ctx.InvoiceNumber).
			Str("issueDate", doc.IssueDate).
			Msg("issue date could not be normalized to ISO-8601, passing through unchanged")
	}

	data, err := s.serializer.Serialize(doc, *descriptor)
	if err != nil {
		return nil, fmt.Errorf("serialize %s e-invoice: %w", descriptor.Format, err)
	}

	filename := einvoice.Filename(ctx, descriptor.Format, descriptor.FileExtension)

	s.log.Info().
		Str("invoice", ctx.InvoiceNumber).
		Str("format", string(descriptor.Format)).
		Str("filename", filename).
		Int("warnings", len(validation.Warnings)).
		Bool("valid", validation.Valid).
		Msg("e-invoice generated")

	return &Result{
		Data:       data,
		Format:     *descriptor,
		Filename:   filename,
		Validation: validation,
	}, nil
}

// Save writes the result under outputDir using the computed filename and
// returns the full path. The write is atomic (no partial file is ever
// visible); concurrent saves to the same path are a caller error and resolve
// last-writer-wins.
func (s *Service) Save(result *Result, outputDir string) (string, error) {
	path := filepath.Join(outputDir, result.Filename)
	if err := s.store.WriteFile(path, result.Data); err != nil {
		return "", fmt.Errorf("save e-invoice to %s: %w", path, err)
	}
	s.log.Info().Str("path", path).Int("bytes", len(result.Data)).Msg("e-invoice saved")
	return path, nil
}
