// Package docgen turns business-term documents into bytes. XML-bearing
// formats (including the PDF-declared hybrid profiles, which currently ship
// their embedded XML directly) render as UBL 2.1; JSON-declared national
// clearance formats render the business-term document as JSON.
package docgen

import (
	"encoding/json"
	"fmt"

	"github.com/invoicr/invoicr/internal/domain/einvoice"
)

// Service implements generator.Serializer.
type Service struct{}

// NewService builds the document serializer.
func NewService() *Service {
	return &Service{}
}

// Serialize renders doc according to the descriptor's MIME type.
func (s *Service) Serialize(doc *einvoice.Document, descriptor einvoice.FormatDescriptor) ([]byte, error) {
	switch descriptor.MIMEType {
	case einvoice.MIMEJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal %s document: %w", descriptor.Format, err)
		}
		return data, nil
	case einvoice.MIMEXML, einvoice.MIMEPDF:
		// Hybrid PDF profiles (ZUGFeRD, Factur-X) embed EN16931 XML inside a
		// PDF/A-3 container; until PDF assembly lands they produce the XML
		// payload under the declared extension.
		data, err := buildUBL(doc)
		if err != nil {
			return nil, fmt.Errorf("build UBL for %s: %w", descriptor.Format, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported MIME type %q for format %s", descriptor.MIMEType, descriptor.Format)
	}
}
