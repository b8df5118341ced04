package generator

import "github.com/invoicr/invoicr/internal/domain/einvoice"

// Serializer renders a business-term document to the wire representation of
// a format (UBL XML for XML-bearing formats, business-term JSON for
// JSON-MIME formats). Implemented by infrastructure/docgen.
type Serializer interface {
	Serialize(doc *einvoice.Document, descriptor einvoice.FormatDescriptor) ([]byte, error)
}

// FileStore persists a finished document. WriteFile must be atomic: the file
// is either fully written at path or not created at all. Implemented by
// infrastructure/storage.
type FileStore interface {
	WriteFile(path string, data []byte) error
}
