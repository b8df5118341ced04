package einvoice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for identifiers outside the closed set.
var ErrUnknownFormat = errors.New("unknown e-invoice format")

// Format identifies an e-invoice format profile. The set is closed: adding a
// format means adding a constant here, a registry entry, and an arm in the
// validator's format switch.
type Format string

// Europe
const (
	FormatXRechnung   Format = "xrechnung"   // Germany: UBL-based XML for B2G
	FormatZUGFeRD     Format = "zugferd"     // Germany/Switzerland/Austria: PDF/A-3 with embedded XML
	FormatCIUSRO      Format = "cius-ro"     // Romania: UBL with ANAF requirements
	FormatUBL         Format = "ubl"         // Generic: OASIS Universal Business Language
	FormatFacturX     Format = "factur-x"    // France: hybrid PDF with embedded XML
	FormatFatturaPA   Format = "fatturapa"   // Italy: FatturaPA XML for SDI
	FormatFacturae    Format = "facturae"    // Spain
	FormatPeppolBIS   Format = "peppol-bis"  // EU/global: PEPPOL BIS Billing 3.0
	FormatNLCIUS      Format = "nlcius"      // Netherlands
	FormatEHF         Format = "ehf"         // Norway
	FormatOIOUBL      Format = "oioubl"      // Denmark
	FormatFinvoice    Format = "finvoice"    // Finland
	FormatEbInterface Format = "ebinterface" // Austria
	FormatISDOC       Format = "isdoc"       // Czech Republic
	FormatKSeF        Format = "ksef"        // Poland
	FormatSEFaktura   Format = "sefaktura"   // Serbia
)

// Asia-Pacific
const (
	FormatGSTEInvoice Format = "gst-einvoice" // India
	FormatEFaktur     Format = "efaktur"      // Indonesia
	FormatMyInvois    Format = "myinvois"     // Malaysia
	FormatPeppolSG    Format = "peppol-sg"    // Singapore: InvoiceNow
	FormatPeppolANZ   Format = "peppol-anz"   // Australia/New Zealand
	FormatETaxKR      Format = "etax-kr"      // South Korea
	FormatPeppolJP    Format = "peppol-jp"    // Japan
	FormatEGUI        Format = "egui"         // Taiwan
	FormatVATVN       Format = "vat-vn"       // Vietnam
	FormatETaxTH      Format = "etax-th"      // Thailand
	FormatCASPH       Format = "cas-ph"       // Philippines
)

// Middle East
const (
	FormatFatoora    Format = "fatoora"     // Saudi Arabia: FATOORA/ZATCA
	FormatEFaturaTR  Format = "efatura-tr"  // Turkey
	FormatJoFotara   Format = "jofotara"    // Jordan
	FormatEReceiptEG Format = "ereceipt-eg" // Egypt
)

// Latin America
const (
	FormatNFe  Format = "nfe"   // Brazil: NF-e
	FormatCFDI Format = "cfdi"  // Mexico: CFDI 4.0
	FormatFeAR Format = "fe-ar" // Argentina: AFIP
	FormatDTE  Format = "dte"   // Chile
	FormatFeCO Format = "fe-co" // Colombia: DIAN
	FormatFePE Format = "fe-pe" // Peru: SUNAT
	FormatFeEC Format = "fe-ec" // Ecuador: SRI
	FormatFeCR Format = "fe-cr" // Costa Rica: Hacienda
	FormatCFE  Format = "cfe"   // Uruguay
	FormatFePA Format = "fe-pa" // Panama: DGI
	FormatFEL  Format = "fel"   // Guatemala
	FormatECF  Format = "ecf"   // Dominican Republic
	FormatFeBO Format = "fe-bo" // Bolivia: SIN
)

// Africa
const (
	FormatTIMS   Format = "tims"    // Kenya
	FormatEVATGH Format = "evat-gh" // Ghana
	FormatEFDTZ  Format = "efd-tz"  // Tanzania
	FormatEBM    Format = "ebm"     // Rwanda
)

// String implements fmt.Stringer.
func (f Format) String() string { return string(f) }

// knownFormats lists every Format constant for boundary validation.
var knownFormats = map[Format]bool{
	FormatXRechnung: true, FormatZUGFeRD: true, FormatCIUSRO: true,
	FormatUBL: true, FormatFacturX: true, FormatFatturaPA: true,
	FormatFacturae: true, FormatPeppolBIS: true, FormatNLCIUS: true,
	FormatEHF: true, FormatOIOUBL: true, FormatFinvoice: true,
	FormatEbInterface: true, FormatISDOC: true, FormatKSeF: true,
	FormatSEFaktura: true,
	FormatGSTEInvoice: true, FormatEFaktur: true, FormatMyInvois: true,
	FormatPeppolSG: true, FormatPeppolANZ: true, FormatETaxKR: true,
	FormatPeppolJP: true, FormatEGUI: true, FormatVATVN: true,
	FormatETaxTH: true, FormatCASPH: true,
	FormatFatoora: true, FormatEFaturaTR: true, FormatJoFotara: true,
	FormatEReceiptEG: true,
	FormatNFe: true, FormatCFDI: true, FormatFeAR: true, FormatDTE: true,
	FormatFeCO: true, FormatFePE: true, FormatFeEC: true, FormatFeCR: true,
	FormatCFE: true, FormatFePA: true, FormatFEL: true, FormatECF: true,
	FormatFeBO: true,
	FormatTIMS: true, FormatEVATGH: true, FormatEFDTZ: true, FormatEBM: true,
}

// ParseFormat validates a raw format identifier against the closed set.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	if !knownFormats[f] {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
	return f, nil
}

// FormatDescriptor describes one registry entry for a country. Descriptors are
// sourced only from the static registry and never constructed ad hoc.
type FormatDescriptor struct {
	Format        Format `json:"format"`
	Description   string `json:"description"`
	FileExtension string `json:"fileExtension"`
	MIMEType      string `json:"mimeType"`
}

// MIME types used by registry entries.
const (
	MIMEXML  = "application/xml"
	MIMEJSON = "application/json"
	MIMEPDF  = "application/pdf"
)
