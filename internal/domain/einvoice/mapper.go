package einvoice

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/invoicr/invoicr/internal/domain/entity"
)

// VAT category codes (EN16931 / UNCL5305 subset used here).
const (
	VATCategoryStandard   = "S"
	VATCategoryExempt     = "E"
	VATCategoryNotSubject = "O"
)

// UN/ECE Recommendation 20 unit codes used on invoice lines.
const (
	UnitHour = "HUR"
	UnitDay  = "DAY"
	UnitOne  = "C62" // generic "unit"
)

// PaymentMeansSEPACredit is the only payment means this mapper emits (BT-81).
// A deliberate simplification: the invoicing tool always settles via SEPA
// credit transfer.
const PaymentMeansSEPACredit = "58"

// invoiceTypeCommercial is BT-3 for a commercial invoice (UNCL1001).
const invoiceTypeCommercial = "380"

var (
	hundred        = decimal.NewFromInt(100)
	addrPattern    = regexp.MustCompile(`<(.+)>`)
	invoiceNumBad  = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	monthWhitespace = regexp.MustCompile(`\s+`)
)

// UnitCode maps a billing type to its UN/ECE unit code. Unknown values fall
// back to the generic unit.
func UnitCode(billingType entity.BillingType) string {
	switch billingType {
	case entity.BillingHourly:
		return UnitHour
	case entity.BillingDaily:
		return UnitDay
	case entity.BillingFixed:
		return UnitOne
	default:
		return UnitOne
	}
}

// VATCategoryCode derives the VAT category from the flat tax rate: zero is
// exempt, positive is standard rate.
func VATCategoryCode(taxRate decimal.Decimal) string {
	if taxRate.IsZero() {
		return VATCategoryExempt
	}
	if taxRate.IsPositive() {
		return VATCategoryStandard
	}
	return VATCategoryNotSubject
}

// englishMonths maps the abbreviations used by the English invoice locale.
var englishMonths = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// genericDateLayouts are tried when the locale-specific parse fails.
var genericDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
}

// FormatDateISO rewrites a locale-formatted date string to ISO-8601
// YYYY-MM-DD. German dates are DD.MM.YYYY; English dates are "D MMM YYYY"
// (e.g. "15 Dec 2024"). Strings that fail the locale parse go through a
// generic parse attempt; as a last resort the input is returned unchanged —
// a visibly wrong value downstream beats a hard failure here, since callers
// may generate with validation skipped.
func FormatDateISO(dateStr string, lang language.Tag) string {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return ""
	}

	base, _ := lang.Base()
	switch base.String() {
	case "de":
		if parts := strings.Split(dateStr, "."); len(parts) == 3 {
			day, month, year := parts[0], parts[1], parts[2]
			return year + "-" + pad2(month) + "-" + pad2(day)
		}
	case "en":
		if parts := strings.Fields(dateStr); len(parts) == 3 {
			day, monthStr, year := parts[0], parts[1], parts[2]
			month, ok := englishMonths[monthStr]
			if !ok {
				month = "01"
			}
			return year + "-" + month + "-" + pad2(day)
		}
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return dateStr
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// IsISODate reports whether a mapped date landed in YYYY-MM-DD form. Callers
// use it to surface the lenient pass-through fallback of FormatDateISO.
func IsISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// MapInvoiceContext projects an invoice onto the EN16931 business-term
// schema for the given format and country pair. Pure and total: no I/O, no
// clock reads, never fails — completeness is the validator's concern.
func MapInvoiceContext(ctx *entity.InvoiceContext, format Format, providerCountry, clientCountry Country) *Document {
	vatCategory := VATCategoryCode(ctx.TaxRate)
	vatPercent := ctx.TaxRate.Mul(hundred)

	doc := &Document{
		InvoiceNumber:  ctx.InvoiceNumber,
		IssueDate:      FormatDateISO(ctx.InvoiceDate, ctx.Lang),
		TypeCode:       invoiceTypeCommercial,
		Currency:       ctx.Currency,
		BuyerReference: buyerReference(&ctx.Client),
		PaymentTerms:   ctx.Translations.PaymentTerms,

		SellerName:      ctx.Provider.Name,
		SellerVATID:     ctx.Provider.VATID,
		SellerTaxNumber: ctx.Provider.TaxNumber,
		SellerEmail:     ctx.Provider.Email,
		SellerStreet:    ctx.Provider.Address.Street,
		SellerCity:      ctx.Provider.Address.City,
		SellerCountry:   providerCountry,

		BuyerName:    ctx.Client.Name,
		BuyerEmail:   buyerEmail(&ctx.Client),
		BuyerStreet:  ctx.Client.Address.Street,
		BuyerCity:    ctx.Client.Address.City,
		BuyerCountry: clientCountry,

		PaymentMeansCode:   PaymentMeansSEPACredit,
		PaymentAccountName: ctx.BankDetails.Name,
		PaymentIBAN:        strings.ReplaceAll(ctx.BankDetails.IBAN, " ", ""),
		PaymentBIC:         ctx.BankDetails.BIC,

		LineNetTotal:      ctx.Subtotal,
		TaxExclusiveTotal: ctx.Subtotal,
		TaxTotal:          ctx.TaxAmount,
		TaxInclusiveTotal: ctx.TotalAmount,
		PayableAmount:     ctx.TotalAmount,

		VATBreakdown: []VATBreakdown{{
			TaxableAmount: ctx.Subtotal,
			TaxAmount:     ctx.TaxAmount,
			CategoryCode:  vatCategory,
			RatePercent:   vatPercent,
		}},
	}

	if ctx.DueDate != "" {
		doc.DueDate = FormatDateISO(ctx.DueDate, ctx.Lang)
	}

	doc.Lines = make([]Line, 0, len(ctx.LineItems))
	for i, item := range ctx.LineItems {
		doc.Lines = append(doc.Lines, Line{
			ID:              strconv.Itoa(i + 1),
			Quantity:        item.Quantity,
			UnitCode:        UnitCode(item.BillingType),
			NetAmount:       item.Total,
			UnitPrice:       item.Rate,
			VATCategoryCode: vatCategory,
			VATRatePercent:  vatPercent,
			Description:     item.Description,
		})
	}

	return doc
}

// buyerReference resolves BT-10 by priority: government routing id, then the
// explicit buyer reference, then the client's project reference.
func buyerReference(client *entity.Client) string {
	if client.EInvoice != nil {
		if client.EInvoice.RoutingID != "" {
			return client.EInvoice.RoutingID
		}
		if client.EInvoice.BuyerReference != "" {
			return client.EInvoice.BuyerReference
		}
	}
	return client.ProjectReference
}

// buyerEmail extracts the bare address from the first configured recipient,
// which may be stored as "Display Name <addr>".
func buyerEmail(client *entity.Client) string {
	if client.Email == nil || len(client.Email.To) == 0 {
		return ""
	}
	raw := client.Email.To[0]
	if m := addrPattern.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return strings.TrimSpace(raw)
}

// Filename computes the deterministic output filename:
// {filePrefix}_{invoiceNumber}_{month}_{format}.{ext}, with everything
// outside [a-zA-Z0-9-] in the invoice number replaced by underscores and
// whitespace in the month label collapsed to underscores.
func Filename(ctx *entity.InvoiceContext, format Format, fileExtension string) string {
	number := invoiceNumBad.ReplaceAllString(ctx.InvoiceNumber, "_")
	month := monthWhitespace.ReplaceAllString(ctx.MonthName, "_")
	return ctx.Translations.FilePrefix + "_" + number + "_" + month + "_" + string(format) + "." + fileExtension
}
