package docgen

import (
	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/invoicr/invoicr/internal/domain/einvoice"
)

// UBL 2.1 namespaces and the EN16931 customization identifier.
const (
	nsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	nsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	nsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	customizationEN16931 = "urn:cen.eu:en16931:2017"
)

// buildUBL renders a business-term document as a UBL 2.1 Invoice. All
// XML-bearing formats share this rendering; national profiles differ in
// which fields are mandatory (the validator's concern), not in element
// layout at this level.
func buildUBL(doc *einvoice.Document) ([]byte, error) {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	inv := x.CreateElement("Invoice")
	inv.CreateAttr("xmlns", nsInvoice)
	inv.CreateAttr("xmlns:cac", nsCac)
	inv.CreateAttr("xmlns:cbc", nsCbc)

	cbc(inv, "CustomizationID", customizationEN16931)
	cbc(inv, "ID", doc.InvoiceNumber)
	cbc(inv, "IssueDate", doc.IssueDate)
	if doc.DueDate != "" {
		cbc(inv, "DueDate", doc.DueDate)
	}
	cbc(inv, "InvoiceTypeCode", doc.TypeCode)
	cbc(inv, "DocumentCurrencyCode", doc.Currency)
	if doc.BuyerReference != "" {
		cbc(inv, "BuyerReference", doc.BuyerReference)
	}

	writeSupplierParty(inv, doc)
	writeCustomerParty(inv, doc)
	writePaymentMeans(inv, doc)
	if doc.PaymentTerms != "" {
		cbc(inv.CreateElement("cac:PaymentTerms"), "Note", doc.PaymentTerms)
	}
	writeTaxTotal(inv, doc)
	writeMonetaryTotal(inv, doc)
	for i := range doc.Lines {
		writeInvoiceLine(inv, doc, &doc.Lines[i])
	}

	x.Indent(2)
	return x.WriteToBytes()
}

func writeSupplierParty(inv *etree.Element, doc *einvoice.Document) {
	party := inv.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")

	endpoint := cbc(party, "EndpointID", doc.SellerEmail)
	endpoint.CreateAttr("schemeID", "EM")

	cbc(party.CreateElement("cac:PartyName"), "Name", doc.SellerName)

	addr := party.CreateElement("cac:PostalAddress")
	cbc(addr, "StreetName", doc.SellerStreet)
	cbc(addr, "CityName", doc.SellerCity)
	cbc(addr.CreateElement("cac:Country"), "IdentificationCode", string(doc.SellerCountry))

	if doc.SellerVATID != "" {
		scheme := party.CreateElement("cac:PartyTaxScheme")
		cbc(scheme, "CompanyID", doc.SellerVATID)
		cbc(scheme.CreateElement("cac:TaxScheme"), "ID", "VAT")
	}

	legal := party.CreateElement("cac:PartyLegalEntity")
	cbc(legal, "RegistrationName", doc.SellerName)
	if doc.SellerTaxNumber != "" {
		cbc(legal, "CompanyID", doc.SellerTaxNumber)
	}
}

func writeCustomerParty(inv *etree.Element, doc *einvoice.Document) {
	party := inv.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")

	if doc.BuyerEmail != "" {
		endpoint := cbc(party, "EndpointID", doc.BuyerEmail)
		endpoint.CreateAttr("schemeID", "EM")
	}

	cbc(party.CreateElement("cac:PartyName"), "Name", doc.BuyerName)

	addr := party.CreateElement("cac:PostalAddress")
	cbc(addr, "StreetName", doc.BuyerStreet)
	cbc(addr, "CityName", doc.BuyerCity)
	cbc(addr.CreateElement("cac:Country"), "IdentificationCode", string(doc.BuyerCountry))

	cbc(party.CreateElement("cac:PartyLegalEntity"), "RegistrationName", doc.BuyerName)
}

func writePaymentMeans(inv *etree.Element, doc *einvoice.Document) {
	// Payment instructions only make sense with an account to pay into.
	if doc.PaymentIBAN == "" {
		return
	}
	means := inv.CreateElement("cac:PaymentMeans")
	cbc(means, "PaymentMeansCode", doc.PaymentMeansCode)

	account := means.CreateElement("cac:PayeeFinancialAccount")
	cbc(account, "ID", doc.PaymentIBAN)
	if doc.PaymentAccountName != "" {
		cbc(account, "Name", doc.PaymentAccountName)
	}
	if doc.PaymentBIC != "" {
		cbc(account.CreateElement("cac:FinancialInstitutionBranch"), "ID", doc.PaymentBIC)
	}
}

func writeTaxTotal(inv *etree.Element, doc *einvoice.Document) {
	total := inv.CreateElement("cac:TaxTotal")
	cbcAmount(total, "TaxAmount", doc.TaxTotal, doc.Currency)

	for _, vat := range doc.VATBreakdown {
		sub := total.CreateElement("cac:TaxSubtotal")
		cbcAmount(sub, "TaxableAmount", vat.TaxableAmount, doc.Currency)
		cbcAmount(sub, "TaxAmount", vat.TaxAmount, doc.Currency)
		category := sub.CreateElement("cac:TaxCategory")
		cbc(category, "ID", vat.CategoryCode)
		cbc(category, "Percent", vat.RatePercent.String())
		cbc(category.CreateElement("cac:TaxScheme"), "ID", "VAT")
	}
}

func writeMonetaryTotal(inv *etree.Element, doc *einvoice.Document) {
	total := inv.CreateElement("cac:LegalMonetaryTotal")
	cbcAmount(total, "LineExtensionAmount", doc.LineNetTotal, doc.Currency)
	cbcAmount(total, "TaxExclusiveAmount", doc.TaxExclusiveTotal, doc.Currency)
	cbcAmount(total, "TaxInclusiveAmount", doc.TaxInclusiveTotal, doc.Currency)
	cbcAmount(total, "PayableAmount", doc.PayableAmount, doc.Currency)
}

func writeInvoiceLine(inv *etree.Element, doc *einvoice.Document, line *einvoice.Line) {
	el := inv.CreateElement("cac:InvoiceLine")
	cbc(el, "ID", line.ID)
	qty := cbc(el, "InvoicedQuantity", line.Quantity.String())
	qty.CreateAttr("unitCode", line.UnitCode)
	cbcAmount(el, "LineExtensionAmount", line.NetAmount, doc.Currency)

	item := el.CreateElement("cac:Item")
	cbc(item, "Name", line.Description)
	category := item.CreateElement("cac:ClassifiedTaxCategory")
	cbc(category, "ID", line.VATCategoryCode)
	cbc(category, "Percent", line.VATRatePercent.String())
	cbc(category.CreateElement("cac:TaxScheme"), "ID", "VAT")

	price := el.CreateElement("cac:Price")
	cbcAmount(price, "PriceAmount", line.UnitPrice, doc.Currency)
}

func cbc(parent *etree.Element, local, value string) *etree.Element {
	el := parent.CreateElement("cbc:" + local)
	el.SetText(value)
	return el
}

func cbcAmount(parent *etree.Element, local string, amount decimal.Decimal, currency string) {
	el := cbc(parent, local, amount.Round(2).StringFixed(2))
	el.CreateAttr("currencyID", currency)
}
