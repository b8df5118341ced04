package einvoice

// euFormats lists e-invoice formats for EU member states. Order is significant:
// the first entry is the country default.
var euFormats = map[Country][]FormatDescriptor{
	CountryDE: {
		{Format: FormatXRechnung, Description: "XRechnung (UBL-based XML, mandatory for B2G)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatZUGFeRD, Description: "ZUGFeRD (PDF/A-3 with embedded XML)", FileExtension: "pdf", MIMEType: MIMEPDF},
	},
	CountryRO: {
		{Format: FormatCIUSRO, Description: "CIUS-RO (UBL with ANAF requirements, mandatory B2B)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryFR: {
		{Format: FormatFacturX, Description: "Factur-X (PDF/A-3 with embedded XML)", FileExtension: "pdf", MIMEType: MIMEPDF},
		{Format: FormatUBL, Description: "UBL (for Chorus Pro)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryIT: {
		{Format: FormatFatturaPA, Description: "FatturaPA (XML for SDI, mandatory for all)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryES: {
		{Format: FormatFacturae, Description: "Facturae 3.2.2 (Spanish e-invoice format)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryPL: {
		{Format: FormatKSeF, Description: "KSeF (Krajowy System e-Faktur)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryBE: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatUBL, Description: "UBL 2.1 (Belgium e-FFF)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryNL: {
		{Format: FormatNLCIUS, Description: "NLCIUS (Dutch Core Invoice Usage Specification)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryAT: {
		{Format: FormatEbInterface, Description: "ebInterface 6.1 (Austrian e-invoice standard)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatZUGFeRD, Description: "ZUGFeRD (PDF/A-3 with embedded XML)", FileExtension: "pdf", MIMEType: MIMEPDF},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryPT: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0 (CIUS-PT)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountrySE: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0 (Svefaktura)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryNO: {
		{Format: FormatEHF, Description: "EHF (Elektronisk Handelsformat)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryDK: {
		{Format: FormatOIOUBL, Description: "OIOUBL (Danish public sector e-invoice)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryFI: {
		{Format: FormatFinvoice, Description: "Finvoice 3.0 (Finnish e-invoice standard)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryGR: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0 (myDATA compatible)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryHU: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0 (NAV Online compatible)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountrySI: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0 (eSlog compatible)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountrySK: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryCZ: {
		{Format: FormatISDOC, Description: "ISDOC (Information System Document)", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryLU: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryIE: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryLT: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryLV: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0 (mandatory B2G from 2025)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryEE: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0 (mandatory from July 2025)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryRS: {
		{Format: FormatSEFaktura, Description: "Serbian e-Faktura (mandatory B2B since 2023)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryHR: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryBG: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryMT: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryCY: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
}

// nonEUEuropeFormats covers European countries outside the EU.
var nonEUEuropeFormats = map[Country][]FormatDescriptor{
	CountryGB: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
		{Format: FormatUBL, Description: "UBL 2.1", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryCH: {
		{Format: FormatZUGFeRD, Description: "ZUGFeRD/Factur-X (PDF/A-3 with embedded XML)", FileExtension: "pdf", MIMEType: MIMEPDF},
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryIS: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
}

// europeFormats merges EU and non-EU Europe.
var europeFormats = mergeRegions(euFormats, nonEUEuropeFormats)

var europeCountryNames = map[Country]string{
	CountryDE: "Germany",
	CountryRO: "Romania",
	CountryFR: "France",
	CountryIT: "Italy",
	CountryES: "Spain",
	CountryPL: "Poland",
	CountryBE: "Belgium",
	CountryNL: "Netherlands",
	CountryAT: "Austria",
	CountryPT: "Portugal",
	CountrySE: "Sweden",
	CountryNO: "Norway",
	CountryDK: "Denmark",
	CountryFI: "Finland",
	CountryGR: "Greece",
	CountryHU: "Hungary",
	CountrySI: "Slovenia",
	CountrySK: "Slovakia",
	CountryCZ: "Czech Republic",
	CountryLU: "Luxembourg",
	CountryIE: "Ireland",
	CountryLT: "Lithuania",
	CountryLV: "Latvia",
	CountryEE: "Estonia",
	CountryRS: "Serbia",
	CountryHR: "Croatia",
	CountryBG: "Bulgaria",
	CountryMT: "Malta",
	CountryCY: "Cyprus",
	CountryGB: "United Kingdom",
	CountryCH: "Switzerland",
	CountryIS: "Iceland",
}
