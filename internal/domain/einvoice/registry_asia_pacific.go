package einvoice

var asiaPacificFormats = map[Country][]FormatDescriptor{
	CountryIN: {
		{Format: FormatGSTEInvoice, Description: "GST e-Invoice (mandatory for businesses > turnover threshold)", FileExtension: "json", MIMEType: MIMEJSON},
	},
	CountryID: {
		{Format: FormatEFaktur, Description: "e-Faktur (mandatory since 2015/2016)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryMY: {
		{Format: FormatMyInvois, Description: "MyInvois (mandatory rollout 2024-2025)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountrySG: {
		{Format: FormatPeppolSG, Description: "InvoiceNow/PEPPOL (IMDA network)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryAU: {
		{Format: FormatPeppolANZ, Description: "PEPPOL BIS A-NZ (mandatory B2G from May 2025)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryNZ: {
		{Format: FormatPeppolANZ, Description: "PEPPOL BIS A-NZ (mandatory B2G from May 2025)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryKR: {
		{Format: FormatETaxKR, Description: "e-Tax Invoice (NTS system, mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryJP: {
		{Format: FormatPeppolJP, Description: "PEPPOL BIS JP (Japan CIUS)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryTW: {
		{Format: FormatEGUI, Description: "e-GUI (Government Uniform Invoice)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryVN: {
		{Format: FormatVATVN, Description: "VAT e-Invoice (mandatory since July 2022)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryTH: {
		{Format: FormatETaxTH, Description: "e-Tax Invoice (RD system)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryPH: {
		{Format: FormatCASPH, Description: "CAS e-Invoicing (BIR system)", FileExtension: "xml", MIMEType: MIMEXML},
	},
}

var asiaPacificCountryNames = map[Country]string{
	CountryIN: "India",
	CountryID: "Indonesia",
	CountryMY: "Malaysia",
	CountrySG: "Singapore",
	CountryAU: "Australia",
	CountryNZ: "New Zealand",
	CountryKR: "South Korea",
	CountryJP: "Japan",
	CountryTW: "Taiwan",
	CountryVN: "Vietnam",
	CountryTH: "Thailand",
	CountryPH: "Philippines",
}
