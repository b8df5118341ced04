package einvoice

var middleEastFormats = map[Country][]FormatDescriptor{
	CountrySA: {
		{Format: FormatFatoora, Description: "FATOORA/ZATCA (mandatory for all, Phase 2)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryAE: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryIL: {
		{Format: FormatUBL, Description: "UBL-based e-Invoice", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryTR: {
		{Format: FormatEFaturaTR, Description: "e-Fatura (GIB system, mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryJO: {
		{Format: FormatJoFotara, Description: "JoFotara (ISTD system)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryEG: {
		{Format: FormatEReceiptEG, Description: "e-Receipt (ETA system)", FileExtension: "json", MIMEType: MIMEJSON},
	},
}

var middleEastCountryNames = map[Country]string{
	CountrySA: "Saudi Arabia",
	CountryAE: "United Arab Emirates",
	CountryIL: "Israel",
	CountryTR: "Turkey",
	CountryJO: "Jordan",
	CountryEG: "Egypt",
}
