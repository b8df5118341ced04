package einvoice

var northAmericaFormats = map[Country][]FormatDescriptor{
	CountryUS: {
		{Format: FormatUBL, Description: "UBL 2.1 (OASIS Universal Business Language)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryCA: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
}

var northAmericaCountryNames = map[Country]string{
	CountryUS: "United States",
	CountryCA: "Canada",
}
