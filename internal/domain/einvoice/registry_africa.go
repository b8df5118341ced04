package einvoice

var africaFormats = map[Country][]FormatDescriptor{
	CountryZA: {
		{Format: FormatPeppolBIS, Description: "PEPPOL BIS Billing 3.0", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryKE: {
		{Format: FormatTIMS, Description: "TIMS (Tax Invoice Management System, mandatory)", FileExtension: "json", MIMEType: MIMEJSON},
	},
	CountryNG: {
		{Format: FormatUBL, Description: "UBL-based e-Invoice", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryGH: {
		{Format: FormatEVATGH, Description: "e-VAT (mandatory for VAT-registered)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryTZ: {
		{Format: FormatEFDTZ, Description: "EFD (Electronic Fiscal Device, mandatory)", FileExtension: "json", MIMEType: MIMEJSON},
	},
	CountryRW: {
		{Format: FormatEBM, Description: "EBM (Electronic Billing Machine, mandatory)", FileExtension: "json", MIMEType: MIMEJSON},
	},
}

var africaCountryNames = map[Country]string{
	CountryZA: "South Africa",
	CountryKE: "Kenya",
	CountryNG: "Nigeria",
	CountryGH: "Ghana",
	CountryTZ: "Tanzania",
	CountryRW: "Rwanda",
}
