package einvoice

// Latin America has some of the most mature mandatory e-invoicing regimes.
var latinAmericaFormats = map[Country][]FormatDescriptor{
	CountryBR: {
		{Format: FormatNFe, Description: "NF-e (Nota Fiscal Eletronica, mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryMX: {
		{Format: FormatCFDI, Description: "CFDI 4.0 (Comprobante Fiscal Digital, mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryAR: {
		{Format: FormatFeAR, Description: "Factura Electronica AFIP (mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryCL: {
		{Format: FormatDTE, Description: "DTE (Documento Tributario Electronico, mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryCO: {
		{Format: FormatFeCO, Description: "Factura Electronica DIAN (mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryPE: {
		{Format: FormatFePE, Description: "Factura Electronica SUNAT (mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryEC: {
		{Format: FormatFeEC, Description: "Factura Electronica SRI (mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryCR: {
		{Format: FormatFeCR, Description: "Factura Electronica Hacienda (mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryUY: {
		{Format: FormatCFE, Description: "CFE (Comprobante Fiscal Electronico, mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryPA: {
		{Format: FormatFePA, Description: "Factura Electronica DGI (mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryGT: {
		{Format: FormatFEL, Description: "FEL (Factura Electronica en Linea, mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryDO: {
		{Format: FormatECF, Description: "e-CF (Comprobante Fiscal Electronico)", FileExtension: "xml", MIMEType: MIMEXML},
	},
	CountryBO: {
		{Format: FormatFeBO, Description: "Factura Electronica SIN (mandatory)", FileExtension: "xml", MIMEType: MIMEXML},
	},
}

var latinAmericaCountryNames = map[Country]string{
	CountryBR: "Brazil",
	CountryMX: "Mexico",
	CountryAR: "Argentina",
	CountryCL: "Chile",
	CountryCO: "Colombia",
	CountryPE: "Peru",
	CountryEC: "Ecuador",
	CountryCR: "Costa Rica",
	CountryUY: "Uruguay",
	CountryPA: "Panama",
	CountryGT: "Guatemala",
	CountryDO: "Dominican Republic",
	CountryBO: "Bolivia",
}
