package einvoice

// FormatsForTransaction returns the formats offered for a provider/client
// pair. Formats are only auto-offered when both countries are present and
// equal; cross-border pairs get an empty list even when both sides support
// e-invoicing (see CanGenerate for the looser check). UIs use this to
// populate a format picker.
func FormatsForTransaction(providerCountry, clientCountry Country) []FormatDescriptor {
	if providerCountry == "" || clientCountry == "" {
		return nil
	}
	if providerCountry != clientCountry {
		return nil
	}
	return AvailableFormats(providerCountry)
}

// CanGenerate reports whether e-invoice generation is possible at all for a
// provider/client pair: both countries must individually have at least one
// registered format, but they need not match. Deliberately looser than
// FormatsForTransaction — an explicit cross-border attempt (PEPPOL-style) is
// allowed even though no same-country default exists. UIs use this to gate
// whether the generate action is shown.
func CanGenerate(providerCountry, clientCountry Country) bool {
	if providerCountry == "" || clientCountry == "" {
		return false
	}
	return len(AvailableFormats(providerCountry)) > 0 &&
		len(AvailableFormats(clientCountry)) > 0
}

// DefaultFormat resolves the descriptor to use for a country. When preferred
// is non-empty and registered for the country, that entry wins; otherwise the
// country's first registry entry is returned. Countries without formats yield
// nil.
func DefaultFormat(country Country, preferred Format) *FormatDescriptor {
	available := AvailableFormats(country)
	if len(available) == 0 {
		return nil
	}
	if preferred != "" {
		for i := range available {
			if available[i].Format == preferred {
				return &available[i]
			}
		}
	}
	return &available[0]
}

// IsValidForCountry reports whether a format is registered for a country.
func IsValidForCountry(format Format, country Country) bool {
	for _, d := range AvailableFormats(country) {
		if d.Format == format {
			return true
		}
	}
	return false
}

// FormatInfo returns descriptive metadata for a format: the first matching
// registry entry across all countries, scanned in sorted country order so the
// answer is deterministic. Metadata only — validity decisions go through
// IsValidForCountry.
func FormatInfo(format Format) *FormatDescriptor {
	for _, country := range SupportedCountries() {
		for _, d := range formatMap[country] {
			if d.Format == format {
				found := d
				return &found
			}
		}
	}
	return nil
}

// CountriesForFormat returns every country whose registry entry includes the
// format, sorted by code.
func CountriesForFormat(format Format) []Country {
	var countries []Country
	for _, country := range SupportedCountries() {
		if IsValidForCountry(format, country) {
			countries = append(countries, country)
		}
	}
	return countries
}

// CountryForFormat returns the primary country for a format (first supporting
// country in sorted order), or "" if no country supports it.
func CountryForFormat(format Format) Country {
	countries := CountriesForFormat(format)
	if len(countries) == 0 {
		return ""
	}
	return countries[0]
}
