// Package einvoice is the electronic-invoice core: a static registry of
// country/format support, pure selector functions over it, the EN16931
// business-term mapper, and the two-tier validator. The package performs no
// I/O; registry tables are package-level, read-only, and safe for concurrent
// use.
package einvoice

import "sort"

// Region names used by CountriesByRegion, purely for presentation.
const (
	RegionEurope       = "Europe"
	RegionAsiaPacific  = "Asia-Pacific"
	RegionMiddleEast   = "Middle East"
	RegionLatinAmerica = "Latin America"
	RegionAfrica       = "Africa"
	RegionNorthAmerica = "North America"
)

// formatMap is the combined registry: country -> ordered format descriptors.
// The first descriptor per country is that country's default.
var formatMap = mergeRegions(
	europeFormats,
	asiaPacificFormats,
	middleEastFormats,
	latinAmericaFormats,
	africaFormats,
	northAmericaFormats,
)

// countryNames is the combined display-name table.
var countryNames = mergeNames(
	europeCountryNames,
	asiaPacificCountryNames,
	middleEastCountryNames,
	latinAmericaCountryNames,
	africaCountryNames,
	northAmericaCountryNames,
)

func mergeRegions(regions ...map[Country][]FormatDescriptor) map[Country][]FormatDescriptor {
	out := make(map[Country][]FormatDescriptor)
	for _, region := range regions {
		for country, formats := range region {
			out[country] = formats
		}
	}
	return out
}

func mergeNames(regions ...map[Country]string) map[Country]string {
	out := make(map[Country]string)
	for _, region := range regions {
		for country, name := range region {
			out[country] = name
		}
	}
	return out
}

// AvailableFormats returns the registered formats for a country, in registry
// order. Countries without an entry yield an empty slice, never an error.
func AvailableFormats(country Country) []FormatDescriptor {
	return formatMap[country]
}

// CountryName returns the display name for a country, falling back to the raw
// code if the name table has no entry.
func CountryName(country Country) string {
	if name, ok := countryNames[country]; ok {
		return name
	}
	return string(country)
}

// SupportedCountries returns every country with at least one registered
// format, sorted by code for stable output.
func SupportedCountries() []Country {
	countries := make([]Country, 0, len(formatMap))
	for country := range formatMap {
		countries = append(countries, country)
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i] < countries[j] })
	return countries
}

// AllFormats returns the distinct set of formats appearing anywhere in the
// registry, sorted by identifier. Full-table scan; the table is small and fixed.
func AllFormats() []Format {
	seen := make(map[Format]bool)
	for _, descriptors := range formatMap {
		for _, d := range descriptors {
			seen[d.Format] = true
		}
	}
	formats := make([]Format, 0, len(seen))
	for f := range seen {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// CountriesByRegion groups supported countries by geographic region for UI
// display. Country lists are sorted by code.
func CountriesByRegion() map[string][]Country {
	return map[string][]Country{
		RegionEurope:       sortedKeys(europeFormats),
		RegionAsiaPacific:  sortedKeys(asiaPacificFormats),
		RegionMiddleEast:   sortedKeys(middleEastFormats),
		RegionLatinAmerica: sortedKeys(latinAmericaFormats),
		RegionAfrica:       sortedKeys(africaFormats),
		RegionNorthAmerica: sortedKeys(northAmericaFormats),
	}
}

func sortedKeys(m map[Country][]FormatDescriptor) []Country {
	keys := make([]Country, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
