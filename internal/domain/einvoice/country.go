package einvoice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCountry is returned by ParseCountry for codes outside the registry.
var ErrUnknownCountry = errors.New("unknown country code")

// Country is an ISO-3166 alpha-2 code restricted to the countries present in
// the format registry. Values are validated at the boundary via ParseCountry;
// inside the core a Country is assumed to be one of the constants below.
type Country string

// European Union
const (
	CountryDE Country = "DE" // Germany
	CountryRO Country = "RO" // Romania
	CountryFR Country = "FR" // France
	CountryIT Country = "IT" // Italy
	CountryES Country = "ES" // Spain
	CountryPL Country = "PL" // Poland
	CountryBE Country = "BE" // Belgium
	CountryNL Country = "NL" // Netherlands
	CountryAT Country = "AT" // Austria
	CountryPT Country = "PT" // Portugal
	CountrySE Country = "SE" // Sweden
	CountryNO Country = "NO" // Norway
	CountryDK Country = "DK" // Denmark
	CountryFI Country = "FI" // Finland
	CountryGR Country = "GR" // Greece
	CountryHU Country = "HU" // Hungary
	CountrySI Country = "SI" // Slovenia
	CountrySK Country = "SK" // Slovakia
	CountryCZ Country = "CZ" // Czech Republic
	CountryLU Country = "LU" // Luxembourg
	CountryIE Country = "IE" // Ireland
	CountryLT Country = "LT" // Lithuania
	CountryLV Country = "LV" // Latvia
	CountryEE Country = "EE" // Estonia
	CountryRS Country = "RS" // Serbia
	CountryHR Country = "HR" // Croatia
	CountryBG Country = "BG" // Bulgaria
	CountryMT Country = "MT" // Malta
	CountryCY Country = "CY" // Cyprus
)

// Europe outside the EU
const (
	CountryGB Country = "GB" // United Kingdom
	CountryCH Country = "CH" // Switzerland
	CountryIS Country = "IS" // Iceland
)

// Asia-Pacific
const (
	CountryIN Country = "IN" // India
	CountryID Country = "ID" // Indonesia
	CountryMY Country = "MY" // Malaysia
	CountrySG Country = "SG" // Singapore
	CountryAU Country = "AU" // Australia
	CountryNZ Country = "NZ" // New Zealand
	CountryKR Country = "KR" // South Korea
	CountryJP Country = "JP" // Japan
	CountryTW Country = "TW" // Taiwan
	CountryVN Country = "VN" // Vietnam
	CountryTH Country = "TH" // Thailand
	CountryPH Country = "PH" // Philippines
)

// Middle East
const (
	CountrySA Country = "SA" // Saudi Arabia
	CountryAE Country = "AE" // United Arab Emirates
	CountryIL Country = "IL" // Israel
	CountryTR Country = "TR" // Turkey
	CountryJO Country = "JO" // Jordan
	CountryEG Country = "EG" // Egypt
)

// Latin America
const (
	CountryBR Country = "BR" // Brazil
	CountryMX Country = "MX" // Mexico
	CountryAR Country = "AR" // Argentina
	CountryCL Country = "CL" // Chile
	CountryCO Country = "CO" // Colombia
	CountryPE Country = "PE" // Peru
	CountryEC Country = "EC" // Ecuador
	CountryCR Country = "CR" // Costa Rica
	CountryUY Country = "UY" // Uruguay
	CountryPA Country = "PA" // Panama
	CountryGT Country = "GT" // Guatemala
	CountryDO Country = "DO" // Dominican Republic
	CountryBO Country = "BO" // Bolivia
)

// Africa
const (
	CountryZA Country = "ZA" // South Africa
	CountryKE Country = "KE" // Kenya
	CountryNG Country = "NG" // Nigeria
	CountryGH Country = "GH" // Ghana
	CountryTZ Country = "TZ" // Tanzania
	CountryRW Country = "RW" // Rwanda
)

// North America
const (
	CountryUS Country = "US" // United States
	CountryCA Country = "CA" // Canada
)

// String implements fmt.Stringer.
func (c Country) String() string { return string(c) }

// ParseCountry validates a raw alpha-2 code against the registry. The code is
// upper-cased before lookup. Codes with no registry entry are rejected here so
// the core never sees a free-form string.
func ParseCountry(raw string) (Country, error) {
	code := Country(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := countryNames[code]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, raw)
	}
	return code, nil
}
