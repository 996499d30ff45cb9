// Package geo infers a prospect's country from a raw phone string using
// static NANP area-code and international calling-code tables. Lookups are
// total: any input, including empty, resolves to a country name or "Unknown".
package geo

import "strings"

// CountryUnknown is returned when no table matches the number.
const CountryUnknown = "Unknown"

// CleanDigits strips everything but digits and removes leading zeros
// (international "00" dialing prefixes and trunk zeros).
func CleanDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "0")
}

// CountryForPhone maps a raw phone string to a country name.
//
// NANP numbers ("1" prefix) resolve via the area-code table; an unmatched
// 11-digit NANP number defaults to USA. Anything else tries calling-code
// prefixes longest-first. No match at any stage yields CountryUnknown.
func CountryForPhone(raw string) string {
	digits := CleanDigits(raw)
	if digits == "" {
		return CountryUnknown
	}

	if strings.HasPrefix(digits, "1") && len(digits) >= 4 {
		if country, ok := nanpAreaCodes[digits[1:4]]; ok {
			return country
		}
		if len(digits) == 11 {
			return "USA"
		}
		return CountryUnknown
	}

	for _, width := range []int{3, 2, 1} {
		if len(digits) < width {
			continue
		}
		if country, ok := callingCodes[digits[:width]]; ok {
			return country
		}
	}

	return CountryUnknown
}
