package geo

import "testing"

func TestCountryForPhone_EmptyAndGarbage(t *testing.T) {
	cases := []string{"", "   ", "abc", "---", "+", "0000"}
	for _, input := range cases {
		if got := CountryForPhone(input); got != CountryUnknown {
			t.Fatalf("CountryForPhone(%q) = %q, want %q", input, got, CountryUnknown)
		}
	}
}

func TestCountryForPhone_NANP(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"18091234567", "Dominican Republic"},
		{"1-829-555-0100", "Dominican Republic"},
		{"+1 (849) 555 0100", "Dominican Republic"},
		{"14165550100", "Canada"},
		{"12125550100", "USA"},
		{"18765550100", "Jamaica"},
		{"17875550100", "Puerto Rico"},
		// Unassigned area code but a full 11-digit NANP number: default USA.
		{"19995550100", "USA"},
		// Unassigned area code, short number: no fallback.
		{"1999555", CountryUnknown},
	}
	for _, tc := range cases {
		if got := CountryForPhone(tc.input); got != tc.want {
			t.Fatalf("CountryForPhone(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCountryForPhone_InternationalPrefixes(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"+34 612 345 678", "Spain"},
		{"0034612345678", "Spain"},
		{"5215512345678", "Mexico"},
		{"573001234567", "Colombia"},
		{"593991234567", "Ecuador"},
		{"442071234567", "United Kingdom"},
		{"8613912345678", "China"},
		{"61412345678", "Australia"},
		{"9715012345678", "United Arab Emirates"},
		{"79161234567", "Russia"},
	}
	for _, tc := range cases {
		if got := CountryForPhone(tc.input); got != tc.want {
			t.Fatalf("CountryForPhone(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestCountryForPhone_LongestPrefixWins(t *testing.T) {
	// 593 (Ecuador) must match before 59 would fail and before 5 (no entry).
	if got := CountryForPhone("59399999999"); got != "Ecuador" {
		t.Fatalf("expected Ecuador, got %q", got)
	}
	// 51 (Peru) is a two-digit match with no three-digit competitor.
	if got := CountryForPhone("51999999999"); got != "Peru" {
		t.Fatalf("expected Peru, got %q", got)
	}
}

func TestCleanDigits(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"+1 (809) 123-4567", "18091234567"},
		{"0034 612 345 678", "34612345678"},
		{"no digits", ""},
		{"000", ""},
	}
	for _, tc := range cases {
		if got := CleanDigits(tc.input); got != tc.want {
			t.Fatalf("CleanDigits(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
