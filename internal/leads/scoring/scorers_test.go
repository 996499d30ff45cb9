package scoring

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, time.December, 10, 9, 0, 0, 0, time.UTC)

func TestScoreNameFullName(t *testing.T) {
	// Two tokens (28) + length (6) + capitalization (4).
	if got := ScoreName("Maria Garcia", ""); got != 38 {
		t.Fatalf("ScoreName = %d, want 38", got)
	}
}

func TestScoreNameEmpty(t *testing.T) {
	if got := ScoreName("", ""); got != 0 {
		t.Fatalf("ScoreName empty = %d, want 0", got)
	}
	if got := ScoreName("   ", ""); got != 0 {
		t.Fatalf("ScoreName blank = %d, want 0", got)
	}
}

func TestScoreNameSingleTokenEmailCorroboration(t *testing.T) {
	// Token 12 + length 6 + title case 2 + exact local-part match 10.
	if got := ScoreName("Carolina", "carolina@gmail.com"); got != 30 {
		t.Fatalf("exact corroboration = %d, want 30", got)
	}
	// Structured local part (two alphabetic segments) earns the weaker bonus.
	if got := ScoreName("Carolina", "ana.perez@gmail.com"); got != 26 {
		t.Fatalf("structured corroboration = %d, want 26", got)
	}
}

func TestScoreNamePenalties(t *testing.T) {
	// Digits and uniform case drag a junk entry down.
	if got := ScoreName("test123", ""); got > 12 {
		t.Fatalf("junk name scored %d", got)
	}
	// Two tokens (28) + length (6) - triple repeat (4) - uniform case (2).
	if got := ScoreName("aaaa bbbb", ""); got != 28 {
		t.Fatalf("repeated-rune name = %d, want 28", got)
	}
	if got := ScoreName("", "x@y.com"); got != 0 {
		t.Fatalf("empty name with email = %d, want 0", got)
	}
}

func TestScoreEmail(t *testing.T) {
	cases := []struct {
		email string
		want  int
	}{
		{"maria@example.com", 30},
		{"maria.garcia+crm@sub.example.co", 30},
		{"", 0},
		{"not-an-email", 0},
		{"missing@tld", 0},
		{"@example.com", 0},
		{"spaces in@example.com", 0},
	}
	for _, tc := range cases {
		got, valid := ScoreEmail(tc.email)
		if got != tc.want {
			t.Fatalf("ScoreEmail(%q) = %d, want %d", tc.email, got, tc.want)
		}
		if valid != (tc.want == 30) {
			t.Fatalf("ScoreEmail(%q) valid = %v", tc.email, valid)
		}
	}
}

func TestScorePhoneDominicanFastPath(t *testing.T) {
	for _, phone := range []string{"18095551234", "+1 829 555 1234", "1-849-555-1234"} {
		score, valid, country := ScorePhone(phone)
		if score != 20 || !valid || country != "Dominican Republic" {
			t.Fatalf("ScorePhone(%q) = %d %v %q", phone, score, valid, country)
		}
	}
}

func TestScorePhoneInternational(t *testing.T) {
	score, valid, country := ScorePhone("+57 300 123 4567")
	if score != 15 || !valid || country != "Colombia" {
		t.Fatalf("got %d %v %q", score, valid, country)
	}
}

func TestScorePhoneTooShort(t *testing.T) {
	score, valid, country := ScorePhone("555-1234")
	if score != 0 || valid || country != "Unknown" {
		t.Fatalf("got %d %v %q", score, valid, country)
	}
}

func TestScoreIntakeProximityBuckets(t *testing.T) {
	// testNow is December 2025; February resolves to 2026, two months out.
	cases := []struct {
		intake string
		want   int
	}{
		{"February 2026", 20},
		{"feb 2026", 20},
		{"May 2026", 10},
		{"October 2026", 0},
		{"2026-02", 20},
		{"02-2026", 20},
		{"2026-06", 10},
		{"2027-02", 0},
		{"October 2025", 15}, // two months past, late enrollment window
		{"", 0},
		{"whenever", 0},
	}
	for _, tc := range cases {
		if got := ScoreIntakeProximity(tc.intake, testNow); got != tc.want {
			t.Fatalf("ScoreIntakeProximity(%q) = %d, want %d", tc.intake, got, tc.want)
		}
	}
}

func TestScoreIntakeNoYearRollsForward(t *testing.T) {
	// Plain "February" in December means the upcoming February.
	if got := ScoreIntakeProximity("February", testNow); got != 20 {
		t.Fatalf("got %d, want 20", got)
	}
}

func TestParseIntake(t *testing.T) {
	cases := []struct {
		text  string
		month int
		year  int
	}{
		{"February 2026", 2, 2026},
		{"starting feb", 2, 0},
		{"May intake", 5, 0},
		{"2026-10", 10, 2026},
		{"10-2026", 10, 2026},
		{"13-2026", 0, 0},
		{"garbage", 0, 0},
	}
	for _, tc := range cases {
		month, year := parseIntake(tc.text)
		if month != tc.month || year != tc.year {
			t.Fatalf("parseIntake(%q) = %d/%d, want %d/%d", tc.text, month, year, tc.month, tc.year)
		}
	}
}
