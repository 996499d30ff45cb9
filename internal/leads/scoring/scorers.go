// Package scoring implements the composite lead-quality scheme: independent
// field scorers whose clamped sum buckets a lead into High/Medium/Low/Very Low.
package scoring

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"recruit_portal_backend/internal/leads/geo"
)

// Per-field maxima. The unclamped sum is 115; the composite clamps to 100.
const (
	maxNameScore    = 40
	maxEmailScore   = 30
	maxPhoneScore   = 20
	maxRecencyScore = 10
	maxIntakeScore  = 20
)

// dominicanAreaCodes are the agency's priority market; an 11-digit NANP
// number in one of these codes earns the full phone score.
var dominicanAreaCodes = map[string]bool{"809": true, "829": true, "849": true}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)*\.[A-Za-z]{2,}$`)

// ScoreName rates how complete and plausible a prospect's name looks.
// The email local-part corroborates single-token names.
func ScoreName(name, email string) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}

	tokens := strings.Fields(name)
	score := 0

	switch {
	case len(tokens) >= 2:
		score += 28
	case len(tokens) == 1:
		score += 12
	}

	if countLetters(name) >= 6 {
		score += 6
	}

	// Capitalization: well-formed names arrive Title-Cased.
	if len(tokens) >= 2 {
		titled := 0
		for _, tok := range tokens {
			if isTitleCase(tok) {
				titled++
			}
		}
		if titled >= 2 {
			score += 4
		}
	} else if isTitleCase(tokens[0]) {
		score += 2
	}

	// A single token can still be a real person if the email agrees.
	if len(tokens) == 1 && email != "" {
		score += emailCorroboration(tokens[0], email)
	}

	if hasTripleRepeat(name) {
		score -= 4
	}
	if strings.ContainsFunc(name, unicode.IsDigit) {
		score -= 4
	}
	if isUniformCase(name) {
		score -= 2
	}

	return clampInt(score, 0, maxNameScore)
}

// ScoreEmail validates a conventional local@domain.tld address.
func ScoreEmail(email string) (int, bool) {
	email = strings.TrimSpace(email)
	if email == "" || !emailPattern.MatchString(email) {
		return 0, false
	}
	return maxEmailScore, true
}

// ScorePhone rates the phone field and reports the inferred country.
func ScorePhone(phone string) (score int, valid bool, country string) {
	digits := geo.CleanDigits(phone)

	if len(digits) == 11 && strings.HasPrefix(digits, "1") && dominicanAreaCodes[digits[1:4]] {
		return maxPhoneScore, true, "Dominican Republic"
	}
	if len(digits) >= 10 {
		return 15, true, geo.CountryForPhone(phone)
	}
	return 0, false, geo.CountryUnknown
}

// ScoreRecency rates how recently the lead was touched.
//
// TODO: the messaging dashboards do not yet write last-activity timestamps
// back to the lead store, so there is nothing to rate; every lead gets the
// midpoint until that backfill lands.
func ScoreRecency() int {
	return 5
}

// ScoreIntakeProximity rates how close the prospect's intended intake is.
// The program runs three intakes a year: February, May and October.
func ScoreIntakeProximity(intake string, now time.Time) int {
	month, year := parseIntake(intake)
	if month == 0 {
		return 0
	}

	if year == 0 {
		// No explicit year: assume the next occurrence of that month.
		year = now.Year()
		if month < int(now.Month()) {
			year++
		}
	}

	delta := (year-now.Year())*12 + month - int(now.Month())
	switch {
	case delta < -2:
		return 0
	case delta <= 0:
		// Recently passed intakes still count; late enrollments happen.
		return 15
	case delta <= 2:
		return 20
	case delta <= 4:
		return 15
	case delta <= 6:
		return 10
	case delta <= 9:
		return 5
	default:
		return 0
	}
}

var (
	yearMonthPattern = regexp.MustCompile(`(\d{4})\s*-\s*(\d{1,2})`)
	monthYearPattern = regexp.MustCompile(`(\d{1,2})\s*-\s*(\d{4})`)
	yearPattern      = regexp.MustCompile(`\b(20\d{2})\b`)
)

var intakeMonths = []struct {
	keyword string
	month   int
}{
	{"feb", 2},
	{"may", 5},
	{"oct", 10},
}

// parseIntake extracts an intake month and optional year from free text.
// Returns month 0 when nothing parses.
func parseIntake(text string) (month, year int) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, 0
	}

	for _, m := range intakeMonths {
		if strings.Contains(text, m.keyword) {
			month = m.month
			break
		}
	}

	if month == 0 {
		if m := yearMonthPattern.FindStringSubmatch(text); m != nil {
			year = atoi(m[1])
			month = atoi(m[2])
		} else if m := monthYearPattern.FindStringSubmatch(text); m != nil {
			month = atoi(m[1])
			year = atoi(m[2])
		}
		if month < 1 || month > 12 {
			return 0, 0
		}
	}

	if year == 0 {
		if m := yearPattern.FindStringSubmatch(text); m != nil {
			year = atoi(m[1])
		}
	}

	return month, year
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func emailCorroboration(token, email string) int {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return 0
	}
	local := strings.ToLower(email[:at])
	nameLetters := lettersOnly(strings.ToLower(token))

	if lettersOnly(local) == nameLetters && nameLetters != "" {
		return 10
	}

	segments := strings.FieldsFunc(local, func(r rune) bool { return r == '.' || r == '_' })
	alphabetic := 0
	for _, seg := range segments {
		if seg != "" && seg == lettersOnly(seg) {
			alphabetic++
		}
	}
	if alphabetic >= 2 {
		return 6
	}
	return 0
}

func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

func isTitleCase(token string) bool {
	runes := []rune(token)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func hasTripleRepeat(s string) bool {
	runes := []rune(s)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return true
		}
	}
	return false
}

// isUniformCase reports whether every letter shares one case. Mixed-case
// names look human; all-caps and all-lower look pasted or auto-filled.
func isUniformCase(s string) bool {
	hasUpper, hasLower := false, false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		} else {
			hasLower = true
		}
	}
	return (hasUpper || hasLower) && hasUpper != hasLower
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
