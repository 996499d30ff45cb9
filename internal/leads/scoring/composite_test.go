package scoring

import (
	"testing"
	"time"

	"recruit_portal_backend/internal/leads/domain"
)

func TestCalculateBreakdownClampsAt100(t *testing.T) {
	now := time.Date(2025, time.December, 10, 9, 0, 0, 0, time.UTC)
	lead := domain.Lead{
		Name:   "Maria Garcia",
		Email:  "maria.garcia@example.com",
		Phone:  "18095551234",
		Intake: "February 2026",
	}

	b := CalculateBreakdown(lead, now)

	// 38 + 30 + 20 + 5 + 20 = 113 raw, clamped.
	if b.NameScore != 38 || b.EmailScore != 30 || b.PhoneScore != 20 || b.RecencyScore != 5 || b.IntakeScore != 20 {
		t.Fatalf("sub-scores = %+v", b)
	}
	if b.Total != 100 {
		t.Fatalf("total = %d, want clamp to 100", b.Total)
	}
	if b.Quality != domain.QualityHigh {
		t.Fatalf("quality = %q, want High", b.Quality)
	}
	if b.Country != "Dominican Republic" || !b.EmailValid || !b.PhoneValid {
		t.Fatalf("breakdown = %+v", b)
	}
}

func TestCalculateBreakdownEmptyLead(t *testing.T) {
	b := CalculateBreakdown(domain.Lead{}, time.Now())
	// Only the recency stub contributes.
	if b.Total != 5 {
		t.Fatalf("total = %d, want 5", b.Total)
	}
	if b.Quality != domain.QualityVeryLow {
		t.Fatalf("quality = %q, want Very Low", b.Quality)
	}
	if b.EmailValid || b.PhoneValid || b.Country != "Unknown" {
		t.Fatalf("breakdown = %+v", b)
	}
}

func TestQualityBucketBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  domain.QualityTier
	}{
		{100, domain.QualityHigh},
		{85, domain.QualityHigh},
		{84, domain.QualityMedium},
		{55, domain.QualityMedium},
		{54, domain.QualityLow},
		{35, domain.QualityLow},
		{34, domain.QualityVeryLow},
		{0, domain.QualityVeryLow},
	}
	for _, tc := range cases {
		if got := domain.QualityForScore(tc.score); got != tc.want {
			t.Fatalf("QualityForScore(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestStrategiesStayIndependent(t *testing.T) {
	lead := domain.Lead{Name: "Maria Garcia", Email: "maria@example.com"}
	in := Input{Lead: lead, Now: time.Now()}

	score, tier := Composite{}.Score(in)
	// 38 + 30 + 0 + 5 + 0 = 73.
	if score != 73 || tier != string(domain.QualityMedium) {
		t.Fatalf("composite = %d %q", score, tier)
	}
}
