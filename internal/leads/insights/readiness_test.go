package insights

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
)

func boolPtr(v bool) *bool { return &v }

func assessment(leadID uuid.UUID, at time.Time, funds *bool, passport *bool) domain.ContactHistoryEntry {
	return domain.ContactHistoryEntry{
		ID:          uuid.New(),
		LeadID:      leadID,
		ContactType: "call",
		ContactedAt: at,
		Readiness: domain.Readiness{
			HasFunds:      funds,
			PassportValid: passport,
		},
	}
}

func TestReadinessRollupDropsUnassessedFields(t *testing.T) {
	leads := cohort()
	history := []domain.ContactHistoryEntry{
		assessment(leads[0].ID, testNow, boolPtr(true), nil),
		assessment(leads[1].ID, testNow, boolPtr(false), nil),
	}

	rollup := ReadinessRollup(leads, history)
	if len(rollup) != 1 {
		t.Fatalf("got %d fields, want only has_funds: %+v", len(rollup), rollup)
	}
	f := rollup[0]
	if f.Field != "has_funds" || f.Assessed != 2 || f.Positive != 1 || f.PositiveRate != 50 {
		t.Fatalf("rollup = %+v", f)
	}
}

func TestReadinessRollupUsesLatestAssessment(t *testing.T) {
	leads := cohort()
	// The later entry flips has_funds to true; only it may count.
	history := []domain.ContactHistoryEntry{
		assessment(leads[0].ID, testNow, boolPtr(false), nil),
		assessment(leads[0].ID, testNow.Add(time.Hour), boolPtr(true), nil),
	}

	rollup := ReadinessRollup(leads, history)
	if len(rollup) != 1 || rollup[0].Assessed != 1 || rollup[0].Positive != 1 {
		t.Fatalf("rollup = %+v", rollup)
	}
}

func TestReadinessDifferentialConversion(t *testing.T) {
	leads := cohort()
	converted := leads[0]   // StatusConverted
	uncontacted := leads[4] // StatusNotContacted

	history := []domain.ContactHistoryEntry{
		assessment(converted.ID, testNow, boolPtr(true), nil),
		assessment(uncontacted.ID, testNow, boolPtr(false), nil),
	}

	rollup := ReadinessRollup(leads, history)
	f := rollup[0]
	if f.ConversionWhenTrue != 100 || f.ConversionWhenFalse != 0 {
		t.Fatalf("differential = %+v", f)
	}
}

func TestBlockersThresholdAndOrdering(t *testing.T) {
	rollup := []FieldReadiness{
		{Field: "has_funds", Assessed: 10, PositiveRate: 30},
		{Field: "passport_valid", Assessed: 10, PositiveRate: 20},
		{Field: "english_level_ok", Assessed: 10, PositiveRate: 45},
		{Field: "family_support", Assessed: 10, PositiveRate: 45},
		{Field: "committed_to_intake", Assessed: 4, PositiveRate: 10}, // too few assessed
		{Field: "timeline_realistic", Assessed: 10, PositiveRate: 80}, // healthy
	}

	blockers := Blockers(rollup)
	if len(blockers) != 3 {
		t.Fatalf("got %d blockers: %+v", len(blockers), blockers)
	}
	if blockers[0].Field != "passport_valid" || blockers[1].Field != "has_funds" {
		t.Fatalf("ordering wrong: %+v", blockers)
	}
	// 45% tie breaks alphabetically.
	if blockers[2].Field != "english_level_ok" {
		t.Fatalf("tie-break wrong: %+v", blockers)
	}
}

func TestReadyToProceed(t *testing.T) {
	leads := cohort()
	ready := domain.Readiness{
		HasFunds:      boolPtr(true),
		PassportValid: boolPtr(true),
		FamilySupport: boolPtr(true),
	}
	notEnough := domain.Readiness{HasFunds: boolPtr(true)}
	oneNegative := domain.Readiness{
		HasFunds:      boolPtr(true),
		PassportValid: boolPtr(false),
		FamilySupport: boolPtr(true),
	}

	history := []domain.ContactHistoryEntry{
		{ID: uuid.New(), LeadID: leads[0].ID, ContactedAt: testNow, Readiness: ready},
		{ID: uuid.New(), LeadID: leads[1].ID, ContactedAt: testNow, Readiness: notEnough},
		{ID: uuid.New(), LeadID: leads[2].ID, ContactedAt: testNow, Readiness: oneNegative},
	}

	count, pct := ReadyToProceed(leads, history)
	// One of the three assessed leads is ready; the seven unassessed leads
	// stay out of the denominator.
	if count != 1 || pct != 33 {
		t.Fatalf("ready = %d (%d%%), want 1 (33%%)", count, pct)
	}
}

func TestBestMethodGatesOnAttempts(t *testing.T) {
	methods := []MethodMetrics{
		// High success rate but too few attempts to trust.
		{Key: "whatsapp", Attempts: 9, Leads: 9, SuccessRate: 90},
		// Enough attempts even though few distinct leads were touched.
		{Key: "call", Attempts: 12, Leads: 4, SuccessRate: 50},
	}

	best := bestMethod(methods)
	if best == nil || best.Key != "call" {
		t.Fatalf("best = %+v, want call", best)
	}

	if got := bestMethod(methods[:1]); got != nil {
		t.Fatalf("under-sampled method must not win: %+v", got)
	}
}

func TestGenerateInsightSentences(t *testing.T) {
	leads := cohort()
	countries := ByCountry(leads)
	sentences := Generate(leads, nil, countries, nil)

	if len(sentences) == 0 {
		t.Fatal("expected at least the best-country insight")
	}
	// Colombia has 5 leads (sample floor); DR has only 4 and must not win
	// despite its higher conversion rate.
	if want := "Colombia converts best at 40% across 5 leads."; sentences[0] != want {
		t.Fatalf("first insight = %q, want %q", sentences[0], want)
	}
}
