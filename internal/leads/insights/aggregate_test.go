package insights

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func makeLead(country string, status domain.ContactStatus, score int) domain.Lead {
	return domain.Lead{
		ID:            uuid.New(),
		Name:          "Test Lead",
		Country:       country,
		ContactStatus: status,
		LeadScore:     score,
		CreatedAt:     testNow.AddDate(0, 0, -30),
	}
}

// cohort builds 10 leads: 5 Colombian (2 converted), 4 Dominican
// (2 converted), 1 Mexican.
func cohort() []domain.Lead {
	leads := []domain.Lead{
		makeLead("Colombia", domain.StatusConverted, 80),
		makeLead("Colombia", domain.StatusConverted, 75),
		makeLead("Colombia", domain.StatusInterested, 60),
		makeLead("Colombia", domain.StatusContacted, 50),
		makeLead("Colombia", domain.StatusNotContacted, 40),
		makeLead("Dominican Republic", domain.StatusConverted, 90),
		makeLead("Dominican Republic", domain.StatusConverted, 85),
		makeLead("Dominican Republic", domain.StatusContacted, 45),
		makeLead("Dominican Republic", domain.StatusNotContacted, 30),
		makeLead("Mexico", domain.StatusNotContacted, 20),
	}
	return leads
}

func findCountry(t *testing.T, metrics []CountryMetrics, name string) CountryMetrics {
	t.Helper()
	for _, m := range metrics {
		if m.Country == name {
			return m
		}
	}
	t.Fatalf("country %q missing from %v", name, metrics)
	return CountryMetrics{}
}

func TestByCountryConversionRates(t *testing.T) {
	metrics := ByCountry(cohort())

	co := findCountry(t, metrics, "Colombia")
	if co.Total != 5 || co.ConversionRate != 40 {
		t.Fatalf("Colombia = %+v, want total 5 conversion 40", co)
	}

	dr := findCountry(t, metrics, "Dominican Republic")
	if dr.Total != 4 || dr.ConversionRate != 50 {
		t.Fatalf("Dominican Republic = %+v, want total 4 conversion 50", dr)
	}
}

func TestByCountryStatusCountsSumToTotal(t *testing.T) {
	for _, m := range ByCountry(cohort()) {
		sum := 0
		for _, n := range m.StatusCounts {
			sum += n
		}
		if sum != m.Total {
			t.Fatalf("%s: status counts sum %d != total %d", m.Country, sum, m.Total)
		}
	}
}

func TestByCountryContactAndInterestRates(t *testing.T) {
	co := findCountry(t, ByCountry(cohort()), "Colombia")
	// 4 of 5 contacted; 3 of those 4 reached interested.
	if co.ContactRate != 80 {
		t.Fatalf("contact rate = %d, want 80", co.ContactRate)
	}
	if co.InterestRate != 75 {
		t.Fatalf("interest rate = %d, want 75", co.InterestRate)
	}
}

func TestByContactMethodDistinctLeads(t *testing.T) {
	leads := cohort()
	winner := leads[0] // converted
	loser := leads[4]  // not contacted

	entries := []domain.ContactHistoryEntry{
		{ID: uuid.New(), LeadID: winner.ID, ContactType: "whatsapp", ContactedAt: testNow},
		{ID: uuid.New(), LeadID: winner.ID, ContactType: "whatsapp", ContactedAt: testNow.Add(time.Hour)},
		{ID: uuid.New(), LeadID: winner.ID, ContactType: "whatsapp", ContactedAt: testNow.Add(2 * time.Hour)},
		{ID: uuid.New(), LeadID: loser.ID, ContactType: "whatsapp", ContactedAt: testNow},
	}

	metrics := ByContactMethod(entries, leads)
	if len(metrics) != 1 {
		t.Fatalf("got %d buckets, want 1", len(metrics))
	}
	m := metrics[0]
	if m.Attempts != 4 {
		t.Fatalf("attempts = %d, want 4", m.Attempts)
	}
	// 2 distinct leads touched, 1 succeeded.
	if m.Leads != 2 || m.SuccessRate != 50 {
		t.Fatalf("got leads %d rate %d, want 2 and 50", m.Leads, m.SuccessRate)
	}
}

func TestBySourceGroupsAndRates(t *testing.T) {
	ref := "Instagram"
	leads := cohort()
	leads[0].ReferralSource = &ref
	leads[1].ReferralSource = &ref

	metrics := BySource(leads)
	var insta *SourceMetrics
	for i := range metrics {
		if metrics[i].Source == "instagram" {
			insta = &metrics[i]
		}
	}
	if insta == nil {
		t.Fatalf("instagram bucket missing: %v", metrics)
	}
	if insta.Total != 2 || insta.ConversionRate != 100 {
		t.Fatalf("instagram = %+v, want total 2 conversion 100", *insta)
	}
}

func TestByIntakeDropsTinyUnspecifiedBucket(t *testing.T) {
	leads := cohort()
	for i := range leads {
		if i < 7 {
			leads[i].Intake = "February 2026"
		}
		// The remaining 3 leads have no intake; the unspecified bucket
		// holds <= 5 leads and must be dropped.
	}

	metrics := ByIntake(leads, nil)
	if len(metrics) != 1 {
		t.Fatalf("got %d buckets, want only the named intake: %v", len(metrics), metrics)
	}
	if metrics[0].Intake != "february 2026" || metrics[0].Total != 7 {
		t.Fatalf("bucket = %+v", metrics[0])
	}
}

func TestByIntakeKeepsLargeUnspecifiedBucket(t *testing.T) {
	leads := cohort() // all 10 without intake
	metrics := ByIntake(leads, nil)
	if len(metrics) != 1 || metrics[0].Intake != unspecifiedIntake {
		t.Fatalf("metrics = %v, want one unspecified bucket", metrics)
	}
	if metrics[0].Total != 10 {
		t.Fatalf("total = %d, want 10", metrics[0].Total)
	}
}

func TestPipelineStagesAndStuck(t *testing.T) {
	leads := cohort()
	snapshot := Pipeline(leads, nil, testNow)

	if snapshot.Total != 10 || snapshot.Converted != 4 || snapshot.WinRate != 40 {
		t.Fatalf("snapshot = total %d converted %d win %d", snapshot.Total, snapshot.Converted, snapshot.WinRate)
	}
	if len(snapshot.Stages) != len(domain.PipelineStages) {
		t.Fatalf("got %d stages", len(snapshot.Stages))
	}
	// Every active lead was created 30 days ago and never contacted since.
	if len(snapshot.Stuck) != 6 {
		t.Fatalf("stuck = %d, want the 6 non-converted leads", len(snapshot.Stuck))
	}
}

func TestPipelineUsesStoreCounts(t *testing.T) {
	// The store counts the whole book even when the lead list is truncated.
	counts := map[domain.ContactStatus]int{
		domain.StatusNotContacted: 50,
		domain.StatusContacted:    30,
		domain.StatusConverted:    20,
	}
	snapshot := Pipeline(nil, counts, testNow)

	if snapshot.Total != 100 || snapshot.Converted != 20 || snapshot.WinRate != 20 {
		t.Fatalf("snapshot = total %d converted %d win %d", snapshot.Total, snapshot.Converted, snapshot.WinRate)
	}
	for _, stage := range snapshot.Stages {
		if stage.Stage == string(domain.StatusNotContacted) && stage.Count != 50 {
			t.Fatalf("not_contacted count = %d, want 50", stage.Count)
		}
	}
}

func TestPerformanceBenchmarksAndTrend(t *testing.T) {
	leads := cohort()
	for i := range leads {
		leads[i].CreatedAt = testNow.AddDate(0, 0, -3)
	}
	summary := Performance(leads, PeriodWeek, testNow)

	if summary.Current.NewLeads != 10 {
		t.Fatalf("new leads = %d, want 10", summary.Current.NewLeads)
	}
	if summary.Previous.NewLeads != 0 {
		t.Fatalf("previous window should be empty, got %d", summary.Previous.NewLeads)
	}
	if summary.TrendDelta != summary.Current.ConversionRate {
		t.Fatalf("trend delta = %d, want %d", summary.TrendDelta, summary.Current.ConversionRate)
	}

	met := map[string]bool{}
	for _, b := range summary.Benchmarks {
		met[b.Metric] = b.Met
	}
	// Conversion 40% beats the 10% target; contact rate 70% exactly meets it.
	if !met["conversion_rate"] || !met["contact_rate"] {
		t.Fatalf("benchmarks = %+v", summary.Benchmarks)
	}
}

func TestPercentRounding(t *testing.T) {
	if got := percent(1, 3); got != 33 {
		t.Fatalf("percent(1,3) = %d", got)
	}
	if got := percent(2, 3); got != 67 {
		t.Fatalf("percent(2,3) = %d", got)
	}
	if got := percent(1, 0); got != 0 {
		t.Fatalf("percent(1,0) = %d", got)
	}
}
