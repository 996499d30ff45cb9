package notify

import (
	"strings"
	"testing"
	"time"

	"recruit_portal_backend/internal/leads/insights"
)

func TestDigestSubject(t *testing.T) {
	at := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	if got := digestSubject(at); got != "Recruitment digest for Jun 1, 2025" {
		t.Fatalf("subject = %q", got)
	}
}

func TestRenderDigest(t *testing.T) {
	summary := insights.Summary{
		TotalLeads:   42,
		ReadyCount:   7,
		ReadyPercent: 17,
		Insights:     []string{"Colombia converts best at 40% across 5 leads."},
		ByCountry: []insights.CountryMetrics{
			{Country: "Colombia", Total: 20, ConversionRate: 40},
			{Country: "Dominican Republic", Total: 15, ConversionRate: 33},
		},
		GeneratedAt: time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
	}

	body := renderDigest(summary)

	for _, want := range []string{
		"Leads in pipeline: 42",
		"Ready to proceed: 7 (17%)",
		"Colombia converts best",
		"Dominican Republic",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("digest missing %q:\n%s", want, body)
		}
	}
}
