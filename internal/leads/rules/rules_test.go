package rules

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/scoring"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func leadCreatedDaysAgo(days int) domain.Lead {
	return domain.Lead{
		ID:            uuid.New(),
		ContactStatus: domain.StatusNotContacted,
		CreatedAt:     testNow.AddDate(0, 0, -days),
	}
}

func TestEvaluateEmptyLeadScoresZeroCold(t *testing.T) {
	lead := leadCreatedDaysAgo(10)

	reg := DefaultRegistry()
	ctx := NewContext(lead, nil, nil, testNow)
	eval := reg.Evaluate(ctx, 0)

	if eval.Total != 0 {
		t.Fatalf("total = %d, want 0 (matched %v)", eval.Total, eval.Matched)
	}
	if eval.Tier != TierCold {
		t.Fatalf("tier = %q, want cold", eval.Tier)
	}
}

func TestEvaluateRespondedUrgentIsWarm(t *testing.T) {
	months := 2
	lead := leadCreatedDaysAgo(10)
	lead.ContactStatus = domain.StatusContacted
	lead.BarcelonaTimelineMonths = &months

	reg := DefaultRegistry()
	eval := reg.Evaluate(NewContext(lead, nil, nil, testNow), 0)

	// responded(20) + urgent_timeline(25) and nothing else.
	if eval.Total != 45 {
		t.Fatalf("total = %d, want 45 (matched %v)", eval.Total, eval.Matched)
	}
	if eval.Tier != TierWarm {
		t.Fatalf("tier = %q, want warm", eval.Tier)
	}
}

func TestEvaluateFullProfileCrossesHot(t *testing.T) {
	months := 1
	lead := leadCreatedDaysAgo(10)
	lead.ContactStatus = domain.StatusInterested
	lead.Name = "Maria Garcia"
	lead.Email = "maria.garcia@example.com"
	lead.Phone = "+34 612 345 678"
	lead.BarcelonaTimelineMonths = &months

	reg := DefaultRegistry()
	eval := reg.Evaluate(NewContext(lead, nil, nil, testNow), 0)

	// responded(20) + urgent(25) + valid_email(10) + valid_phone(10) + complete_name(5).
	if eval.Total != 70 {
		t.Fatalf("total = %d, want 70 (matched %v)", eval.Total, eval.Matched)
	}
	if eval.Tier != TierHot {
		t.Fatalf("tier = %q, want hot", eval.Tier)
	}
}

func TestEvaluateStoredScoreBlendCapped(t *testing.T) {
	lead := leadCreatedDaysAgo(10)

	reg := DefaultRegistry()
	eval := reg.Evaluate(NewContext(lead, nil, nil, testNow), 80)

	if eval.StoredBlend != 25 {
		t.Fatalf("blend = %d, want 25", eval.StoredBlend)
	}
	if eval.Total != 25 {
		t.Fatalf("total = %d, want 25", eval.Total)
	}
}

func TestEvaluateNeverNegative(t *testing.T) {
	lead := leadCreatedDaysAgo(45) // stale_uncontacted fires at -15

	reg := DefaultRegistry()
	eval := reg.Evaluate(NewContext(lead, nil, nil, testNow), 0)

	if eval.Total != 0 {
		t.Fatalf("total = %d, want clamp to 0", eval.Total)
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{70, TierHot},
		{69, TierWarm},
		{40, TierWarm},
		{39, TierCold},
		{0, TierCold},
	}
	for _, tc := range cases {
		if got := TierFor(tc.score); got != tc.want {
			t.Fatalf("TierFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestInboundMessageCountsAsResponse(t *testing.T) {
	lead := leadCreatedDaysAgo(10)
	msgs := []domain.MessageEvent{
		{ID: uuid.New(), LeadID: lead.ID, Direction: domain.DirectionInbound, SentAt: testNow},
	}

	ctx := NewContext(lead, nil, msgs, testNow)
	if !ctx.Responded {
		t.Fatal("expected inbound message to mark the lead as responded")
	}
}

func TestApplyOverrides(t *testing.T) {
	reg := DefaultRegistry()
	points := 50
	off := false
	err := ApplyOverrides(reg, map[string]Override{
		"responded":       {Points: &points},
		"urgent_timeline": {Active: &off},
	})
	if err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}

	months := 1
	lead := leadCreatedDaysAgo(10)
	lead.ContactStatus = domain.StatusContacted
	lead.BarcelonaTimelineMonths = &months

	eval := reg.Evaluate(NewContext(lead, nil, nil, testNow), 0)
	if eval.Total != 50 {
		t.Fatalf("total = %d, want 50 after overrides (matched %v)", eval.Total, eval.Matched)
	}
}

func TestApplyOverridesUnknownRule(t *testing.T) {
	reg := DefaultRegistry()
	if err := ApplyOverrides(reg, map[string]Override{"no_such_rule": {}}); err == nil {
		t.Fatal("expected error for unknown rule name")
	}
}

func TestRecommendationsOrdering(t *testing.T) {
	months := 2
	lead := leadCreatedDaysAgo(20)
	lead.BarcelonaTimelineMonths = &months

	ctx := NewContext(lead, nil, nil, testNow)
	eval := DefaultRegistry().Evaluate(ctx, 0)
	recs := Recommendations(ctx, eval)

	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3: %v", len(recs), recs)
	}
	// Phone fix first, then first-contact, then the timeline flag.
	if recs[0] == "" || recs[0][0] != 'P' {
		t.Fatalf("expected phone recommendation first, got %q", recs[0])
	}
}

func TestStrategyMatchesRegistryEvaluation(t *testing.T) {
	months := 2
	lead := leadCreatedDaysAgo(10)
	lead.ContactStatus = domain.StatusContacted
	lead.BarcelonaTimelineMonths = &months

	score, tier := Strategy{}.Score(scoring.Input{Lead: lead, Now: testNow})

	eval := DefaultRegistry().Evaluate(NewContext(lead, nil, nil, testNow), lead.LeadScore)
	if score != eval.Total || tier != eval.Tier {
		t.Fatalf("Strategy = %d/%q, registry = %d/%q", score, tier, eval.Total, eval.Tier)
	}
}
