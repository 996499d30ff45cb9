// Package rules implements the rule-based lead tier scheme: a registry of
// named condition-to-points rules evaluated against a lead's current fields
// and activity, producing a hot/warm/cold tier. It runs independently of the
// composite field-quality scheme.
package rules

import (
	"time"

	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/scoring"
)

// Category groups rules for the listing endpoint.
type Category string

const (
	CategoryEngagement Category = "engagement"
	CategoryProfile    Category = "profile"
	CategoryBehavior   Category = "behavior"
	CategoryTiming     Category = "timing"
)

// Tier thresholds for the rule-based scheme.
const (
	TierHotThreshold  = 70
	TierWarmThreshold = 40

	TierHot  = "hot"
	TierWarm = "warm"
	TierCold = "cold"

	// Half of any previously stored score blends in, capped here.
	maxStoredBlend = 25

	staleAfterDays  = 30
	freshWithinDays = 7
)

// Context carries the derived per-lead facts rules match against.
type Context struct {
	Lead             domain.Lead
	Now              time.Time
	DaysSinceCreated int
	// DaysSinceContact is -1 when the lead has never been contacted.
	DaysSinceContact int
	// Interactions counts contact-history rows plus message events.
	Interactions int
	// Responded is true when at least one inbound message exists or the
	// lead has moved past not_contacted.
	Responded bool
}

// NewContext derives a rule Context from raw collections.
func NewContext(lead domain.Lead, history []domain.ContactHistoryEntry, messages []domain.MessageEvent, now time.Time) Context {
	responded := lead.ContactStatus != domain.StatusNotContacted && lead.ContactStatus.Valid()
	inbound := 0
	for _, m := range messages {
		if m.LeadID != lead.ID {
			continue
		}
		if m.Direction == domain.DirectionInbound {
			inbound++
		}
	}
	if inbound > 0 {
		responded = true
	}

	contacts := 0
	for _, h := range history {
		if h.LeadID == lead.ID {
			contacts++
		}
	}
	messagesForLead := 0
	for _, m := range messages {
		if m.LeadID == lead.ID {
			messagesForLead++
		}
	}

	return Context{
		Lead:             lead,
		Now:              now,
		DaysSinceCreated: lead.DaysSinceCreated(now),
		DaysSinceContact: lead.DaysSinceContact(now),
		Interactions:     contacts + messagesForLead,
		Responded:        responded,
	}
}

// Rule is a named condition worth a fixed number of points when it matches.
type Rule struct {
	Name        string
	Category    Category
	Points      int
	Description string
	Active      bool
	When        func(Context) bool
}

// Registry holds the active rule set.
type Registry struct {
	rules []Rule
}

// DefaultRegistry builds the standard eleven-rule set.
func DefaultRegistry() *Registry {
	return &Registry{rules: []Rule{
		{
			Name:        "responded",
			Category:    CategoryEngagement,
			Points:      20,
			Description: "Lead has replied or been reached at least once",
			Active:      true,
			When:        func(c Context) bool { return c.Responded },
		},
		{
			Name:        "multi_interaction",
			Category:    CategoryEngagement,
			Points:      15,
			Description: "Three or more contacts and messages on record",
			Active:      true,
			When:        func(c Context) bool { return c.Interactions >= 3 },
		},
		{
			Name:        "recent_activity",
			Category:    CategoryEngagement,
			Points:      10,
			Description: "Contacted within the last week",
			Active:      true,
			When: func(c Context) bool {
				return c.DaysSinceContact >= 0 && c.DaysSinceContact <= freshWithinDays
			},
		},
		{
			Name:        "valid_email",
			Category:    CategoryProfile,
			Points:      10,
			Description: "Email address passes validation",
			Active:      true,
			When: func(c Context) bool {
				_, valid := scoring.ScoreEmail(c.Lead.Email)
				return valid
			},
		},
		{
			Name:        "valid_phone",
			Category:    CategoryProfile,
			Points:      10,
			Description: "Phone number resolves to a callable number",
			Active:      true,
			When: func(c Context) bool {
				_, valid, _ := scoring.ScorePhone(c.Lead.Phone)
				return valid
			},
		},
		{
			Name:        "complete_name",
			Category:    CategoryProfile,
			Points:      5,
			Description: "Full first and last name on file",
			Active:      true,
			When: func(c Context) bool { return scoring.ScoreName(c.Lead.Name, c.Lead.Email) >= 28 },
		},
		{
			Name:        "urgent_timeline",
			Category:    CategoryBehavior,
			Points:      25,
			Description: "Wants to start within three months",
			Active:      true,
			When: func(c Context) bool {
				return c.Lead.BarcelonaTimelineMonths != nil && *c.Lead.BarcelonaTimelineMonths <= 3
			},
		},
		{
			Name:        "near_term_intake",
			Category:    CategoryBehavior,
			Points:      10,
			Description: "Named intake lands within the next four months",
			Active:      true,
			When: func(c Context) bool {
				return scoring.ScoreIntakeProximity(c.Lead.Intake, c.Now) >= 15
			},
		},
		{
			Name:        "referral",
			Category:    CategoryBehavior,
			Points:      10,
			Description: "Arrived through a referral",
			Active:      true,
			When: func(c Context) bool {
				if c.Lead.ContactStatus == domain.StatusReferral {
					return true
				}
				return c.Lead.ReferralSource != nil && *c.Lead.ReferralSource != ""
			},
		},
		{
			Name:        "fresh_lead",
			Category:    CategoryTiming,
			Points:      10,
			Description: "Created within the last week",
			Active:      true,
			When:        func(c Context) bool { return c.DaysSinceCreated <= freshWithinDays },
		},
		{
			Name:        "stale_uncontacted",
			Category:    CategoryTiming,
			Points:      -15,
			Description: "Older than thirty days and still never contacted",
			Active:      true,
			When: func(c Context) bool {
				return c.DaysSinceCreated > staleAfterDays && c.Lead.ContactStatus == domain.StatusNotContacted
			},
		},
	}}
}

// Rules returns a copy of the registry contents for listing.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Evaluation is the outcome of running the registry against one lead.
type Evaluation struct {
	Matched     []string `json:"matched"`
	RulePoints  int      `json:"rulePoints"`
	StoredBlend int      `json:"storedBlend"`
	Total       int      `json:"total"`
	Tier        string   `json:"tier"`
}

// Evaluate sums the points of every matching active rule, blends in up to
// 25 points from half of any previously stored score, and clamps to 0-100.
func (r *Registry) Evaluate(c Context, storedScore int) Evaluation {
	points := 0
	matched := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		if !rule.Active || rule.When == nil {
			continue
		}
		if rule.When(c) {
			points += rule.Points
			matched = append(matched, rule.Name)
		}
	}

	blend := 0
	if storedScore > 0 {
		blend = storedScore / 2
		if blend > maxStoredBlend {
			blend = maxStoredBlend
		}
	}

	total := points + blend
	if total < 0 {
		total = 0
	}
	if total > 100 {
		total = 100
	}

	return Evaluation{
		Matched:     matched,
		RulePoints:  points,
		StoredBlend: blend,
		Total:       total,
		Tier:        TierFor(total),
	}
}

// TierFor buckets a rule-based score.
func TierFor(total int) string {
	switch {
	case total >= TierHotThreshold:
		return TierHot
	case total >= TierWarmThreshold:
		return TierWarm
	default:
		return TierCold
	}
}

// TierRank orders tiers for priority sorting: hot before warm before cold.
func TierRank(tier string) int {
	switch tier {
	case TierHot:
		return 0
	case TierWarm:
		return 1
	default:
		return 2
	}
}
