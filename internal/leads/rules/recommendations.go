package rules

import (
	"fmt"

	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/scoring"
)

const reengageAfterDays = 14

// Recommendations produces ordered next-action hints for a lead given its
// rule evaluation. Earlier entries matter more to the recruiter.
func Recommendations(c Context, eval Evaluation) []string {
	recs := make([]string, 0, 4)

	if _, valid, _ := scoring.ScorePhone(c.Lead.Phone); !valid {
		recs = append(recs, "Phone number is missing or unusable; obtain a callable number before anything else")
	}

	if c.Lead.ContactStatus == domain.StatusNotContacted {
		recs = append(recs, fmt.Sprintf("Never contacted after %d days; make first contact", c.DaysSinceCreated))
	} else if c.DaysSinceContact > reengageAfterDays {
		recs = append(recs, fmt.Sprintf("No touch in %d days; follow up before the lead goes cold", c.DaysSinceContact))
	}

	if c.Lead.BarcelonaTimelineMonths != nil && *c.Lead.BarcelonaTimelineMonths <= 3 {
		recs = append(recs, "Wants to start within 3 months; prioritize and fast-track documents")
	}

	if eval.Tier == TierCold && c.Lead.ContactStatus != domain.StatusNotContacted {
		recs = append(recs, "Contacted but still cold; try a different channel or a re-engagement campaign")
	}

	return recs
}
