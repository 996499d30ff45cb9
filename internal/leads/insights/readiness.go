package insights

import (
	"sort"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
)

// FieldReadiness rolls up one checklist field across current assessments.
type FieldReadiness struct {
	Field               string `json:"field"`
	Assessed            int    `json:"assessed"`
	Positive            int    `json:"positive"`
	PositiveRate        int    `json:"positiveRate"`
	ConversionWhenTrue  int    `json:"conversionWhenTrue"`
	ConversionWhenFalse int    `json:"conversionWhenFalse"`
}

// ReadinessRollup computes per-field assessment stats over each lead's
// current assessment (the latest history entry that answered anything).
// Fields nobody has assessed are dropped.
func ReadinessRollup(leads []domain.Lead, history []domain.ContactHistoryEntry) []FieldReadiness {
	converted := make(map[uuid.UUID]bool, len(leads))
	for _, lead := range leads {
		if lead.ContactStatus == domain.StatusConverted {
			converted[lead.ID] = true
		}
	}

	current := currentAssessments(leads, history)

	type acc struct {
		assessed, positive         int
		trueTotal, trueConverted   int
		falseTotal, falseConverted int
	}
	byField := make(map[string]*acc, len(domain.ReadinessFieldNames))
	for _, name := range domain.ReadinessFieldNames {
		byField[name] = &acc{}
	}

	for leadID, entry := range current {
		for name, value := range entry.Readiness.Fields() {
			if value == nil {
				continue
			}
			a := byField[name]
			a.assessed++
			if *value {
				a.positive++
				a.trueTotal++
				if converted[leadID] {
					a.trueConverted++
				}
			} else {
				a.falseTotal++
				if converted[leadID] {
					a.falseConverted++
				}
			}
		}
	}

	out := make([]FieldReadiness, 0, len(domain.ReadinessFieldNames))
	for _, name := range domain.ReadinessFieldNames {
		a := byField[name]
		if a.assessed == 0 {
			continue
		}
		out = append(out, FieldReadiness{
			Field:               name,
			Assessed:            a.assessed,
			Positive:            a.positive,
			PositiveRate:        percent(a.positive, a.assessed),
			ConversionWhenTrue:  percent(a.trueConverted, a.trueTotal),
			ConversionWhenFalse: percent(a.falseConverted, a.falseTotal),
		})
	}
	return out
}

const (
	blockerMaxPositiveRate = 50
	blockerMinAssessed     = 5
	blockerLimit           = 3
)

// Blockers returns up to three checklist fields that fail most often:
// positive rate below 50% with at least five assessments, lowest first.
// Ties break by field name.
func Blockers(rollup []FieldReadiness) []FieldReadiness {
	candidates := make([]FieldReadiness, 0, len(rollup))
	for _, f := range rollup {
		if f.PositiveRate < blockerMaxPositiveRate && f.Assessed >= blockerMinAssessed {
			candidates = append(candidates, f)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].PositiveRate != candidates[j].PositiveRate {
			return candidates[i].PositiveRate < candidates[j].PositiveRate
		}
		return candidates[i].Field < candidates[j].Field
	})
	if len(candidates) > blockerLimit {
		candidates = candidates[:blockerLimit]
	}
	return candidates
}

const readyMinAssessed = 3

// readyLeadSet marks leads whose current assessment answered at least three
// checklist questions, all positively.
func readyLeadSet(leads []domain.Lead, history []domain.ContactHistoryEntry) map[uuid.UUID]bool {
	ready := make(map[uuid.UUID]bool)
	for leadID, entry := range currentAssessments(leads, history) {
		assessed, positive := entry.Readiness.AssessedCount()
		if assessed >= readyMinAssessed && positive == assessed {
			ready[leadID] = true
		}
	}
	return ready
}

// ReadyToProceed counts leads passing the readiness bar. The percentage is
// over assessed leads, not the whole book: unassessed leads say nothing about
// readiness either way.
func ReadyToProceed(leads []domain.Lead, history []domain.ContactHistoryEntry) (count, pct int) {
	assessed := currentAssessments(leads, history)
	ready := readyLeadSet(leads, history)
	return len(ready), percent(len(ready), len(assessed))
}

func currentAssessments(leads []domain.Lead, history []domain.ContactHistoryEntry) map[uuid.UUID]*domain.ContactHistoryEntry {
	byLead := make(map[uuid.UUID][]domain.ContactHistoryEntry)
	for _, e := range history {
		byLead[e.LeadID] = append(byLead[e.LeadID], e)
	}
	current := make(map[uuid.UUID]*domain.ContactHistoryEntry)
	for _, lead := range leads {
		if entry := domain.CurrentAssessment(byLead[lead.ID]); entry != nil {
			current[lead.ID] = entry
		}
	}
	return current
}
