package insights

import (
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
)

const stuckAfterDays = 14

// StageSnapshot is one pipeline stage in the funnel view.
type StageSnapshot struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
	// Advanced is the share of leads at or past this stage that moved on
	// to the next one.
	Advanced int `json:"advancedRate"`
}

// StuckLead flags a lead sitting too long in a non-terminal stage.
type StuckLead struct {
	LeadID   uuid.UUID `json:"leadId"`
	Name     string    `json:"name"`
	Stage    string    `json:"stage"`
	IdleDays int       `json:"idleDays"`
}

// PipelineSnapshot is the full funnel view.
type PipelineSnapshot struct {
	Stages    []StageSnapshot `json:"stages"`
	Stuck     []StuckLead     `json:"stuck"`
	Total     int             `json:"total"`
	Converted int             `json:"converted"`
	WinRate   int             `json:"winRate"`
}

// Pipeline builds the funnel snapshot: ordered stage counts with per-stage
// advancement rates, plus leads idle beyond two weeks. counts holds the
// store's per-status totals; when nil the counts are derived from leads.
func Pipeline(leads []domain.Lead, counts map[domain.ContactStatus]int, now time.Time) PipelineSnapshot {
	exact := counts
	if exact == nil {
		exact = make(map[domain.ContactStatus]int, len(domain.PipelineStages))
		for _, lead := range leads {
			exact[lead.ContactStatus]++
		}
	}

	total := 0
	atLeast := make([]int, len(domain.PipelineStages))
	for status, n := range exact {
		total += n
		for i, stage := range domain.PipelineStages {
			if status.Reached(stage) {
				atLeast[i] += n
			}
		}
	}

	stages := make([]StageSnapshot, len(domain.PipelineStages))
	for i, stage := range domain.PipelineStages {
		advanced := 0
		if i+1 < len(domain.PipelineStages) {
			advanced = percent(atLeast[i+1], atLeast[i])
		}
		stages[i] = StageSnapshot{
			Stage:    string(stage),
			Count:    exact[stage],
			Advanced: advanced,
		}
	}

	stuck := make([]StuckLead, 0)
	for _, lead := range leads {
		switch lead.ContactStatus {
		case domain.StatusConverted, domain.StatusUnqualified, domain.StatusArchived:
			continue
		}
		idle := lead.DaysSinceContact(now)
		if idle < 0 {
			idle = lead.DaysSinceCreated(now)
		}
		if idle > stuckAfterDays {
			stuck = append(stuck, StuckLead{
				LeadID:   lead.ID,
				Name:     lead.Name,
				Stage:    string(lead.ContactStatus),
				IdleDays: idle,
			})
		}
	}

	converted := exact[domain.StatusConverted]
	return PipelineSnapshot{
		Stages:    stages,
		Stuck:     stuck,
		Total:     total,
		Converted: converted,
		WinRate:   percent(converted, total),
	}
}
