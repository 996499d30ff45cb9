package domain

import (
	"time"

	"github.com/google/uuid"
)

// Readiness is the fixed checklist assessed during a contact. Nil means the
// question was not asked on that call.
type Readiness struct {
	HasFunds             *bool `json:"has_funds"`
	MeetsAgeRequirements *bool `json:"meets_age_requirements"`
	HasAcademicRecords   *bool `json:"has_academic_records"`
	PassportValid        *bool `json:"passport_valid"`
	EnglishLevelOK       *bool `json:"english_level_ok"`
	FamilySupport        *bool `json:"family_support"`
	UnderstandsProgram   *bool `json:"understands_program"`
	TimelineRealistic    *bool `json:"timeline_realistic"`
	NoVisaRefusals       *bool `json:"no_visa_refusals"`
	CommittedToIntake    *bool `json:"committed_to_intake"`
}

// ReadinessFieldNames lists the checklist fields in stable output order.
var ReadinessFieldNames = []string{
	"has_funds",
	"meets_age_requirements",
	"has_academic_records",
	"passport_valid",
	"english_level_ok",
	"family_support",
	"understands_program",
	"timeline_realistic",
	"no_visa_refusals",
	"committed_to_intake",
}

// Fields returns the checklist values keyed by field name.
func (r Readiness) Fields() map[string]*bool {
	return map[string]*bool{
		"has_funds":              r.HasFunds,
		"meets_age_requirements": r.MeetsAgeRequirements,
		"has_academic_records":   r.HasAcademicRecords,
		"passport_valid":         r.PassportValid,
		"english_level_ok":       r.EnglishLevelOK,
		"family_support":         r.FamilySupport,
		"understands_program":    r.UnderstandsProgram,
		"timeline_realistic":     r.TimelineRealistic,
		"no_visa_refusals":       r.NoVisaRefusals,
		"committed_to_intake":    r.CommittedToIntake,
	}
}

// HasAnyAssessment reports whether at least one checklist question was answered.
func (r Readiness) HasAnyAssessment() bool {
	for _, v := range r.Fields() {
		if v != nil {
			return true
		}
	}
	return false
}

// AssessedCount returns how many checklist questions were answered and how
// many of those were answered positively.
func (r Readiness) AssessedCount() (assessed, positive int) {
	for _, v := range r.Fields() {
		if v == nil {
			continue
		}
		assessed++
		if *v {
			positive++
		}
	}
	return assessed, positive
}

// ContactHistoryEntry records one contact attempt with a lead.
type ContactHistoryEntry struct {
	ID          uuid.UUID
	LeadID      uuid.UUID
	ContactType string
	Outcome     string
	Readiness   Readiness
	ContactedAt time.Time
}

// CurrentAssessment picks the entry carrying the lead's current readiness:
// the latest ContactedAt among entries with at least one answered question.
func CurrentAssessment(entries []ContactHistoryEntry) *ContactHistoryEntry {
	var current *ContactHistoryEntry
	for i := range entries {
		entry := &entries[i]
		if !entry.Readiness.HasAnyAssessment() {
			continue
		}
		if current == nil || entry.ContactedAt.After(current.ContactedAt) {
			current = entry
		}
	}
	return current
}
