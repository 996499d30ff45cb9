// Package domain holds the core lead types shared by the scoring and
// insight services. It has no dependencies on transport or persistence.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactStatus is the pipeline stage a lead currently occupies.
type ContactStatus string

const (
	StatusNotContacted ContactStatus = "not_contacted"
	StatusContacted    ContactStatus = "contacted"
	StatusInterested   ContactStatus = "interested"
	StatusQualified    ContactStatus = "qualified"
	StatusConverted    ContactStatus = "converted"
	StatusUnqualified  ContactStatus = "unqualified"
	StatusReferral     ContactStatus = "referral"
	StatusArchived     ContactStatus = "archived"
)

// PipelineStages lists the funnel stages in board order. Unqualified,
// referral and archived leads sit outside the main funnel.
var PipelineStages = []ContactStatus{
	StatusNotContacted,
	StatusContacted,
	StatusInterested,
	StatusQualified,
	StatusConverted,
}

// Valid reports whether the status is a known pipeline value.
func (s ContactStatus) Valid() bool {
	switch s {
	case StatusNotContacted, StatusContacted, StatusInterested, StatusQualified,
		StatusConverted, StatusUnqualified, StatusReferral, StatusArchived:
		return true
	}
	return false
}

// Reached reports whether the status sits at or beyond the given funnel stage.
func (s ContactStatus) Reached(stage ContactStatus) bool {
	return stageIndex(s) >= stageIndex(stage) && stageIndex(s) >= 0
}

func stageIndex(s ContactStatus) int {
	for i, stage := range PipelineStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// QualityTier is the composite-scheme quality bucket.
type QualityTier string

const (
	QualityHigh    QualityTier = "High"
	QualityMedium  QualityTier = "Medium"
	QualityLow     QualityTier = "Low"
	QualityVeryLow QualityTier = "Very Low"
)

// QualityForScore buckets a clamped 0-100 composite score.
func QualityForScore(score int) QualityTier {
	switch {
	case score >= 85:
		return QualityHigh
	case score >= 55:
		return QualityMedium
	case score >= 35:
		return QualityLow
	default:
		return QualityVeryLow
	}
}

// Lead is a prospective student record. The lead store owns these rows;
// the engine reads them and hands score updates back to the caller.
type Lead struct {
	ID                      uuid.UUID
	Name                    string
	Email                   string
	Phone                   string
	Country                 string
	ContactStatus           ContactStatus
	LeadScore               int
	LeadQuality             QualityTier
	Intake                  string
	BarcelonaTimelineMonths *int
	ReferralSource          *string
	ReferralCampaign        *string
	CreatedAt               time.Time
	LastContactDate         *time.Time
}

// DaysSinceCreated returns whole days between creation and now.
func (l Lead) DaysSinceCreated(now time.Time) int {
	return int(now.Sub(l.CreatedAt).Hours() / 24)
}

// DaysSinceContact returns whole days since the last contact, or -1 when
// the lead has never been contacted.
func (l Lead) DaysSinceContact(now time.Time) int {
	if l.LastContactDate == nil {
		return -1
	}
	return int(now.Sub(*l.LastContactDate).Hours() / 24)
}
