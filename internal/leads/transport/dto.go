// Package transport defines the JSON request and response shapes of the
// leads HTTP surface.
package transport

import (
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
)

type CreateLeadRequest struct {
	Name                    string  `json:"name" validate:"required,min=1,max=200"`
	Email                   string  `json:"email" validate:"omitempty,email"`
	Phone                   string  `json:"phone" validate:"omitempty,max=30"`
	Intake                  string  `json:"intake" validate:"omitempty,max=50"`
	BarcelonaTimelineMonths *int    `json:"barcelonaTimelineMonths" validate:"omitempty,min=0,max=60"`
	ReferralSource          *string `json:"referralSource" validate:"omitempty,max=100"`
	ReferralCampaign        *string `json:"referralCampaign" validate:"omitempty,max=100"`
}

type LeadResponse struct {
	ID                      uuid.UUID  `json:"id"`
	Name                    string     `json:"name"`
	Email                   string     `json:"email"`
	Phone                   string     `json:"phone"`
	Country                 string     `json:"country"`
	ContactStatus           string     `json:"contactStatus"`
	LeadScore               int        `json:"leadScore"`
	LeadQuality             string     `json:"leadQuality"`
	Intake                  string     `json:"intake"`
	BarcelonaTimelineMonths *int       `json:"barcelonaTimelineMonths,omitempty"`
	ReferralSource          *string    `json:"referralSource,omitempty"`
	ReferralCampaign        *string    `json:"referralCampaign,omitempty"`
	CreatedAt               time.Time  `json:"createdAt"`
	LastContactDate         *time.Time `json:"lastContactDate,omitempty"`
}

func LeadFromDomain(l domain.Lead) LeadResponse {
	return LeadResponse{
		ID:                      l.ID,
		Name:                    l.Name,
		Email:                   l.Email,
		Phone:                   l.Phone,
		Country:                 l.Country,
		ContactStatus:           string(l.ContactStatus),
		LeadScore:               l.LeadScore,
		LeadQuality:             string(l.LeadQuality),
		Intake:                  l.Intake,
		BarcelonaTimelineMonths: l.BarcelonaTimelineMonths,
		ReferralSource:          l.ReferralSource,
		ReferralCampaign:        l.ReferralCampaign,
		CreatedAt:               l.CreatedAt,
		LastContactDate:         l.LastContactDate,
	}
}

func LeadsFromDomain(leads []domain.Lead) []LeadResponse {
	out := make([]LeadResponse, len(leads))
	for i, l := range leads {
		out[i] = LeadFromDomain(l)
	}
	return out
}

type LogContactRequest struct {
	ContactType string           `json:"contactType" validate:"required,max=50"`
	Outcome     string           `json:"outcome" validate:"omitempty,max=100"`
	NewStatus   *string          `json:"newStatus" validate:"omitempty,max=30"`
	Readiness   domain.Readiness `json:"readiness"`
	ContactedAt *time.Time       `json:"contactedAt"`
}

type ContactEntryResponse struct {
	ID          uuid.UUID        `json:"id"`
	LeadID      uuid.UUID        `json:"leadId"`
	ContactType string           `json:"contactType"`
	Outcome     string           `json:"outcome"`
	Readiness   domain.Readiness `json:"readiness"`
	ContactedAt time.Time        `json:"contactedAt"`
}

func ContactFromDomain(e domain.ContactHistoryEntry) ContactEntryResponse {
	return ContactEntryResponse{
		ID:          e.ID,
		LeadID:      e.LeadID,
		ContactType: e.ContactType,
		Outcome:     e.Outcome,
		Readiness:   e.Readiness,
		ContactedAt: e.ContactedAt,
	}
}

type CalculateScoresRequest struct {
	LeadIDs []uuid.UUID `json:"leadIds"`
}

type UpdateScoresRequest struct {
	LeadIDs []uuid.UUID `json:"leadIds"`
}

type ListLeadsQuery struct {
	Status  string `form:"status"`
	Country string `form:"country"`
	Limit   int    `form:"limit,default=0" validate:"omitempty,min=0,max=1000"`
}
