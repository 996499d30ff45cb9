// Package service implements lead intake and contact logging on top of the
// repository. Scoring and insight operations live in their own services.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/events"
	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/geo"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/platform/apperr"
	"recruit_portal_backend/platform/logger"
	"recruit_portal_backend/platform/phone"
)

type Service struct {
	repo repository.Store
	bus  events.Bus
	log  *logger.Logger
}

func New(repo repository.Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, log: log}
}

type CreateLeadInput struct {
	Name                    string
	Email                   string
	Phone                   string
	Intake                  string
	BarcelonaTimelineMonths *int
	ReferralSource          *string
	ReferralCampaign        *string
}

// Create normalizes the phone, infers the country and stores the lead.
func (s *Service) Create(ctx context.Context, in CreateLeadInput) (domain.Lead, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Lead{}, apperr.Validation("name is required")
	}

	normalized := phone.NormalizeE164(in.Phone)
	country := geo.CountryForPhone(normalized)

	lead, err := s.repo.Create(ctx, repository.CreateLeadParams{
		Name:                    name,
		Email:                   strings.TrimSpace(in.Email),
		Phone:                   normalized,
		Country:                 country,
		Intake:                  strings.TrimSpace(in.Intake),
		BarcelonaTimelineMonths: in.BarcelonaTimelineMonths,
		ReferralSource:          in.ReferralSource,
		ReferralCampaign:        in.ReferralCampaign,
	})
	if err != nil {
		s.log.DatabaseError("create_lead", err)
		return domain.Lead{}, apperr.Wrap(apperr.KindInternal, "failed to create lead", err)
	}

	source := ""
	if lead.ReferralSource != nil {
		source = *lead.ReferralSource
	}
	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Country:   lead.Country,
		Source:    source,
	})

	return lead, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.Lead{}, apperr.NotFound("lead not found")
	}
	if err != nil {
		s.log.DatabaseError("get_lead", err)
		return domain.Lead{}, apperr.Wrap(apperr.KindInternal, "failed to load lead", err)
	}
	return lead, nil
}

func (s *Service) List(ctx context.Context, filter repository.Filter) ([]domain.Lead, error) {
	leads, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.DatabaseError("list_leads", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list leads", err)
	}
	return leads, nil
}

type LogContactInput struct {
	LeadID      uuid.UUID
	ContactType string
	Outcome     string
	NewStatus   *domain.ContactStatus
	Readiness   domain.Readiness
	ContactedAt time.Time
}

// LogContact records a contact attempt, optionally advancing the pipeline
// stage in the same call.
func (s *Service) LogContact(ctx context.Context, in LogContactInput) (domain.ContactHistoryEntry, error) {
	if in.ContactType == "" {
		return domain.ContactHistoryEntry{}, apperr.Validation("contactType is required")
	}
	if in.NewStatus != nil && !in.NewStatus.Valid() {
		return domain.ContactHistoryEntry{}, apperr.Validation("invalid contact status")
	}

	if _, err := s.Get(ctx, in.LeadID); err != nil {
		return domain.ContactHistoryEntry{}, err
	}

	entry, err := s.repo.InsertContactHistory(ctx, repository.CreateContactParams{
		LeadID:      in.LeadID,
		ContactType: in.ContactType,
		Outcome:     in.Outcome,
		Readiness:   in.Readiness,
		ContactedAt: in.ContactedAt,
	})
	if err != nil {
		s.log.DatabaseError("insert_contact_history", err)
		return domain.ContactHistoryEntry{}, apperr.Wrap(apperr.KindInternal, "failed to log contact", err)
	}

	if in.NewStatus != nil {
		if _, err := s.repo.UpdateStatus(ctx, in.LeadID, *in.NewStatus); err != nil {
			s.log.DatabaseError("update_lead_status", err)
			return domain.ContactHistoryEntry{}, apperr.Wrap(apperr.KindInternal, "failed to update lead status", err)
		}
	}

	s.bus.Publish(ctx, events.LeadContactLogged{
		BaseEvent:   events.NewBaseEvent(),
		LeadID:      in.LeadID,
		ContactType: in.ContactType,
		Outcome:     in.Outcome,
	})

	return entry, nil
}
