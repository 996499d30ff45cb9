// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"github.com/google/uuid"

	"recruit_portal_backend/platform/events"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Lead Domain Events
// =============================================================================

// LeadCreated is published when a new lead lands in the store.
type LeadCreated struct {
	BaseEvent
	LeadID  uuid.UUID `json:"leadId"`
	Country string    `json:"country"`
	Source  string    `json:"source"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadContactLogged is published after a contact attempt is recorded.
type LeadContactLogged struct {
	BaseEvent
	LeadID      uuid.UUID `json:"leadId"`
	ContactType string    `json:"contactType"`
	Outcome     string    `json:"outcome"`
}

func (e LeadContactLogged) EventName() string { return "leads.contact.logged" }

// LeadScoresUpdated is published after a batch score write-back completes.
type LeadScoresUpdated struct {
	BaseEvent
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

func (e LeadScoresUpdated) EventName() string { return "leads.scores.updated" }
