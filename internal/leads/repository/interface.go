package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
)

// =====================================
// Segregated Interfaces (Interface Segregation Principle)
// =====================================

// Filter narrows lead listings. Zero values mean "no constraint".
type Filter struct {
	IDs      []uuid.UUID
	Statuses []domain.ContactStatus
	Country  string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// HistoryFilter narrows contact-history listings.
type HistoryFilter struct {
	LeadIDs []uuid.UUID
	From    *time.Time
	To      *time.Time
}

// MessageFilter narrows message-event listings.
type MessageFilter struct {
	LeadIDs []uuid.UUID
	From    *time.Time
	To      *time.Time
}

// LeadReader provides read-only access to lead data.
type LeadReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	List(ctx context.Context, filter Filter) ([]domain.Lead, error)
	BatchGet(ctx context.Context, ids []uuid.UUID) ([]domain.Lead, error)
}

// LeadWriter provides write operations for lead management.
type LeadWriter interface {
	Create(ctx context.Context, params CreateLeadParams) (domain.Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ContactStatus) (domain.Lead, error)
	UpdateScore(ctx context.Context, id uuid.UUID, score int, quality string) error
}

// HistoryReader provides access to contact history and message events.
type HistoryReader interface {
	ListContactHistory(ctx context.Context, filter HistoryFilter) ([]domain.ContactHistoryEntry, error)
	ListMessageEvents(ctx context.Context, filter MessageFilter) ([]domain.MessageEvent, error)
}

// HistoryWriter records contact attempts.
type HistoryWriter interface {
	InsertContactHistory(ctx context.Context, params CreateContactParams) (domain.ContactHistoryEntry, error)
}

// MetricsReader provides access to lead KPI aggregates.
type MetricsReader interface {
	CountsByStatus(ctx context.Context) (map[domain.ContactStatus]int, error)
}

// Store is the full surface consumed by the composition roots.
type Store interface {
	LeadReader
	LeadWriter
	HistoryReader
	HistoryWriter
	MetricsReader
}
