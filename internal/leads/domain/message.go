package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageDirection distinguishes inbound prospect replies from outbound sends.
type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

// MessageEvent is a single message touching a lead. The engine only uses
// these for activity counts; sending lives in the messaging dashboards.
type MessageEvent struct {
	ID        uuid.UUID
	LeadID    uuid.UUID
	Direction MessageDirection
	Status    string
	SentAt    time.Time
}
