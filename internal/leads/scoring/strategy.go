package scoring

import (
	"time"

	"recruit_portal_backend/internal/leads/domain"
)

// Input bundles everything a scoring strategy may consult. The composite
// scheme only reads the lead itself; the rule-based scheme also uses contact
// history and message activity.
type Input struct {
	Lead     domain.Lead
	History  []domain.ContactHistoryEntry
	Messages []domain.MessageEvent
	Now      time.Time
}

// Strategy is a named lead-scoring scheme. The composite field-quality
// scheme and the rule-based tier scheme both implement it; they are
// deliberately kept as independent strategies and never reconciled.
type Strategy interface {
	Name() string
	// Score returns a 0-100 score and the scheme's own tier label.
	Score(in Input) (int, string)
}

// Composite is the field-quality scheme: name, email, phone, recency and
// intake sub-scores summed and clamped.
type Composite struct{}

func (Composite) Name() string { return "composite" }

func (Composite) Score(in Input) (int, string) {
	b := CalculateBreakdown(in.Lead, in.Now)
	return b.Total, string(b.Quality)
}
