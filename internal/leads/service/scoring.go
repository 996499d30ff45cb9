package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"recruit_portal_backend/internal/events"
	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/internal/leads/rules"
	"recruit_portal_backend/internal/leads/scoring"
	"recruit_portal_backend/platform/apperr"
	"recruit_portal_backend/platform/logger"
)

// ScoringService runs both scoring schemes over stored leads: the composite
// field-quality scheme (persisted on update) and the rule-based tier scheme
// (served on calculate and recommendations).
type ScoringService struct {
	repo     repository.Store
	registry *rules.Registry
	bus      events.Bus
	log      *logger.Logger
	now      func() time.Time
}

func NewScoringService(repo repository.Store, registry *rules.Registry, bus events.Bus, log *logger.Logger) *ScoringService {
	if registry == nil {
		registry = rules.DefaultRegistry()
	}
	return &ScoringService{
		repo:     repo,
		registry: registry,
		bus:      bus,
		log:      log,
		now:      time.Now,
	}
}

// RuleInfo is one registry entry in the listing response.
type RuleInfo struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// RuleListing describes the active rule set and its tier boundaries.
type RuleListing struct {
	Rules []RuleInfo     `json:"rules"`
	Tiers map[string]int `json:"tierThresholds"`
}

func (s *ScoringService) Rules() RuleListing {
	defs := s.registry.Rules()
	infos := make([]RuleInfo, len(defs))
	for i, r := range defs {
		infos[i] = RuleInfo{
			Name:        r.Name,
			Category:    string(r.Category),
			Points:      r.Points,
			Description: r.Description,
			Active:      r.Active,
		}
	}
	return RuleListing{
		Rules: infos,
		Tiers: map[string]int{
			rules.TierHot:  rules.TierHotThreshold,
			rules.TierWarm: rules.TierWarmThreshold,
		},
	}
}

// LeadScore is the per-lead result of a calculate call.
type LeadScore struct {
	LeadID          uuid.UUID         `json:"leadId"`
	Name            string            `json:"name"`
	Breakdown       scoring.Breakdown `json:"breakdown"`
	RuleEvaluation  rules.Evaluation  `json:"ruleEvaluation"`
	Recommendations []string          `json:"recommendations"`
}

// CalculateResult aggregates a calculate call.
type CalculateResult struct {
	Leads        []LeadScore    `json:"leads"`
	TierCounts   map[string]int `json:"tierCounts"`
	AverageScore int            `json:"averageScore"`
}

// Calculate evaluates both schemes for the requested leads without writing
// anything back.
func (s *ScoringService) Calculate(ctx context.Context, ids []uuid.UUID) (CalculateResult, error) {
	if len(ids) == 0 {
		return CalculateResult{}, apperr.Validation("leadIds must not be empty")
	}

	leads, history, messages, err := s.loadActivity(ctx, ids)
	if err != nil {
		return CalculateResult{}, err
	}

	now := s.now()
	result := CalculateResult{
		Leads:      make([]LeadScore, 0, len(leads)),
		TierCounts: map[string]int{rules.TierHot: 0, rules.TierWarm: 0, rules.TierCold: 0},
	}

	sum := 0
	for _, lead := range leads {
		breakdown := scoring.CalculateBreakdown(lead, now)
		rc := rules.NewContext(lead, history, messages, now)
		eval := s.registry.Evaluate(rc, lead.LeadScore)

		result.Leads = append(result.Leads, LeadScore{
			LeadID:          lead.ID,
			Name:            lead.Name,
			Breakdown:       breakdown,
			RuleEvaluation:  eval,
			Recommendations: rules.Recommendations(rc, eval),
		})
		result.TierCounts[eval.Tier]++
		sum += eval.Total
	}

	if len(result.Leads) > 0 {
		result.AverageScore = int(math.Round(float64(sum) / float64(len(result.Leads))))
	}
	return result, nil
}

// UpdateResult reports a batch write-back.
type UpdateResult struct {
	Updated int `json:"updated"`
	Total   int `json:"total"`
}

// UpdateScores recalculates the composite score for the given leads (all
// leads when ids is empty) and persists score and quality. Per-lead write
// failures are counted, logged and skipped; the batch keeps going.
func (s *ScoringService) UpdateScores(ctx context.Context, ids []uuid.UUID) (UpdateResult, error) {
	var (
		leads []domain.Lead
		err   error
	)
	if len(ids) == 0 {
		leads, err = s.repo.List(ctx, repository.Filter{})
	} else {
		leads, err = s.repo.BatchGet(ctx, ids)
	}
	if err != nil {
		s.log.DatabaseError("load_leads_for_rescore", err)
		return UpdateResult{}, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}

	now := s.now()
	result := UpdateResult{Total: len(leads)}
	for _, lead := range leads {
		breakdown := scoring.CalculateBreakdown(lead, now)
		if err := s.repo.UpdateScore(ctx, lead.ID, breakdown.Total, string(breakdown.Quality)); err != nil {
			s.log.Error("score write-back failed", "lead_id", lead.ID, "error", err)
			continue
		}
		result.Updated++
	}

	s.bus.Publish(ctx, events.LeadScoresUpdated{
		BaseEvent: events.NewBaseEvent(),
		Updated:   result.Updated,
		Total:     result.Total,
	})
	return result, nil
}

// Recommendation pairs a lead with its rule tier and next actions.
type Recommendation struct {
	LeadID  uuid.UUID `json:"leadId"`
	Name    string    `json:"name"`
	Tier    string    `json:"tier"`
	Score   int       `json:"score"`
	Actions []string  `json:"actions"`
}

// Recommendations evaluates every active lead and returns them sorted by
// tier, then rule score descending.
func (s *ScoringService) Recommendations(ctx context.Context) ([]Recommendation, error) {
	leads, err := s.repo.List(ctx, repository.Filter{})
	if err != nil {
		s.log.DatabaseError("list_leads_for_recommendations", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}

	ids := make([]uuid.UUID, len(leads))
	for i, l := range leads {
		ids[i] = l.ID
	}
	history, err := s.repo.ListContactHistory(ctx, repository.HistoryFilter{LeadIDs: ids})
	if err != nil {
		s.log.DatabaseError("list_contact_history", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load contact history", err)
	}
	messages, err := s.repo.ListMessageEvents(ctx, repository.MessageFilter{LeadIDs: ids})
	if err != nil {
		s.log.DatabaseError("list_message_events", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load message events", err)
	}

	now := s.now()
	recs := make([]Recommendation, 0, len(leads))
	for _, lead := range leads {
		rc := rules.NewContext(lead, history, messages, now)
		eval := s.registry.Evaluate(rc, lead.LeadScore)
		actions := rules.Recommendations(rc, eval)
		if len(actions) == 0 {
			continue
		}
		recs = append(recs, Recommendation{
			LeadID:  lead.ID,
			Name:    lead.Name,
			Tier:    eval.Tier,
			Score:   eval.Total,
			Actions: actions,
		})
	}

	sort.SliceStable(recs, func(a, b int) bool {
		ra, rb := rules.TierRank(recs[a].Tier), rules.TierRank(recs[b].Tier)
		if ra != rb {
			return ra < rb
		}
		return recs[a].Score > recs[b].Score
	})
	return recs, nil
}

func (s *ScoringService) loadActivity(ctx context.Context, ids []uuid.UUID) ([]domain.Lead, []domain.ContactHistoryEntry, []domain.MessageEvent, error) {
	leads, err := s.repo.BatchGet(ctx, ids)
	if err != nil {
		s.log.DatabaseError("batch_get_leads", err)
		return nil, nil, nil, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}
	history, err := s.repo.ListContactHistory(ctx, repository.HistoryFilter{LeadIDs: ids})
	if err != nil {
		s.log.DatabaseError("list_contact_history", err)
		return nil, nil, nil, apperr.Wrap(apperr.KindInternal, "failed to load contact history", err)
	}
	messages, err := s.repo.ListMessageEvents(ctx, repository.MessageFilter{LeadIDs: ids})
	if err != nil {
		s.log.DatabaseError("list_message_events", err)
		return nil, nil, nil, apperr.Wrap(apperr.KindInternal, "failed to load message events", err)
	}
	return leads, history, messages, nil
}
