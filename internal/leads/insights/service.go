package insights

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/platform/apperr"
	"recruit_portal_backend/platform/cache"
	"recruit_portal_backend/platform/logger"
)

const summaryCacheKey = "insights:summary"

// Summary bundles every aggregate the dashboard shows.
type Summary struct {
	TotalLeads   int              `json:"totalLeads"`
	ByCountry    []CountryMetrics `json:"byCountry"`
	ByMethod     []MethodMetrics  `json:"byContactMethod"`
	ByOutcome    []MethodMetrics  `json:"byOutcome"`
	BySource     []SourceMetrics  `json:"bySource"`
	ByIntake     []IntakeMetrics  `json:"byIntake"`
	Readiness    []FieldReadiness `json:"readiness"`
	Blockers     []FieldReadiness `json:"blockers"`
	ReadyCount   int              `json:"readyCount"`
	ReadyPercent int              `json:"readyPercent"`
	Insights     []string         `json:"insights"`
	GeneratedAt  time.Time        `json:"generatedAt"`
}

// Service fetches the collections, runs the aggregations and caches the
// combined summary.
type Service struct {
	repo  repository.Store
	cache *cache.Cache
	ttl   time.Duration
	log   *logger.Logger
	now   func() time.Time
}

func NewService(repo repository.Store, c *cache.Cache, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{repo: repo, cache: c, ttl: ttl, log: log, now: time.Now}
}

// Summary returns the cached dashboard summary, recomputing on a miss.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var cached Summary
	if hit, err := s.cache.GetJSON(ctx, summaryCacheKey, &cached); err != nil {
		s.log.Warn("insights cache read failed", "error", err)
	} else if hit {
		return cached, nil
	}

	leads, history, err := s.loadCollections(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := s.compute(ctx, leads, history)

	if err := s.cache.SetJSON(ctx, summaryCacheKey, summary, s.ttl); err != nil {
		s.log.Warn("insights cache write failed", "error", err)
	}
	return summary, nil
}

// Invalidate drops the cached summary. Wired to lead mutation events.
func (s *Service) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, summaryCacheKey); err != nil {
		s.log.Warn("insights cache invalidation failed", "error", err)
	}
}

// Pipeline returns the funnel snapshot, always fresh. Stage totals come from
// the store's own counts; the lead list only feeds stuck detection.
func (s *Service) Pipeline(ctx context.Context) (PipelineSnapshot, error) {
	leads, err := s.repo.List(ctx, repository.Filter{})
	if err != nil {
		s.log.DatabaseError("list_leads_for_pipeline", err)
		return PipelineSnapshot{}, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}
	counts, err := s.repo.CountsByStatus(ctx)
	if err != nil {
		s.log.DatabaseError("counts_by_status_for_pipeline", err)
		return PipelineSnapshot{}, apperr.Wrap(apperr.KindInternal, "failed to count leads", err)
	}
	return Pipeline(leads, counts, s.now()), nil
}

// Performance returns the recruiter performance report for one period.
func (s *Service) Performance(ctx context.Context, period Period) (PerformanceSummary, error) {
	if !period.Valid() {
		return PerformanceSummary{}, apperr.Validation("period must be one of day, week, month, quarter")
	}
	leads, err := s.repo.List(ctx, repository.Filter{})
	if err != nil {
		s.log.DatabaseError("list_leads_for_performance", err)
		return PerformanceSummary{}, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}
	return Performance(leads, period, s.now()), nil
}

// compute runs the dimension folds concurrently. Each fold only reads the
// shared slices and writes its own field, so the group needs no locking;
// outputs are sorted inside each fold, keeping the result independent of
// completion order.
func (s *Service) compute(ctx context.Context, leads []domain.Lead, history []domain.ContactHistoryEntry) Summary {
	summary := Summary{TotalLeads: len(leads), GeneratedAt: s.now()}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { summary.ByCountry = ByCountry(leads); return nil })
	g.Go(func() error { summary.ByMethod = ByContactMethod(history, leads); return nil })
	g.Go(func() error { summary.ByOutcome = ByOutcome(history, leads); return nil })
	g.Go(func() error { summary.BySource = BySource(leads); return nil })
	g.Go(func() error { summary.ByIntake = ByIntake(leads, history); return nil })
	g.Go(func() error { summary.Readiness = ReadinessRollup(leads, history); return nil })
	_ = g.Wait()

	summary.Blockers = Blockers(summary.Readiness)
	summary.ReadyCount, summary.ReadyPercent = ReadyToProceed(leads, history)
	summary.Insights = Generate(leads, history, summary.ByCountry, summary.ByMethod)
	return summary
}

func (s *Service) loadCollections(ctx context.Context) ([]domain.Lead, []domain.ContactHistoryEntry, error) {
	leads, err := s.repo.List(ctx, repository.Filter{})
	if err != nil {
		s.log.DatabaseError("list_leads_for_insights", err)
		return nil, nil, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}
	history, err := s.repo.ListContactHistory(ctx, repository.HistoryFilter{})
	if err != nil {
		s.log.DatabaseError("list_contact_history_for_insights", err)
		return nil, nil, apperr.Wrap(apperr.KindInternal, "failed to load contact history", err)
	}
	return leads, history, nil
}
