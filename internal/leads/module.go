// Package leads provides the lead intelligence bounded context module.
// This file defines the module that encapsulates all leads setup and route registration.
package leads

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"recruit_portal_backend/internal/events"
	apphttp "recruit_portal_backend/internal/http"
	"recruit_portal_backend/internal/leads/handler"
	"recruit_portal_backend/internal/leads/insights"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/internal/leads/rules"
	"recruit_portal_backend/internal/leads/service"
	"recruit_portal_backend/platform/cache"
	"recruit_portal_backend/platform/config"
	"recruit_portal_backend/platform/logger"
	"recruit_portal_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the leads module with all its
// dependencies. rescore may be nil when no task queue is configured; the
// async rescore endpoint then reports itself unavailable.
func NewModule(pool *pgxpool.Pool, redis *cache.Cache, eventBus events.Bus, rescore handler.RescoreEnqueuer, val *validator.Validator, cfg *config.Config, log *logger.Logger) (*Module, error) {
	repo := repository.New(pool)

	registry := rules.DefaultRegistry()
	if err := rules.LoadOverrides(registry, cfg.GetRuleOverridesPath()); err != nil {
		return nil, err
	}

	leadSvc := service.New(repo, eventBus, log)
	scoringSvc := service.NewScoringService(repo, registry, eventBus, log)
	insightSvc := insights.NewService(repo, redis, cfg.GetInsightsCacheTTL(), log)

	// Any lead mutation makes the cached insight summary stale.
	invalidate := events.HandlerFunc(func(ctx context.Context, _ events.Event) error {
		insightSvc.Invalidate(ctx)
		return nil
	})
	eventBus.Subscribe(events.LeadCreated{}.EventName(), invalidate)
	eventBus.Subscribe(events.LeadContactLogged{}.EventName(), invalidate)
	eventBus.Subscribe(events.LeadScoresUpdated{}.EventName(), invalidate)

	return &Module{
		handler: handler.New(leadSvc, scoringSvc, insightSvc, rescore, val),
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string { return "leads" }

// RegisterRoutes mounts the leads, scoring and insights route groups.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(
		ctx.Protected.Group("/leads"),
		ctx.Protected.Group("/scoring"),
		ctx.Protected.Group("/insights"),
	)
}
