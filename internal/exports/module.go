package exports

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "recruit_portal_backend/internal/http"
	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/platform/config"
	"recruit_portal_backend/platform/httpkit"
	"recruit_portal_backend/platform/logger"
)

// Module is the exports bounded context implementing http.Module. It is only
// registered when object storage is configured.
type Module struct {
	svc *Service
}

func NewModule(ctx context.Context, pool *pgxpool.Pool, cfg config.MinIOConfig, log *logger.Logger) (*Module, error) {
	storage, err := NewStorage(cfg)
	if err != nil {
		return nil, err
	}
	// A fresh deployment has no bucket yet; uploads would fail without this.
	if err := storage.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return &Module{svc: NewService(repository.New(pool), storage, log)}, nil
}

func (m *Module) Name() string { return "exports" }

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	rg := ctx.Protected.Group("/exports")
	rg.POST("/leads", m.exportLeads)
	rg.POST("/countries", m.exportCountries)
}

type exportLeadsRequest struct {
	Status  string `json:"status"`
	Country string `json:"country"`
}

func (m *Module) exportLeads(c *gin.Context) {
	var req exportLeadsRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}

	filter := repository.Filter{Country: req.Country}
	if req.Status != "" {
		status := domain.ContactStatus(req.Status)
		if !status.Valid() {
			httpkit.Error(c, http.StatusBadRequest, "unknown contact status", nil)
			return
		}
		filter.Statuses = []domain.ContactStatus{status}
	}

	export, err := m.svc.ExportLeads(c.Request.Context(), filter)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.JSON(c, http.StatusCreated, export)
}

func (m *Module) exportCountries(c *gin.Context) {
	export, err := m.svc.ExportCountryMetrics(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.JSON(c, http.StatusCreated, export)
}
