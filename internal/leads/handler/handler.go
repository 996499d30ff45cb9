// Package handler exposes the leads HTTP endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recruit_portal_backend/internal/leads/domain"
	"recruit_portal_backend/internal/leads/insights"
	"recruit_portal_backend/internal/leads/repository"
	"recruit_portal_backend/internal/leads/service"
	"recruit_portal_backend/internal/leads/transport"
	"recruit_portal_backend/platform/httpkit"
	"recruit_portal_backend/platform/validator"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// RescoreEnqueuer queues a background batch rescore run.
type RescoreEnqueuer interface {
	EnqueueRescore(ctx context.Context, reason string) error
}

type Handler struct {
	svc      *service.Service
	scoring  *service.ScoringService
	insights *insights.Service
	rescore  RescoreEnqueuer
	val      *validator.Validator
}

func New(svc *service.Service, scoring *service.ScoringService, ins *insights.Service, rescore RescoreEnqueuer, val *validator.Validator) *Handler {
	return &Handler{svc: svc, scoring: scoring, insights: ins, rescore: rescore, val: val}
}

// RegisterRoutes mounts the three route families. Scoring and insights live
// beside /leads rather than under it so the /:id parameter cannot shadow them.
func (h *Handler) RegisterRoutes(leads, scoring, ins *gin.RouterGroup) {
	leads.GET("", h.List)
	leads.POST("", h.Create)
	leads.GET("/:id", h.GetByID)
	leads.POST("/:id/contacts", h.LogContact)

	scoring.GET("/rules", h.Rules)
	scoring.POST("/calculate", h.Calculate)
	scoring.POST("/update", h.UpdateScores)
	scoring.POST("/rescore", h.Rescore)
	scoring.GET("/recommendations", h.Recommendations)

	ins.GET("/summary", h.Summary)
	ins.GET("/pipeline", h.Pipeline)
	ins.GET("/performance", h.Performance)
}

func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	lead, err := h.svc.Create(c.Request.Context(), service.CreateLeadInput{
		Name:                    req.Name,
		Email:                   req.Email,
		Phone:                   req.Phone,
		Intake:                  req.Intake,
		BarcelonaTimelineMonths: req.BarcelonaTimelineMonths,
		ReferralSource:          req.ReferralSource,
		ReferralCampaign:        req.ReferralCampaign,
	})
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.LeadFromDomain(lead))
}

func (h *Handler) List(c *gin.Context) {
	var query transport.ListLeadsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	filter := repository.Filter{Country: query.Country, Limit: query.Limit}
	if query.Status != "" {
		status := domain.ContactStatus(query.Status)
		if !status.Valid() {
			httpkit.Error(c, http.StatusBadRequest, "unknown contact status", nil)
			return
		}
		filter.Statuses = []domain.ContactStatus{status}
	}

	leads, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, gin.H{"leads": transport.LeadsFromDomain(leads), "total": len(leads)})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	lead, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, transport.LeadFromDomain(lead))
}

func (h *Handler) LogContact(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.LogContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	in := service.LogContactInput{
		LeadID:      id,
		ContactType: req.ContactType,
		Outcome:     req.Outcome,
		Readiness:   req.Readiness,
	}
	if req.NewStatus != nil {
		status := domain.ContactStatus(*req.NewStatus)
		in.NewStatus = &status
	}
	if req.ContactedAt != nil {
		in.ContactedAt = *req.ContactedAt
	}

	entry, err := h.svc.LogContact(c.Request.Context(), in)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.JSON(c, http.StatusCreated, transport.ContactFromDomain(entry))
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid lead id", nil)
		return uuid.Nil, false
	}
	return id, true
}
