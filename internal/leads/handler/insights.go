package handler

import (
	"github.com/gin-gonic/gin"

	"recruit_portal_backend/internal/leads/insights"
	"recruit_portal_backend/platform/httpkit"
)

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.insights.Summary(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, summary)
}

func (h *Handler) Pipeline(c *gin.Context) {
	snapshot, err := h.insights.Pipeline(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, snapshot)
}

func (h *Handler) Performance(c *gin.Context) {
	period := insights.Period(c.DefaultQuery("period", string(insights.PeriodWeek)))
	summary, err := h.insights.Performance(c.Request.Context(), period)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, summary)
}
