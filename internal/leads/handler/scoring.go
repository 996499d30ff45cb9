package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruit_portal_backend/internal/leads/transport"
	"recruit_portal_backend/platform/httpkit"
)

func (h *Handler) Rules(c *gin.Context) {
	httpkit.OK(c, h.scoring.Rules())
}

func (h *Handler) Calculate(c *gin.Context) {
	var req transport.CalculateScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.scoring.Calculate(c.Request.Context(), req.LeadIDs)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) UpdateScores(c *gin.Context) {
	var req transport.UpdateScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}

	result, err := h.scoring.UpdateScores(c.Request.Context(), req.LeadIDs)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, result)
}

// Rescore queues a full batch rescore on the background worker and returns
// immediately. The synchronous /update endpoint stays available for targeted
// id lists.
func (h *Handler) Rescore(c *gin.Context) {
	if h.rescore == nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "background rescoring is not configured", nil)
		return
	}
	if err := h.rescore.EnqueueRescore(c.Request.Context(), "api"); err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.JSON(c, http.StatusAccepted, gin.H{"queued": true})
}

func (h *Handler) Recommendations(c *gin.Context) {
	recs, err := h.scoring.Recommendations(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, gin.H{"recommendations": recs, "total": len(recs)})
}
