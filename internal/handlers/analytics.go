package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/services"
)

type AnalyticsHandler struct {
	log              *logger.Logger
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(log *logger.Logger, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log.With("handler", "AnalyticsHandler"),
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) StudyEffectiveness(c *gin.Context) {
	resp, err := h.analyticsService.StudyEffectiveness(c.Request.Context())
	if err != nil {
		h.log.Error("Study effectiveness failed", "error", err)
		respondServiceError(c, "study_effectiveness_failed", err)
		return
	}
	RespondOK(c, resp)
}

func (h *AnalyticsHandler) Engagement(c *gin.Context) {
	resp, err := h.analyticsService.Engagement(c.Request.Context())
	if err != nil {
		h.log.Error("Engagement failed", "error", err)
		respondServiceError(c, "engagement_failed", err)
		return
	}
	RespondOK(c, resp)
}

func (h *AnalyticsHandler) WeeklyProgress(c *gin.Context) {
	resp, err := h.analyticsService.WeeklyProgress(c.Request.Context())
	if err != nil {
		h.log.Error("Weekly progress failed", "error", err)
		respondServiceError(c, "weekly_progress_failed", err)
		return
	}
	RespondOK(c, resp)
}
