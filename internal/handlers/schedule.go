package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/services"
)

type ScheduleHandler struct {
	log             *logger.Logger
	scheduleService services.ScheduleService
}

func NewScheduleHandler(log *logger.Logger, scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		log:             log.With("handler", "ScheduleHandler"),
		scheduleService: scheduleService,
	}
}

func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req struct {
		TopicID uuid.UUID `json:"topic_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	if req.TopicID == uuid.Nil {
		RespondError(c, http.StatusBadRequest, "invalid_topic_id", nil)
		return
	}
	schedule, err := h.scheduleService.GenerateWeeklySchedule(c.Request.Context(), req.TopicID)
	if err != nil {
		h.log.Error("Generate weekly schedule failed", "topic_id", req.TopicID, "error", err)
		respondServiceError(c, "generate_schedule_failed", err)
		return
	}
	RespondOK(c, schedule)
}
