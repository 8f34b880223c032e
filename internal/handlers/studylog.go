package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/services"
)

const defaultLogListLimit = 50

type StudyLogHandler struct {
	log             *logger.Logger
	studyLogService services.StudyLogService
}

func NewStudyLogHandler(log *logger.Logger, studyLogService services.StudyLogService) *StudyLogHandler {
	return &StudyLogHandler{
		log:             log.With("handler", "StudyLogHandler"),
		studyLogService: studyLogService,
	}
}

func (h *StudyLogHandler) Create(c *gin.Context) {
	var req struct {
		CourseID       uuid.UUID  `json:"course_id"`
		TopicID        *uuid.UUID `json:"topic_id"`
		Date           string     `json:"date"`
		MinutesStudied int        `json:"minutes_studied"`
		Notes          string     `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_date", err)
			return
		}
		date = parsed
	}
	entry, err := h.studyLogService.CreateLog(c.Request.Context(), req.CourseID, req.TopicID, date, req.MinutesStudied, req.Notes)
	if err != nil {
		h.log.Error("Create study log failed", "error", err)
		respondServiceError(c, "create_study_log_failed", err)
		return
	}
	RespondCreated(c, entry)
}

func (h *StudyLogHandler) List(c *gin.Context) {
	limit := defaultLogListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = parsed
	}
	logs, err := h.studyLogService.ListLogs(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, "load_study_logs_failed", err)
		return
	}
	RespondOK(c, gin.H{"study_logs": logs})
}
