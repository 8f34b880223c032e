package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/services"
)

type QuizAttemptHandler struct {
	log                *logger.Logger
	quizAttemptService services.QuizAttemptService
}

func NewQuizAttemptHandler(log *logger.Logger, quizAttemptService services.QuizAttemptService) *QuizAttemptHandler {
	return &QuizAttemptHandler{
		log:                log.With("handler", "QuizAttemptHandler"),
		quizAttemptService: quizAttemptService,
	}
}

func (h *QuizAttemptHandler) Record(c *gin.Context) {
	var req struct {
		QuizID                uuid.UUID `json:"quiz_id"`
		CorrectAnswersCount   int       `json:"correct_answers_count"`
		IncorrectAnswersCount int       `json:"incorrect_answers_count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	attempt, err := h.quizAttemptService.RecordAttempt(c.Request.Context(), req.QuizID, req.CorrectAnswersCount, req.IncorrectAnswersCount)
	if err != nil {
		h.log.Error("Record quiz attempt failed", "quiz_id", req.QuizID, "error", err)
		respondServiceError(c, "record_quiz_attempt_failed", err)
		return
	}
	RespondCreated(c, attempt)
}

func (h *QuizAttemptHandler) List(c *gin.Context) {
	limit := defaultLogListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		limit = parsed
	}
	attempts, err := h.quizAttemptService.ListAttempts(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, "load_quiz_attempts_failed", err)
		return
	}
	RespondOK(c, gin.H{"quiz_attempts": attempts})
}
