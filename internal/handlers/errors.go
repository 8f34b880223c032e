package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyplanner-backend/internal/services"
)

// respondServiceError maps service sentinel errors onto HTTP statuses; anything
// unrecognized is a 500 with the fallback code.
func respondServiceError(c *gin.Context, fallbackCode string, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, services.ErrForbidden):
		RespondError(c, http.StatusForbidden, "forbidden", err)
	case errors.Is(err, services.ErrDuplicateStudyPlan):
		RespondError(c, http.StatusConflict, "duplicate_study_plan", err)
	case errors.Is(err, services.ErrNoCapacityDefined):
		RespondError(c, http.StatusBadRequest, "no_capacity_defined", err)
	case errors.Is(err, services.ErrNoSubtopics):
		RespondError(c, http.StatusNotFound, "no_pending_subtopics", err)
	case errors.Is(err, services.ErrNoSequence):
		RespondError(c, http.StatusServiceUnavailable, "sequence_unavailable", err)
	default:
		RespondError(c, http.StatusInternalServerError, fallbackCode, err)
	}
}
