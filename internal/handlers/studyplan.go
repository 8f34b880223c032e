package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/services"
)

type StudyPlanHandler struct {
	log              *logger.Logger
	studyPlanService services.StudyPlanService
}

func NewStudyPlanHandler(log *logger.Logger, studyPlanService services.StudyPlanService) *StudyPlanHandler {
	return &StudyPlanHandler{
		log:              log.With("handler", "StudyPlanHandler"),
		studyPlanService: studyPlanService,
	}
}

func (h *StudyPlanHandler) Create(c *gin.Context) {
	var req struct {
		CourseID       uuid.UUID `json:"course_id"`
		DayOfWeek      int       `json:"day_of_week"`
		MinutesPlanned int       `json:"minutes_planned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	plan, err := h.studyPlanService.CreatePlan(c.Request.Context(), req.CourseID, req.DayOfWeek, req.MinutesPlanned)
	if err != nil {
		h.log.Error("Create study plan failed", "error", err)
		respondServiceError(c, "create_study_plan_failed", err)
		return
	}
	RespondCreated(c, plan)
}

func (h *StudyPlanHandler) List(c *gin.Context) {
	plans, err := h.studyPlanService.ListPlans(c.Request.Context())
	if err != nil {
		respondServiceError(c, "load_study_plans_failed", err)
		return
	}
	RespondOK(c, gin.H{"study_plans": plans})
}

func (h *StudyPlanHandler) Update(c *gin.Context) {
	planID, err := pathUUID(c, "plan_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_id", err)
		return
	}
	var req struct {
		DayOfWeek      *int `json:"day_of_week"`
		MinutesPlanned *int `json:"minutes_planned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	plan, err := h.studyPlanService.UpdatePlan(c.Request.Context(), planID, req.DayOfWeek, req.MinutesPlanned)
	if err != nil {
		respondServiceError(c, "update_study_plan_failed", err)
		return
	}
	RespondOK(c, plan)
}

func (h *StudyPlanHandler) Delete(c *gin.Context) {
	planID, err := pathUUID(c, "plan_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_plan_id", err)
		return
	}
	if err := h.studyPlanService.DeletePlan(c.Request.Context(), planID); err != nil {
		respondServiceError(c, "delete_study_plan_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
