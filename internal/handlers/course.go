package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/services"
)

type CourseHandler struct {
	log           *logger.Logger
	courseService services.CourseService
}

func NewCourseHandler(log *logger.Logger, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{
		log:           log.With("handler", "CourseHandler"),
		courseService: courseService,
	}
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	course, err := h.courseService.CreateCourse(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		h.log.Error("Create course failed", "error", err)
		respondServiceError(c, "create_course_failed", err)
		return
	}
	RespondCreated(c, course)
}

func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.ListCourses(c.Request.Context())
	if err != nil {
		h.log.Error("List courses failed", "error", err)
		respondServiceError(c, "load_courses_failed", err)
		return
	}
	RespondOK(c, gin.H{"courses": courses})
}

func (h *CourseHandler) Get(c *gin.Context) {
	courseID, err := pathUUID(c, "course_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	course, err := h.courseService.GetCourse(c.Request.Context(), courseID)
	if err != nil {
		respondServiceError(c, "load_course_failed", err)
		return
	}
	RespondOK(c, course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	courseID, err := pathUUID(c, "course_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	course, err := h.courseService.UpdateCourse(c.Request.Context(), courseID, req.Title, req.Description)
	if err != nil {
		respondServiceError(c, "update_course_failed", err)
		return
	}
	RespondOK(c, course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	courseID, err := pathUUID(c, "course_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	if err := h.courseService.DeleteCourse(c.Request.Context(), courseID); err != nil {
		respondServiceError(c, "delete_course_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
