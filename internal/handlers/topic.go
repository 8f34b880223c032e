package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/services"
)

type TopicHandler struct {
	log          *logger.Logger
	topicService services.TopicService
}

func NewTopicHandler(log *logger.Logger, topicService services.TopicService) *TopicHandler {
	return &TopicHandler{
		log:          log.With("handler", "TopicHandler"),
		topicService: topicService,
	}
}

func (h *TopicHandler) Create(c *gin.Context) {
	courseID, err := pathUUID(c, "course_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	var req struct {
		Title string `json:"title"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	topic, err := h.topicService.CreateTopic(c.Request.Context(), courseID, req.Title, req.Order)
	if err != nil {
		h.log.Error("Create topic failed", "error", err)
		respondServiceError(c, "create_topic_failed", err)
		return
	}
	RespondCreated(c, topic)
}

func (h *TopicHandler) ListByCourse(c *gin.Context) {
	courseID, err := pathUUID(c, "course_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_course_id", err)
		return
	}
	topics, err := h.topicService.ListTopics(c.Request.Context(), courseID)
	if err != nil {
		respondServiceError(c, "load_topics_failed", err)
		return
	}
	RespondOK(c, gin.H{"topics": topics})
}

func (h *TopicHandler) Get(c *gin.Context) {
	topicID, err := pathUUID(c, "topic_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_topic_id", err)
		return
	}
	topic, err := h.topicService.GetTopic(c.Request.Context(), topicID)
	if err != nil {
		respondServiceError(c, "load_topic_failed", err)
		return
	}
	RespondOK(c, topic)
}

func (h *TopicHandler) Update(c *gin.Context) {
	topicID, err := pathUUID(c, "topic_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_topic_id", err)
		return
	}
	var req struct {
		Title *string `json:"title"`
		Order *int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	topic, err := h.topicService.UpdateTopic(c.Request.Context(), topicID, req.Title, req.Order)
	if err != nil {
		respondServiceError(c, "update_topic_failed", err)
		return
	}
	RespondOK(c, topic)
}

func (h *TopicHandler) Delete(c *gin.Context) {
	topicID, err := pathUUID(c, "topic_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_topic_id", err)
		return
	}
	if err := h.topicService.DeleteTopic(c.Request.Context(), topicID); err != nil {
		respondServiceError(c, "delete_topic_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *TopicHandler) ListSubtopics(c *gin.Context) {
	topicID, err := pathUUID(c, "topic_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_topic_id", err)
		return
	}
	subtopics, err := h.topicService.ListSubtopics(c.Request.Context(), topicID)
	if err != nil {
		respondServiceError(c, "load_subtopics_failed", err)
		return
	}
	RespondOK(c, gin.H{"subtopics": subtopics})
}

func (h *TopicHandler) CreateSubtopic(c *gin.Context) {
	topicID, err := pathUUID(c, "topic_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_topic_id", err)
		return
	}
	var req struct {
		Title   string `json:"title"`
		Details string `json:"details"`
		Order   int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	subtopic, err := h.topicService.CreateSubtopic(c.Request.Context(), topicID, req.Title, req.Details, req.Order)
	if err != nil {
		respondServiceError(c, "create_subtopic_failed", err)
		return
	}
	RespondCreated(c, subtopic)
}

func (h *TopicHandler) SetSubtopicCompletion(c *gin.Context) {
	subtopicID, err := pathUUID(c, "subtopic_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_subtopic_id", err)
		return
	}
	var req struct {
		IsCompleted bool `json:"is_completed"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request_body", err)
		return
	}
	subtopic, err := h.topicService.SetSubtopicCompletion(c.Request.Context(), subtopicID, req.IsCompleted)
	if err != nil {
		respondServiceError(c, "update_subtopic_failed", err)
		return
	}
	RespondOK(c, subtopic)
}

func (h *TopicHandler) DeleteSubtopic(c *gin.Context) {
	subtopicID, err := pathUUID(c, "subtopic_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_subtopic_id", err)
		return
	}
	if err := h.topicService.DeleteSubtopic(c.Request.Context(), subtopicID); err != nil {
		respondServiceError(c, "delete_subtopic_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}

func (h *TopicHandler) SuggestSubtopics(c *gin.Context) {
	topicID, err := pathUUID(c, "topic_id")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_topic_id", err)
		return
	}
	subtopics, err := h.topicService.SuggestSubtopics(c.Request.Context(), topicID)
	if err != nil {
		h.log.Error("Suggest subtopics failed", "topic_id", topicID, "error", err)
		respondServiceError(c, "suggest_subtopics_failed", err)
		return
	}
	RespondCreated(c, gin.H{"subtopics": subtopics})
}
