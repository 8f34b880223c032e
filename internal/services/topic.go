package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/repos"
	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type TopicService interface {
	CreateTopic(ctx context.Context, courseID uuid.UUID, title string, order int) (*types.Topic, error)
	ListTopics(ctx context.Context, courseID uuid.UUID) ([]*types.Topic, error)
	GetTopic(ctx context.Context, topicID uuid.UUID) (*types.Topic, error)
	UpdateTopic(ctx context.Context, topicID uuid.UUID, title *string, order *int) (*types.Topic, error)
	DeleteTopic(ctx context.Context, topicID uuid.UUID) error

	ListSubtopics(ctx context.Context, topicID uuid.UUID) ([]*types.Subtopic, error)
	CreateSubtopic(ctx context.Context, topicID uuid.UUID, title, details string, order int) (*types.Subtopic, error)
	SetSubtopicCompletion(ctx context.Context, subtopicID uuid.UUID, completed bool) (*types.Subtopic, error)
	DeleteSubtopic(ctx context.Context, subtopicID uuid.UUID) error

	SuggestSubtopics(ctx context.Context, topicID uuid.UUID) ([]*types.Subtopic, error)
}

type topicService struct {
	db           *gorm.DB
	log          *logger.Logger
	courseRepo   repos.CourseRepo
	topicRepo    repos.TopicRepo
	subtopicRepo repos.SubtopicRepo
	aiClient     AIClient
}

func NewTopicService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	topicRepo repos.TopicRepo,
	subtopicRepo repos.SubtopicRepo,
	aiClient AIClient,
) TopicService {
	return &topicService{
		db:           db,
		log:          baseLog.With("service", "TopicService"),
		courseRepo:   courseRepo,
		topicRepo:    topicRepo,
		subtopicRepo: subtopicRepo,
		aiClient:     aiClient,
	}
}

func (ts *topicService) CreateTopic(ctx context.Context, courseID uuid.UUID, title string, order int) (*types.Topic, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	if err := ts.requireOwnedCourse(ctx, courseID, rd.UserID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("topic title is required")
	}
	topic := &types.Topic{
		ID:       uuid.New(),
		CourseID: courseID,
		Title:    title,
		Order:    order,
	}
	if _, err := ts.topicRepo.Create(ctx, nil, []*types.Topic{topic}); err != nil {
		ts.log.Error("CreateTopic failed", "error", err)
		return nil, fmt.Errorf("create topic: %w", err)
	}
	return topic, nil
}

func (ts *topicService) ListTopics(ctx context.Context, courseID uuid.UUID) ([]*types.Topic, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	if err := ts.requireOwnedCourse(ctx, courseID, rd.UserID); err != nil {
		return nil, err
	}
	topics, err := ts.topicRepo.GetByCourseIDs(ctx, nil, []uuid.UUID{courseID})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

func (ts *topicService) GetTopic(ctx context.Context, topicID uuid.UUID) (*types.Topic, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	return ts.ownedTopic(ctx, nil, topicID, rd.UserID)
}

func (ts *topicService) UpdateTopic(ctx context.Context, topicID uuid.UUID, title *string, order *int) (*types.Topic, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	topic, err := ts.ownedTopic(ctx, nil, topicID, rd.UserID)
	if err != nil {
		return nil, err
	}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, fmt.Errorf("topic title cannot be empty")
		}
		topic.Title = trimmed
	}
	if order != nil {
		topic.Order = *order
	}
	if err := ts.topicRepo.Update(ctx, nil, topic); err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}
	return topic, nil
}

func (ts *topicService) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("request data not found in context")
	}
	if _, err := ts.ownedTopic(ctx, nil, topicID, rd.UserID); err != nil {
		return err
	}
	if err := ts.topicRepo.DeleteByIDs(ctx, nil, []uuid.UUID{topicID}); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	return nil
}

func (ts *topicService) ListSubtopics(ctx context.Context, topicID uuid.UUID) ([]*types.Subtopic, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	if _, err := ts.ownedTopic(ctx, nil, topicID, rd.UserID); err != nil {
		return nil, err
	}
	subtopics, err := ts.subtopicRepo.GetByTopicIDs(ctx, nil, []uuid.UUID{topicID})
	if err != nil {
		return nil, fmt.Errorf("list subtopics: %w", err)
	}
	return subtopics, nil
}

func (ts *topicService) CreateSubtopic(ctx context.Context, topicID uuid.UUID, title, details string, order int) (*types.Subtopic, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	if _, err := ts.ownedTopic(ctx, nil, topicID, rd.UserID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("subtopic title is required")
	}
	subtopic := &types.Subtopic{
		ID:      uuid.New(),
		TopicID: topicID,
		Title:   title,
		Details: strings.TrimSpace(details),
		Order:   order,
	}
	if _, err := ts.subtopicRepo.Create(ctx, nil, []*types.Subtopic{subtopic}); err != nil {
		return nil, fmt.Errorf("create subtopic: %w", err)
	}
	return subtopic, nil
}

func (ts *topicService) SetSubtopicCompletion(ctx context.Context, subtopicID uuid.UUID, completed bool) (*types.Subtopic, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	subtopics, err := ts.subtopicRepo.GetByIDs(ctx, nil, []uuid.UUID{subtopicID})
	if err != nil {
		return nil, fmt.Errorf("fetch subtopic: %w", err)
	}
	if len(subtopics) == 0 || subtopics[0] == nil {
		return nil, ErrNotFound
	}
	subtopic := subtopics[0]
	if _, err := ts.ownedTopic(ctx, nil, subtopic.TopicID, rd.UserID); err != nil {
		return nil, err
	}
	subtopic.IsCompleted = completed
	if err := ts.subtopicRepo.Update(ctx, nil, subtopic); err != nil {
		return nil, fmt.Errorf("update subtopic: %w", err)
	}
	return subtopic, nil
}

func (ts *topicService) DeleteSubtopic(ctx context.Context, subtopicID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("request data not found in context")
	}
	subtopics, err := ts.subtopicRepo.GetByIDs(ctx, nil, []uuid.UUID{subtopicID})
	if err != nil {
		return fmt.Errorf("fetch subtopic: %w", err)
	}
	if len(subtopics) == 0 || subtopics[0] == nil {
		return ErrNotFound
	}
	if _, err := ts.ownedTopic(ctx, nil, subtopics[0].TopicID, rd.UserID); err != nil {
		return err
	}
	if err := ts.subtopicRepo.DeleteByIDs(ctx, nil, []uuid.UUID{subtopicID}); err != nil {
		return fmt.Errorf("delete subtopic: %w", err)
	}
	return nil
}

type suggestedSubtopic struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

type suggestedSubtopicsPayload struct {
	Subtopics []suggestedSubtopic `json:"subtopics"`
}

// SuggestSubtopics asks the AI model for a short ordered breakdown of a topic
// and persists the resulting subtopics in a single transaction. New entries
// are appended after any existing subtopics.
func (ts *topicService) SuggestSubtopics(ctx context.Context, topicID uuid.UUID) ([]*types.Subtopic, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	topic, err := ts.ownedTopic(ctx, nil, topicID, rd.UserID)
	if err != nil {
		return nil, err
	}
	if ts.aiClient == nil {
		return nil, fmt.Errorf("suggest subtopics: no AI client configured")
	}

	courseTitle := ""
	if topic.Course != nil {
		courseTitle = topic.Course.Title
	}
	prompt := fmt.Sprintf(
		"You are a study planning assistant. Break the topic '%s' from the course '%s' "+
			"into 5 to 7 subtopics a student should work through in order. "+
			"Respond with a JSON object with a single key 'subtopics' holding an array of objects, "+
			"each with 'title' (short) and 'details' (one or two sentences).",
		topic.Title, courseTitle,
	)
	completion, err := ts.aiClient.Chat(ctx, []AIMessage{
		{Role: "user", Content: prompt},
	}, &AIOptions{Temperature: 0.7, JSONMode: true})
	if err != nil {
		ts.log.Error("SuggestSubtopics AI call failed", "topic_id", topicID, "error", err)
		return nil, fmt.Errorf("suggest subtopics: %w", err)
	}

	var payload suggestedSubtopicsPayload
	if err := json.Unmarshal([]byte(completion.Content), &payload); err != nil {
		ts.log.Warn("SuggestSubtopics returned unparseable JSON", "topic_id", topicID, "error", err)
		return nil, fmt.Errorf("suggest subtopics: unexpected model response")
	}
	suggestions := make([]suggestedSubtopic, 0, len(payload.Subtopics))
	for _, s := range payload.Subtopics {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		suggestions = append(suggestions, s)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("suggest subtopics: model returned no usable subtopics")
	}

	var created []*types.Subtopic
	err = ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, exErr := ts.subtopicRepo.GetByTopicIDs(ctx, tx, []uuid.UUID{topicID})
		if exErr != nil {
			return fmt.Errorf("load existing subtopics: %w", exErr)
		}
		nextOrder := 0
		for _, s := range existing {
			if s != nil && s.Order >= nextOrder {
				nextOrder = s.Order + 1
			}
		}
		batch := make([]*types.Subtopic, 0, len(suggestions))
		for i, s := range suggestions {
			batch = append(batch, &types.Subtopic{
				ID:      uuid.New(),
				TopicID: topicID,
				Title:   strings.TrimSpace(s.Title),
				Details: strings.TrimSpace(s.Details),
				Order:   nextOrder + i,
			})
		}
		persisted, cErr := ts.subtopicRepo.Create(ctx, tx, batch)
		if cErr != nil {
			return fmt.Errorf("persist suggested subtopics: %w", cErr)
		}
		created = persisted
		return nil
	})
	if err != nil {
		return nil, err
	}
	ts.log.Info("Suggested subtopics persisted", "topic_id", topicID, "count", len(created))
	return created, nil
}

// requireOwnedCourse resolves the course and rejects it when it belongs to a
// different user. Foreign courses surface as ErrNotFound so their existence
// is not disclosed.
func (ts *topicService) requireOwnedCourse(ctx context.Context, courseID, userID uuid.UUID) error {
	courses, err := ts.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{courseID})
	if err != nil {
		return fmt.Errorf("fetch course: %w", err)
	}
	if len(courses) == 0 || courses[0] == nil || courses[0].UserID != userID {
		return ErrNotFound
	}
	return nil
}

func (ts *topicService) ownedTopic(ctx context.Context, tx *gorm.DB, topicID, userID uuid.UUID) (*types.Topic, error) {
	topics, err := ts.topicRepo.GetByIDs(ctx, tx, []uuid.UUID{topicID})
	if err != nil {
		return nil, fmt.Errorf("fetch topic: %w", err)
	}
	if len(topics) == 0 || topics[0] == nil {
		return nil, ErrNotFound
	}
	topic := topics[0]
	if topic.Course == nil || topic.Course.UserID != userID {
		return nil, ErrNotFound
	}
	return topic, nil
}
