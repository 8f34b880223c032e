package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type SubtopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, subtopics []*types.Subtopic) ([]*types.Subtopic, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, subtopicIDs []uuid.UUID) ([]*types.Subtopic, error)
	GetByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.Subtopic, error)
	GetPendingByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.Subtopic, error)
	Update(ctx context.Context, tx *gorm.DB, subtopic *types.Subtopic) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, subtopicIDs []uuid.UUID) error
}

type subtopicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubtopicRepo(db *gorm.DB, baseLog *logger.Logger) SubtopicRepo {
	return &subtopicRepo{db: db, log: baseLog.With("repo", "SubtopicRepo")}
}

func (sr *subtopicRepo) Create(ctx context.Context, tx *gorm.DB, subtopics []*types.Subtopic) ([]*types.Subtopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(subtopics) == 0 {
		return []*types.Subtopic{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&subtopics).Error; err != nil {
		return nil, err
	}
	return subtopics, nil
}

func (sr *subtopicRepo) GetByIDs(ctx context.Context, tx *gorm.DB, subtopicIDs []uuid.UUID) ([]*types.Subtopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Subtopic
	if len(subtopicIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", subtopicIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *subtopicRepo) GetByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.Subtopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Subtopic
	if len(topicIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("topic_id IN ?", topicIDs).
		Order("position ASC, title ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetPendingByTopicIDs returns only subtopics not yet completed, in study
// order. This is the queue the schedule generator distributes.
func (sr *subtopicRepo) GetPendingByTopicIDs(ctx context.Context, tx *gorm.DB, topicIDs []uuid.UUID) ([]*types.Subtopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Subtopic
	if len(topicIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("topic_id IN ? AND is_completed = ?", topicIDs, false).
		Order("position ASC, title ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *subtopicRepo) Update(ctx context.Context, tx *gorm.DB, subtopic *types.Subtopic) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Save(subtopic).Error
}

func (sr *subtopicRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, subtopicIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if len(subtopicIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", subtopicIDs).
		Delete(&types.Subtopic{}).Error
}
