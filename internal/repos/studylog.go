package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

// TopicMinutes is an aggregate row: total minutes logged against one topic.
type TopicMinutes struct {
	TopicID      uuid.UUID `json:"topic_id"`
	TopicTitle   string    `json:"topic_title"`
	TotalMinutes int       `json:"total_minutes"`
}

type StudyLogRepo interface {
	Create(ctx context.Context, tx *gorm.DB, logs []*types.StudyLog) ([]*types.StudyLog, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StudyLog, error)
	GetByUserIDInWindow(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.StudyLog, error)
	GetDistinctDates(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]time.Time, error)
	TotalMinutesByTopic(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]TopicMinutes, error)
}

type studyLogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyLogRepo(db *gorm.DB, baseLog *logger.Logger) StudyLogRepo {
	return &studyLogRepo{db: db, log: baseLog.With("repo", "StudyLogRepo")}
}

func (slr *studyLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.StudyLog) ([]*types.StudyLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	if len(logs) == 0 {
		return []*types.StudyLog{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// GetByUserID lists logs most recent first, the display order.
func (slr *studyLogRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StudyLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	var results []*types.StudyLog
	q := transaction.WithContext(ctx).
		Preload("Course").
		Preload("Topic").
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (slr *studyLogRepo) GetByUserIDInWindow(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.StudyLog, error) {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	var results []*types.StudyLog
	if err := transaction.WithContext(ctx).
		Preload("Course").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (slr *studyLogRepo) GetDistinctDates(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]time.Time, error) {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	var results []time.Time
	if err := transaction.WithContext(ctx).
		Model(&types.StudyLog{}).
		Where("user_id = ?", userID).
		Distinct().
		Order("date ASC").
		Pluck("date", &results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// TotalMinutesByTopic sums logged minutes per topic; logs without a topic
// reference are excluded since they cannot join quiz data.
func (slr *studyLogRepo) TotalMinutesByTopic(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]TopicMinutes, error) {
	transaction := tx
	if transaction == nil {
		transaction = slr.db
	}
	var results []TopicMinutes
	if err := transaction.WithContext(ctx).
		Model(&types.StudyLog{}).
		Select("study_log.topic_id AS topic_id, topic.title AS topic_title, SUM(study_log.minutes_studied) AS total_minutes").
		Joins("JOIN topic ON topic.id = study_log.topic_id").
		Where("study_log.user_id = ? AND study_log.topic_id IS NOT NULL", userID).
		Group("study_log.topic_id, topic.title").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
