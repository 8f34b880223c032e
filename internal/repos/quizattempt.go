package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

// TopicScore is an aggregate row: average quiz score reached on one topic.
type TopicScore struct {
	TopicID      uuid.UUID `json:"topic_id"`
	AverageScore float64   `json:"average_score"`
}

type QuizAttemptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, attempts []*types.QuizAttempt) ([]*types.QuizAttempt, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QuizAttempt, error)
	AverageScoreByTopic(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]TopicScore, error)
}

type quizAttemptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizAttemptRepo(db *gorm.DB, baseLog *logger.Logger) QuizAttemptRepo {
	return &quizAttemptRepo{db: db, log: baseLog.With("repo", "QuizAttemptRepo")}
}

func (qar *quizAttemptRepo) Create(ctx context.Context, tx *gorm.DB, attempts []*types.QuizAttempt) ([]*types.QuizAttempt, error) {
	transaction := tx
	if transaction == nil {
		transaction = qar.db
	}
	if len(attempts) == 0 {
		return []*types.QuizAttempt{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (qar *quizAttemptRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QuizAttempt, error) {
	transaction := tx
	if transaction == nil {
		transaction = qar.db
	}
	var results []*types.QuizAttempt
	q := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("completed_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// AverageScoreByTopic averages attempt scores per topic by joining attempts
// through their quiz.
func (qar *quizAttemptRepo) AverageScoreByTopic(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]TopicScore, error) {
	transaction := tx
	if transaction == nil {
		transaction = qar.db
	}
	var results []TopicScore
	if err := transaction.WithContext(ctx).
		Model(&types.QuizAttempt{}).
		Select("quiz.topic_id AS topic_id, AVG(quiz_attempt.score) AS average_score").
		Joins("JOIN quiz ON quiz.id = quiz_attempt.quiz_id").
		Where("quiz_attempt.user_id = ?", userID).
		Group("quiz.topic_id").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
