package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

// QuizRepo is read-only: quizzes are seeded externally and this service only
// needs to resolve one before recording an attempt against it.
type QuizRepo interface {
	// GetOwnedByID resolves a quiz only when its topic's course belongs to
	// the given user; the ownership filter lives in the join.
	GetOwnedByID(ctx context.Context, tx *gorm.DB, quizID, userID uuid.UUID) (*types.Quiz, error)
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	return &quizRepo{db: db, log: baseLog.With("repo", "QuizRepo")}
}

func (qr *quizRepo) GetOwnedByID(ctx context.Context, tx *gorm.DB, quizID, userID uuid.UUID) (*types.Quiz, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var results []*types.Quiz
	if err := transaction.WithContext(ctx).
		Joins("JOIN topic ON topic.id = quiz.topic_id").
		Joins("JOIN course ON course.id = topic.course_id").
		Where("quiz.id = ? AND course.user_id = ?", quizID, userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}
