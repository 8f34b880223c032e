package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	redisclient "github.com/yungbote/studyplanner-backend/internal/clients/redis"
	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/repos"
	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type QuizAttemptService interface {
	RecordAttempt(ctx context.Context, quizID uuid.UUID, correctCount, incorrectCount int) (*types.QuizAttempt, error)
	ListAttempts(ctx context.Context, limit int) ([]*types.QuizAttempt, error)
}

type quizAttemptService struct {
	db              *gorm.DB
	log             *logger.Logger
	quizRepo        repos.QuizRepo
	quizAttemptRepo repos.QuizAttemptRepo
	cache           redisclient.Cache
}

func NewQuizAttemptService(
	db *gorm.DB,
	baseLog *logger.Logger,
	quizRepo repos.QuizRepo,
	quizAttemptRepo repos.QuizAttemptRepo,
	cache redisclient.Cache,
) QuizAttemptService {
	return &quizAttemptService{
		db:              db,
		log:             baseLog.With("service", "QuizAttemptService"),
		quizRepo:        quizRepo,
		quizAttemptRepo: quizAttemptRepo,
		cache:           cache,
	}
}

// RecordAttempt stores a finished quiz attempt. The score is the percentage of
// correct answers out of all answered questions.
func (qs *quizAttemptService) RecordAttempt(ctx context.Context, quizID uuid.UUID, correctCount, incorrectCount int) (*types.QuizAttempt, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	if correctCount < 0 || incorrectCount < 0 {
		return nil, fmt.Errorf("answer counts cannot be negative")
	}
	total := correctCount + incorrectCount
	if total == 0 {
		return nil, fmt.Errorf("an attempt must contain at least one answered question")
	}
	quiz, err := qs.quizRepo.GetOwnedByID(ctx, nil, quizID, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetch quiz: %w", err)
	}
	if quiz == nil {
		return nil, ErrNotFound
	}
	attempt := &types.QuizAttempt{
		ID:                    uuid.New(),
		UserID:                rd.UserID,
		QuizID:                quizID,
		Score:                 float64(correctCount) / float64(total) * 100,
		CorrectAnswersCount:   correctCount,
		IncorrectAnswersCount: incorrectCount,
		CompletedAt:           time.Now(),
	}
	if _, err := qs.quizAttemptRepo.Create(ctx, nil, []*types.QuizAttempt{attempt}); err != nil {
		qs.log.Error("RecordAttempt failed", "error", err)
		return nil, fmt.Errorf("create quiz attempt: %w", err)
	}
	if qs.cache != nil {
		qs.cache.Invalidate(ctx, EffectivenessCacheKey(rd.UserID))
	}
	return attempt, nil
}

func (qs *quizAttemptService) ListAttempts(ctx context.Context, limit int) ([]*types.QuizAttempt, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	attempts, err := qs.quizAttemptRepo.GetByUserID(ctx, nil, rd.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("list quiz attempts: %w", err)
	}
	return attempts, nil
}
