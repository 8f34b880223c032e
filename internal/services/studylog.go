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

type StudyLogService interface {
	CreateLog(ctx context.Context, courseID uuid.UUID, topicID *uuid.UUID, date time.Time, minutesStudied int, notes string) (*types.StudyLog, error)
	ListLogs(ctx context.Context, limit int) ([]*types.StudyLog, error)
}

type studyLogService struct {
	db           *gorm.DB
	log          *logger.Logger
	studyLogRepo repos.StudyLogRepo
	courseRepo   repos.CourseRepo
	topicRepo    repos.TopicRepo
	cache        redisclient.Cache
}

func NewStudyLogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	studyLogRepo repos.StudyLogRepo,
	courseRepo repos.CourseRepo,
	topicRepo repos.TopicRepo,
	cache redisclient.Cache,
) StudyLogService {
	return &studyLogService{
		db:           db,
		log:          baseLog.With("service", "StudyLogService"),
		studyLogRepo: studyLogRepo,
		courseRepo:   courseRepo,
		topicRepo:    topicRepo,
		cache:        cache,
	}
}

func (sl *studyLogService) CreateLog(ctx context.Context, courseID uuid.UUID, topicID *uuid.UUID, date time.Time, minutesStudied int, notes string) (*types.StudyLog, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	if minutesStudied <= 0 {
		return nil, fmt.Errorf("minutes_studied must be positive")
	}
	courses, err := sl.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{courseID})
	if err != nil {
		return nil, fmt.Errorf("fetch course: %w", err)
	}
	if len(courses) == 0 || courses[0] == nil || courses[0].UserID != rd.UserID {
		return nil, ErrNotFound
	}
	if topicID != nil {
		topics, tErr := sl.topicRepo.GetByIDs(ctx, nil, []uuid.UUID{*topicID})
		if tErr != nil {
			return nil, fmt.Errorf("fetch topic: %w", tErr)
		}
		if len(topics) == 0 || topics[0] == nil || topics[0].CourseID != courseID {
			return nil, ErrNotFound
		}
	}
	entry := &types.StudyLog{
		ID:             uuid.New(),
		UserID:         rd.UserID,
		CourseID:       courseID,
		TopicID:        topicID,
		Date:           time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		MinutesStudied: minutesStudied,
		Notes:          notes,
	}
	if _, err := sl.studyLogRepo.Create(ctx, nil, []*types.StudyLog{entry}); err != nil {
		sl.log.Error("CreateLog failed", "error", err)
		return nil, fmt.Errorf("create study log: %w", err)
	}
	if sl.cache != nil {
		sl.cache.Invalidate(ctx, EffectivenessCacheKey(rd.UserID))
	}
	return entry, nil
}

func (sl *studyLogService) ListLogs(ctx context.Context, limit int) ([]*types.StudyLog, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	logs, err := sl.studyLogRepo.GetByUserID(ctx, nil, rd.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("list study logs: %w", err)
	}
	return logs, nil
}
