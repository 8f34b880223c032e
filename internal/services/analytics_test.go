package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/repos"
	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type fakeStudyLogRepo struct {
	dates      []time.Time
	windowLogs []*types.StudyLog
	windowFrom time.Time
	windowTo   time.Time
}

func (f *fakeStudyLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.StudyLog) ([]*types.StudyLog, error) {
	return logs, nil
}

func (f *fakeStudyLogRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.StudyLog, error) {
	return nil, nil
}

func (f *fakeStudyLogRepo) GetByUserIDInWindow(ctx context.Context, tx *gorm.DB, userID uuid.UUID, from, to time.Time) ([]*types.StudyLog, error) {
	f.windowFrom = from
	f.windowTo = to
	var out []*types.StudyLog
	for _, l := range f.windowLogs {
		if l.Date.Before(from) || l.Date.After(to) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeStudyLogRepo) GetDistinctDates(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]time.Time, error) {
	return f.dates, nil
}

func (f *fakeStudyLogRepo) TotalMinutesByTopic(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]repos.TopicMinutes, error) {
	return nil, nil
}

type fakeQuizAttemptRepo struct{}

func (f *fakeQuizAttemptRepo) Create(ctx context.Context, tx *gorm.DB, attempts []*types.QuizAttempt) ([]*types.QuizAttempt, error) {
	return attempts, nil
}

func (f *fakeQuizAttemptRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.QuizAttempt, error) {
	return nil, nil
}

func (f *fakeQuizAttemptRepo) AverageScoreByTopic(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]repos.TopicScore, error) {
	return nil, nil
}

// Sessions logged on the oldest day of the trailing week must survive the
// window query even though the clock carries a time of day and session dates
// sit at midnight.
func TestEngagementWindowCoversOldestDay(t *testing.T) {
	userID := uuid.New()
	courseID := uuid.New()
	// Sunday afternoon; the trailing week starts Monday 2025-08-18.
	now := time.Date(2025, 8, 24, 15, 42, 0, 0, time.UTC)
	oldest := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)

	logRepo := &fakeStudyLogRepo{
		dates: []time.Time{oldest},
		windowLogs: []*types.StudyLog{
			{ID: uuid.New(), UserID: userID, CourseID: courseID, Date: oldest, MinutesStudied: 40},
		},
	}
	svc := NewAnalyticsService(nil, testLogger(t), logRepo, &fakeStudyPlanRepo{}, &fakeQuizAttemptRepo{}, nil).(*analyticsService)
	svc.now = func() time.Time { return now }

	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{UserID: userID})
	resp, err := svc.Engagement(ctx)
	if err != nil {
		t.Fatalf("Engagement failed: %v", err)
	}

	wantFrom := oldest
	wantTo := time.Date(2025, 8, 24, 0, 0, 0, 0, time.UTC)
	if !logRepo.windowFrom.Equal(wantFrom) || !logRepo.windowTo.Equal(wantTo) {
		t.Fatalf("window = [%v, %v], want [%v, %v]", logRepo.windowFrom, logRepo.windowTo, wantFrom, wantTo)
	}

	if len(resp.WeeklyMinutes) != 7 {
		t.Fatalf("weekly series has %d entries, want 7", len(resp.WeeklyMinutes))
	}
	first := resp.WeeklyMinutes[0]
	if first.Date != "2025-08-18" || first.Minutes != 40 {
		t.Fatalf("oldest day = %+v, want 40 minutes on 2025-08-18", first)
	}
}
