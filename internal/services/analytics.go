package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/analytics"
	redisclient "github.com/yungbote/studyplanner-backend/internal/clients/redis"
	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/repos"
	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

const effectivenessCacheTTL = 5 * time.Minute

// EffectivenessCacheKey names the cached study-effectiveness payload for a
// user. Writers that change the inputs (study logs, quiz attempts) invalidate
// this key.
func EffectivenessCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("analytics:effectiveness:%s", userID)
}

type EffectivenessResponse struct {
	CorrelationCoefficient *float64                   `json:"correlation_coefficient"`
	Interpretation         string                     `json:"interpretation"`
	DataPoints             int                        `json:"data_points"`
	TopicData              []analytics.TopicAggregate `json:"topic_data"`
}

type EngagementResponse struct {
	CurrentStreak   int                    `json:"current_streak"`
	BestStreak      int                    `json:"best_streak"`
	RegularityScore float64                `json:"regularity_score"`
	WeeklyMinutes   []analytics.DayMinutes `json:"weekly_minutes"`
	Summary         string                 `json:"summary"`
}

type WeeklyProgressResponse struct {
	WindowStart string                     `json:"window_start"`
	WindowEnd   string                     `json:"window_end"`
	ByCourse    []analytics.CourseProgress `json:"by_course"`
	ByDay       []analytics.DayProgress    `json:"by_day_of_week"`
}

// AnalyticsService derives study-effectiveness, engagement, and
// planned-vs-completed reports from the user's ledger. Every report is
// well-formed even with no data at all; "not computable" travels inside the
// payload, never as an error.
type AnalyticsService interface {
	StudyEffectiveness(ctx context.Context) (*EffectivenessResponse, error)
	Engagement(ctx context.Context) (*EngagementResponse, error)
	WeeklyProgress(ctx context.Context) (*WeeklyProgressResponse, error)
}

type analyticsService struct {
	db              *gorm.DB
	log             *logger.Logger
	studyLogRepo    repos.StudyLogRepo
	studyPlanRepo   repos.StudyPlanRepo
	quizAttemptRepo repos.QuizAttemptRepo
	cache           redisclient.Cache
	now             func() time.Time
}

func NewAnalyticsService(
	db *gorm.DB,
	baseLog *logger.Logger,
	studyLogRepo repos.StudyLogRepo,
	studyPlanRepo repos.StudyPlanRepo,
	quizAttemptRepo repos.QuizAttemptRepo,
	cache redisclient.Cache,
) AnalyticsService {
	return &analyticsService{
		db:              db,
		log:             baseLog.With("service", "AnalyticsService"),
		studyLogRepo:    studyLogRepo,
		studyPlanRepo:   studyPlanRepo,
		quizAttemptRepo: quizAttemptRepo,
		cache:           cache,
		now:             time.Now,
	}
}

func (as *analyticsService) StudyEffectiveness(ctx context.Context) (*EffectivenessResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := EffectivenessCacheKey(userID)
	if as.cache != nil {
		if raw, ok := as.cache.Get(ctx, cacheKey); ok {
			var cached EffectivenessResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var minutes []repos.TopicMinutes
	var scores []repos.TopicScore
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		minutes, err = as.studyLogRepo.TotalMinutesByTopic(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		scores, err = as.quizAttemptRepo.AverageScoreByTopic(gctx, nil, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load topic aggregates: %w", err)
	}

	aggregates := joinTopicAggregates(minutes, scores)
	samples := make([]analytics.Sample, len(aggregates))
	for i, agg := range aggregates {
		samples[i] = analytics.Sample{
			MinutesStudied: float64(agg.TotalMinutesStudied),
			AverageScore:   agg.AverageQuizScore,
		}
	}
	trend := analytics.ComputeTrend(samples)

	resp := &EffectivenessResponse{
		CorrelationCoefficient: trend.Coefficient,
		Interpretation:         trend.Interpretation,
		DataPoints:             len(aggregates),
		TopicData:              aggregates,
	}

	if as.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			as.cache.Set(ctx, cacheKey, raw, effectivenessCacheTTL)
		}
	}
	return resp, nil
}

func (as *analyticsService) Engagement(ctx context.Context) (*EngagementResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	today := as.now()
	// Session dates are stored at midnight, so the window bounds must sit on
	// day boundaries or the oldest day falls out of the comparison.
	dayEnd := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	dayStart := dayEnd.AddDate(0, 0, -6)

	var dates []time.Time
	var weekLogs []*types.StudyLog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dates, err = as.studyLogRepo.GetDistinctDates(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		weekLogs, err = as.studyLogRepo.GetByUserIDInWindow(gctx, nil, userID, dayStart, dayEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load engagement data: %w", err)
	}

	streak := analytics.ComputeStreaks(dates, today)
	return &EngagementResponse{
		CurrentStreak:   streak.Current,
		BestStreak:      streak.Longest,
		RegularityScore: streak.Regularity,
		WeeklyMinutes:   analytics.WeeklyMinutes(weekLogs, today),
		Summary:         analytics.EngagementSummary(streak),
	}, nil
}

func (as *analyticsService) WeeklyProgress(ctx context.Context) (*WeeklyProgressResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	weekStart, weekEnd := currentWeekWindow(as.now())

	var plans []*types.StudyPlan
	var logs []*types.StudyLog
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		plans, err = as.studyPlanRepo.GetByUserID(gctx, nil, userID)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = as.studyLogRepo.GetByUserIDInWindow(gctx, nil, userID, weekStart, weekEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load progress data: %w", err)
	}

	report := analytics.AggregateProgress(plans, logs)
	return &WeeklyProgressResponse{
		WindowStart: weekStart.Format("2006-01-02"),
		WindowEnd:   weekEnd.Format("2006-01-02"),
		ByCourse:    report.ByCourse,
		ByDay:       report.ByDay,
	}, nil
}

// joinTopicAggregates keeps only topics that carry both a study-minute total
// and a quiz-score average; topics missing either cannot participate in the
// correlation.
func joinTopicAggregates(minutes []repos.TopicMinutes, scores []repos.TopicScore) []analytics.TopicAggregate {
	scoreByTopic := make(map[uuid.UUID]float64, len(scores))
	for _, s := range scores {
		scoreByTopic[s.TopicID] = s.AverageScore
	}
	aggregates := make([]analytics.TopicAggregate, 0, len(minutes))
	for _, m := range minutes {
		score, ok := scoreByTopic[m.TopicID]
		if !ok {
			continue
		}
		aggregates = append(aggregates, analytics.TopicAggregate{
			TopicID:             m.TopicID,
			TopicTitle:          m.TopicTitle,
			TotalMinutesStudied: m.TotalMinutes,
			AverageQuizScore:    roundScore(score),
		})
	}
	return aggregates
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}

// currentWeekWindow returns the Monday-to-Sunday span containing now.
func currentWeekWindow(now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("request data not set in context")
	}
	return rd.UserID, nil
}
