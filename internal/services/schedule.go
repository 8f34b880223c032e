package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/planner"
	"github.com/yungbote/studyplanner-backend/internal/repos"
	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type ScheduleSummary struct {
	TotalEstimatedMinutes int `json:"total_estimated_minutes"`
	DaysWithStudy         int `json:"days_with_study"`
}

type WeeklyScheduleResponse struct {
	TopicID     uuid.UUID             `json:"topic_id"`
	TopicTitle  string                `json:"topic_title"`
	WeeklyPlan  []planner.DaySchedule `json:"weekly_plan"`
	Summary     ScheduleSummary       `json:"summary"`
	Unallocated []planner.Item        `json:"unallocated"`
}

// ScheduleService produces one-shot weekly schedules: it resolves the
// topic's pending subtopics, asks the sequencer for an ordered, estimated
// sequence, and distributes it over the user's weekly study plans.
type ScheduleService interface {
	GenerateWeeklySchedule(ctx context.Context, topicID uuid.UUID) (*WeeklyScheduleResponse, error)
}

type scheduleService struct {
	db            *gorm.DB
	log           *logger.Logger
	topicRepo     repos.TopicRepo
	subtopicRepo  repos.SubtopicRepo
	studyPlanRepo repos.StudyPlanRepo
	sequencer     SequencerService
}

func NewScheduleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	topicRepo repos.TopicRepo,
	subtopicRepo repos.SubtopicRepo,
	studyPlanRepo repos.StudyPlanRepo,
	sequencer SequencerService,
) ScheduleService {
	return &scheduleService{
		db:            db,
		log:           baseLog.With("service", "ScheduleService"),
		topicRepo:     topicRepo,
		subtopicRepo:  subtopicRepo,
		studyPlanRepo: studyPlanRepo,
		sequencer:     sequencer,
	}
}

func (ss *scheduleService) GenerateWeeklySchedule(ctx context.Context, topicID uuid.UUID) (*WeeklyScheduleResponse, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, fmt.Errorf("request data not set in context")
	}

	topics, err := ss.topicRepo.GetByIDs(ctx, nil, []uuid.UUID{topicID})
	if err != nil {
		return nil, fmt.Errorf("load topic: %w", err)
	}
	if len(topics) == 0 || topics[0] == nil {
		return nil, ErrNotFound
	}
	topic := topics[0]
	if topic.Course == nil || topic.Course.UserID != rd.UserID {
		return nil, ErrNotFound
	}

	pending, err := ss.subtopicRepo.GetPendingByTopicIDs(ctx, nil, []uuid.UUID{topicID})
	if err != nil {
		return nil, fmt.Errorf("load pending subtopics: %w", err)
	}
	if len(pending) == 0 {
		return nil, ErrNoSubtopics
	}
	labels := make([]string, 0, len(pending))
	for _, st := range pending {
		labels = append(labels, st.Title)
	}

	// Capacity is a precondition: without plans for this course the
	// allocator would just hand everything back as unallocated.
	plans, err := ss.studyPlanRepo.GetByUserAndCourse(ctx, nil, rd.UserID, topic.CourseID)
	if err != nil {
		return nil, fmt.Errorf("load study plans: %w", err)
	}
	capacity := CapacityFromPlans(plans)
	if len(capacity) == 0 {
		return nil, ErrNoCapacityDefined
	}

	// The sequencer call is the only blocking I/O here; no transaction is
	// held while waiting on it.
	items := ss.sequencer.FetchSequence(ctx, topic.Course.Title, topic.Title, labels)
	if len(items) == 0 {
		return nil, ErrNoSequence
	}

	schedule, unallocated := planner.Allocate(items, capacity)
	if len(unallocated) > 0 {
		ss.log.Info("Schedule generated with unallocated items",
			"topic_id", topicID, "unallocated", len(unallocated))
	}

	return &WeeklyScheduleResponse{
		TopicID:    topic.ID,
		TopicTitle: topic.Title,
		WeeklyPlan: schedule.Days,
		Summary: ScheduleSummary{
			TotalEstimatedMinutes: schedule.TotalEstimatedMinutes,
			DaysWithStudy:         schedule.DaysWithStudy,
		},
		Unallocated: unallocated,
	}, nil
}

// CapacityFromPlans folds weekly plan rows into the allocator's day-budget
// map, summing entries that land on the same weekday. Days with a
// non-positive budget are left out entirely.
func CapacityFromPlans(plans []*types.StudyPlan) map[int]int {
	capacity := map[int]int{}
	for _, plan := range plans {
		if plan == nil || plan.MinutesPlanned <= 0 {
			continue
		}
		if plan.DayOfWeek < 0 || plan.DayOfWeek > 6 {
			continue
		}
		capacity[plan.DayOfWeek] += plan.MinutesPlanned
	}
	return capacity
}
