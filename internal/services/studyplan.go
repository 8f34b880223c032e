package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/planner"
	"github.com/yungbote/studyplanner-backend/internal/repos"
	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

// ErrDuplicateStudyPlan is returned when a plan already exists for the same
// course and day of the week.
var ErrDuplicateStudyPlan = errors.New("a study plan already exists for this course and day")

type StudyPlanService interface {
	CreatePlan(ctx context.Context, courseID uuid.UUID, dayOfWeek, minutesPlanned int) (*types.StudyPlan, error)
	ListPlans(ctx context.Context) ([]*types.StudyPlan, error)
	UpdatePlan(ctx context.Context, planID uuid.UUID, dayOfWeek, minutesPlanned *int) (*types.StudyPlan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
}

type studyPlanService struct {
	db            *gorm.DB
	log           *logger.Logger
	studyPlanRepo repos.StudyPlanRepo
	courseRepo    repos.CourseRepo
}

func NewStudyPlanService(
	db *gorm.DB,
	baseLog *logger.Logger,
	studyPlanRepo repos.StudyPlanRepo,
	courseRepo repos.CourseRepo,
) StudyPlanService {
	return &studyPlanService{
		db:            db,
		log:           baseLog.With("service", "StudyPlanService"),
		studyPlanRepo: studyPlanRepo,
		courseRepo:    courseRepo,
	}
}

func validDayOfWeek(day int) bool { return day >= 0 && day <= 6 }

func (ss *studyPlanService) CreatePlan(ctx context.Context, courseID uuid.UUID, dayOfWeek, minutesPlanned int) (*types.StudyPlan, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	if !validDayOfWeek(dayOfWeek) {
		return nil, fmt.Errorf("day_of_week must be between 0 (%s) and 6 (%s)", planner.DayName(0), planner.DayName(6))
	}
	if minutesPlanned <= 0 {
		return nil, fmt.Errorf("minutes_planned must be positive")
	}
	courses, err := ss.courseRepo.GetByIDs(ctx, nil, []uuid.UUID{courseID})
	if err != nil {
		return nil, fmt.Errorf("fetch course: %w", err)
	}
	if len(courses) == 0 || courses[0] == nil || courses[0].UserID != rd.UserID {
		return nil, ErrNotFound
	}
	plan := &types.StudyPlan{
		ID:             uuid.New(),
		UserID:         rd.UserID,
		CourseID:       courseID,
		DayOfWeek:      dayOfWeek,
		MinutesPlanned: minutesPlanned,
	}
	if _, err := ss.studyPlanRepo.Create(ctx, nil, []*types.StudyPlan{plan}); err != nil {
		if errors.Is(err, repos.ErrDuplicatePlan) {
			return nil, ErrDuplicateStudyPlan
		}
		ss.log.Error("CreatePlan failed", "error", err)
		return nil, fmt.Errorf("create study plan: %w", err)
	}
	return plan, nil
}

func (ss *studyPlanService) ListPlans(ctx context.Context) ([]*types.StudyPlan, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	plans, err := ss.studyPlanRepo.GetByUserID(ctx, nil, rd.UserID)
	if err != nil {
		return nil, fmt.Errorf("list study plans: %w", err)
	}
	return plans, nil
}

func (ss *studyPlanService) UpdatePlan(ctx context.Context, planID uuid.UUID, dayOfWeek, minutesPlanned *int) (*types.StudyPlan, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	plan, err := ss.ownedPlan(ctx, planID, rd.UserID)
	if err != nil {
		return nil, err
	}
	if dayOfWeek != nil {
		if !validDayOfWeek(*dayOfWeek) {
			return nil, fmt.Errorf("day_of_week must be between 0 and 6")
		}
		plan.DayOfWeek = *dayOfWeek
	}
	if minutesPlanned != nil {
		if *minutesPlanned <= 0 {
			return nil, fmt.Errorf("minutes_planned must be positive")
		}
		plan.MinutesPlanned = *minutesPlanned
	}
	if err := ss.studyPlanRepo.Update(ctx, nil, plan); err != nil {
		if errors.Is(err, repos.ErrDuplicatePlan) {
			return nil, ErrDuplicateStudyPlan
		}
		return nil, fmt.Errorf("update study plan: %w", err)
	}
	return plan, nil
}

func (ss *studyPlanService) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("request data not found in context")
	}
	if _, err := ss.ownedPlan(ctx, planID, rd.UserID); err != nil {
		return err
	}
	if err := ss.studyPlanRepo.DeleteByIDs(ctx, nil, []uuid.UUID{planID}); err != nil {
		return fmt.Errorf("delete study plan: %w", err)
	}
	return nil
}

func (ss *studyPlanService) ownedPlan(ctx context.Context, planID, userID uuid.UUID) (*types.StudyPlan, error) {
	plans, err := ss.studyPlanRepo.GetByIDs(ctx, nil, []uuid.UUID{planID})
	if err != nil {
		return nil, fmt.Errorf("fetch study plan: %w", err)
	}
	if len(plans) == 0 || plans[0] == nil || plans[0].UserID != userID {
		return nil, ErrNotFound
	}
	return plans[0], nil
}
