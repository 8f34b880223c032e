package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/repos"
	"github.com/yungbote/studyplanner-backend/internal/requestdata"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

type CourseService interface {
	CreateCourse(ctx context.Context, title, description string) (*types.Course, error)
	ListCourses(ctx context.Context) ([]*types.Course, error)
	GetCourse(ctx context.Context, courseID uuid.UUID) (*types.Course, error)
	UpdateCourse(ctx context.Context, courseID uuid.UUID, title, description *string) (*types.Course, error)
	DeleteCourse(ctx context.Context, courseID uuid.UUID) error
}

type courseService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
}

func NewCourseService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
) CourseService {
	return &courseService{
		db:         db,
		log:        baseLog.With("service", "CourseService"),
		courseRepo: courseRepo,
	}
}

func (cs *courseService) CreateCourse(ctx context.Context, title, description string) (*types.Course, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("course title is required")
	}
	course := &types.Course{
		ID:          uuid.New(),
		UserID:      rd.UserID,
		Title:       title,
		Description: strings.TrimSpace(description),
	}
	if _, err := cs.courseRepo.Create(ctx, nil, []*types.Course{course}); err != nil {
		cs.log.Error("CreateCourse failed", "error", err)
		return nil, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

func (cs *courseService) ListCourses(ctx context.Context) ([]*types.Course, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	courses, err := cs.courseRepo.GetByUserIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (cs *courseService) GetCourse(ctx context.Context, courseID uuid.UUID) (*types.Course, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	return cs.ownedCourse(ctx, nil, courseID, rd.UserID)
}

func (cs *courseService) UpdateCourse(ctx context.Context, courseID uuid.UUID, title, description *string) (*types.Course, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("request data not found in context")
	}
	course, err := cs.ownedCourse(ctx, nil, courseID, rd.UserID)
	if err != nil {
		return nil, err
	}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, fmt.Errorf("course title cannot be empty")
		}
		course.Title = trimmed
	}
	if description != nil {
		course.Description = strings.TrimSpace(*description)
	}
	if err := cs.courseRepo.Update(ctx, nil, course); err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	return course, nil
}

func (cs *courseService) DeleteCourse(ctx context.Context, courseID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("request data not found in context")
	}
	if _, err := cs.ownedCourse(ctx, nil, courseID, rd.UserID); err != nil {
		return err
	}
	if err := cs.courseRepo.DeleteByIDs(ctx, nil, []uuid.UUID{courseID}); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

func (cs *courseService) ownedCourse(ctx context.Context, tx *gorm.DB, courseID, userID uuid.UUID) (*types.Course, error) {
	courses, err := cs.courseRepo.GetByIDs(ctx, tx, []uuid.UUID{courseID})
	if err != nil {
		return nil, fmt.Errorf("fetch course: %w", err)
	}
	if len(courses) == 0 || courses[0] == nil {
		return nil, ErrNotFound
	}
	if courses[0].UserID != userID {
		return nil, ErrNotFound
	}
	return courses[0], nil
}
