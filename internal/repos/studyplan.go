package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/types"
)

// ErrDuplicatePlan signals a second plan entry for the same (user, course,
// weekday) triple, which the schema forbids.
var ErrDuplicatePlan = errors.New("study plan already exists for this course and weekday")

type StudyPlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plans []*types.StudyPlan) ([]*types.StudyPlan, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) ([]*types.StudyPlan, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.StudyPlan, error)
	GetByUserAndCourse(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) ([]*types.StudyPlan, error)
	Update(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) error
	DeleteByIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error
}

type studyPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyPlanRepo(db *gorm.DB, baseLog *logger.Logger) StudyPlanRepo {
	return &studyPlanRepo{db: db, log: baseLog.With("repo", "StudyPlanRepo")}
}

func (spr *studyPlanRepo) Create(ctx context.Context, tx *gorm.DB, plans []*types.StudyPlan) ([]*types.StudyPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	if len(plans) == 0 {
		return []*types.StudyPlan{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&plans).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicatePlan
		}
		return nil, err
	}
	return plans, nil
}

func (spr *studyPlanRepo) GetByIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) ([]*types.StudyPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	var results []*types.StudyPlan
	if len(planIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", planIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (spr *studyPlanRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.StudyPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	var results []*types.StudyPlan
	if err := transaction.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("day_of_week ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (spr *studyPlanRepo) GetByUserAndCourse(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) ([]*types.StudyPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	var results []*types.StudyPlan
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("day_of_week ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (spr *studyPlanRepo) Update(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) error {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	if err := transaction.WithContext(ctx).Save(plan).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePlan
		}
		return err
	}
	return nil
}

func (spr *studyPlanRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = spr.db
	}
	if len(planIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).
		Where("id IN ?", planIDs).
		Delete(&types.StudyPlan{}).Error
}

// isUniqueViolation reports whether err is a Postgres 23505 unique violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
