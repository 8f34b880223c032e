package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyPlan is a recurring weekly study budget: "study course X for N minutes
// every <weekday>". Days use 0=Monday .. 6=Sunday.
type StudyPlan struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index:idx_plan_user_course_day,unique" json:"user_id"`
	User           *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CourseID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_plan_user_course_day,unique" json:"course_id"`
	Course         *Course        `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	DayOfWeek      int            `gorm:"column:day_of_week;not null;index:idx_plan_user_course_day,unique" json:"day_of_week"`
	MinutesPlanned int            `gorm:"column:minutes_planned;not null" json:"minutes_planned"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StudyPlan) TableName() string { return "study_plan" }
