package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Topic struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CourseID           uuid.UUID      `gorm:"type:uuid;not null;index:idx_topic_course_title,unique" json:"course_id"`
	Course             *Course        `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	Title              string         `gorm:"column:title;not null;index:idx_topic_course_title,unique" json:"title"`
	SuggestedStudyPlan string         `gorm:"column:suggested_study_plan" json:"suggested_study_plan"`
	Order              int            `gorm:"column:position;not null;default:0" json:"order"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Topic) TableName() string { return "topic" }
