package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudyLog records a study session that actually happened. The topic link is
// optional and survives topic deletion; deleting the course removes its logs.
type StudyLog struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	CourseID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"course_id"`
	Course         *Course        `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	TopicID        *uuid.UUID     `gorm:"type:uuid;index" json:"topic_id,omitempty"`
	Topic          *Topic         `gorm:"constraint:OnDelete:SET NULL;foreignKey:TopicID;references:ID" json:"topic,omitempty"`
	Date           time.Time      `gorm:"column:date;type:date;not null;index" json:"date"`
	MinutesStudied int            `gorm:"column:minutes_studied;not null" json:"minutes_studied"`
	Notes          string         `gorm:"column:notes" json:"notes"`
	CreatedAt      time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StudyLog) TableName() string { return "study_log" }
