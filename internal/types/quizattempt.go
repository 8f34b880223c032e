package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizAttempt struct {
	ID                    uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User                  *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	QuizID                uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Quiz                  *Quiz          `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuizID;references:ID" json:"quiz,omitempty"`
	Score                 float64        `gorm:"column:score;not null" json:"score"`
	CorrectAnswersCount   int            `gorm:"column:correct_answers_count;not null;default:0" json:"correct_answers_count"`
	IncorrectAnswersCount int            `gorm:"column:incorrect_answers_count;not null;default:0" json:"incorrect_answers_count"`
	CompletedAt           time.Time      `gorm:"column:completed_at;not null;default:now()" json:"completed_at"`
	CreatedAt             time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (QuizAttempt) TableName() string { return "quiz_attempt" }
