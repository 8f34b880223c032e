package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subtopic struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TopicID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"topic_id"`
	Topic       *Topic         `gorm:"constraint:OnDelete:CASCADE;foreignKey:TopicID;references:ID" json:"topic,omitempty"`
	Title       string         `gorm:"column:title;not null" json:"title"`
	Details     string         `gorm:"column:details" json:"details"`
	Order       int            `gorm:"column:position;not null;default:0" json:"order"`
	IsCompleted bool           `gorm:"column:is_completed;not null;default:false" json:"is_completed"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Subtopic) TableName() string { return "subtopic" }
