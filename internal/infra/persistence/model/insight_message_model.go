package model

import (
	"time"

	"github.com/google/uuid"
)

// InsightMessageModel mirrors the 'insight_messages' table: the persisted
// chat history between the user and the insight engine.
type InsightMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (InsightMessageModel) TableName() string {
	return "insight_messages"
}
