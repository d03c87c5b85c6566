package model

import (
	"time"

	"github.com/google/uuid"
)

// GoalModel mirrors the 'goals' table owned by the dashboard service.
type GoalModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(100);not null"`
	TargetAmount  float64   `gorm:"type:numeric(14,2);not null"`
	CurrentAmount float64   `gorm:"type:numeric(14,2);not null;default:0"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (GoalModel) TableName() string {
	return "goals"
}
