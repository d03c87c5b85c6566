package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel mirrors the 'user_profiles' table owned by the account
// service. This service reads it for insight context and push tokens.
type UserProfileModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName string    `gorm:"type:varchar(100)"`
	Currency    string    `gorm:"type:varchar(3);not null;default:'USD'"`
	FCMToken    string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
