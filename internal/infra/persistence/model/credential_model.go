package model

import (
	"time"

	"github.com/google/uuid"
)

// ProviderCredentialModel mirrors the 'provider_credentials' table: one row
// per (user, provider) connection, replaced wholesale on refresh.
type ProviderCredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_credentials_user_provider"`
	Provider     string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_credentials_user_provider"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text"`
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProviderCredentialModel) TableName() string {
	return "provider_credentials"
}
