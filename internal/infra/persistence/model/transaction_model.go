package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table. The composite unique
// index on (user_id, provider, external_id) is what makes re-syncs
// idempotent: upserts conflict on it instead of inserting duplicates.
type TransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_transactions_sync_key"`
	Provider    string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_transactions_sync_key"`
	ExternalID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_transactions_sync_key"`
	Description string    `gorm:"type:varchar(512);not null"`
	Amount      float64   `gorm:"type:numeric(14,2);not null;check:amount > 0"`
	Type        string    `gorm:"type:varchar(16);not null"`
	Source      string    `gorm:"type:varchar(64);not null"`
	Category    string    `gorm:"type:varchar(64)"`
	Date        time.Time `gorm:"type:date;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
