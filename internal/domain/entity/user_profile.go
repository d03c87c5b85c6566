package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the dashboard-facing profile for a user. Registration,
// sessions and billing live outside this service; the profile is read here to
// build insight context and to reach the user's push-notification token.
type UserProfile struct {
	UserID      uuid.UUID
	DisplayName string
	Currency    string // ISO 4217 code used when rendering amounts, e.g. "USD".
	FCMToken    string // Optional push token; empty when the user has no registered device.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
