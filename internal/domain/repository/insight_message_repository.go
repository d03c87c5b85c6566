package repository

import (
	"context"

	"finsight/internal/domain/entity"

	"github.com/google/uuid"
)

// InsightMessageRepository persists the insight chat history.
type InsightMessageRepository interface {
	// Create appends one message to the user's history.
	Create(ctx context.Context, message *entity.InsightMessage) error

	// FindRecentByUser returns the user's most recent messages in
	// chronological order, capped at limit.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.InsightMessage, error)
}
