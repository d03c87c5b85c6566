package repository

import (
	"context"
	"time"

	"finsight/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertResult reports how many records an upsert batch actually changed.
type UpsertResult struct {
	Inserted int
	Updated  int
}

// TransactionRepository persists canonical transaction records.
type TransactionRepository interface {
	// UpsertBatch inserts or updates records keyed by (provider,
	// external_id). Re-running the same sync with identical upstream data
	// yields zero net new records.
	UpsertBatch(ctx context.Context, records []*entity.Transaction) (*UpsertResult, error)

	// FindRecentByUser returns the user's records dated on or after since,
	// newest first, capped at limit.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]*entity.Transaction, error)
}
