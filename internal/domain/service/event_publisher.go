package service

import (
	"context"

	"finsight/internal/domain/entity"
)

// SyncEvent describes the per-provider outcome of a completed sync run,
// published for downstream consumers (dashboards, audit trails).
type SyncEvent struct {
	UserID      string              `json:"user_id"`
	Provider    entity.ProviderType `json:"provider"`
	Status      entity.SyncStatus   `json:"status"`
	RecordCount int                 `json:"record_count"`
	RequestID   string              `json:"request_id,omitempty"`
}

// EventPublisher publishes sync events. Implementations must be safe for
// concurrent use; publishing is best-effort and must never fail a sync.
type EventPublisher interface {
	PublishSyncEvent(ctx context.Context, event *SyncEvent) error
	Close() error
}
