package usecase

import (
	"context"

	"finsight/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderSyncResult describes the outcome of syncing a single provider
type ProviderSyncResult struct {
	Provider    entity.ProviderType `json:"provider"`
	Status      entity.SyncStatus   `json:"status"`
	Mode        entity.ProviderMode `json:"mode"`
	RecordCount int                 `json:"record_count"`
	Inserted    int                 `json:"inserted"`
	Updated     int                 `json:"updated"`
	Message     string              `json:"message,omitempty"`
}

// SyncOutput aggregates per-provider results for a full sync run
type SyncOutput struct {
	Results []*ProviderSyncResult `json:"results"`
}

// SyncUsecase defines the interface for transaction synchronization use cases
type SyncUsecase interface {
	// SyncAll fetches and stores transactions from every registered provider.
	// Provider failures are isolated; the run always returns a result per provider.
	SyncAll(ctx context.Context, userID uuid.UUID) (*SyncOutput, error)

	// SyncProvider fetches and stores transactions from a single provider
	SyncProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*ProviderSyncResult, error)
}
