package usecase

import (
	"context"
	"time"

	"finsight/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectionInfo summarizes the link state between a user and a provider
type ConnectionInfo struct {
	Provider  entity.ProviderType `json:"provider"`
	Label     string              `json:"label"`
	Connected bool                `json:"connected"`
	ExpiresAt *time.Time          `json:"expires_at,omitempty"`
}

// ConnectionUsecase defines the interface for provider connection use cases
type ConnectionUsecase interface {
	// BeginConnect starts the authorization flow for a provider and returns
	// the URL the user should be redirected to
	BeginConnect(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (string, error)

	// CompleteConnect finishes the authorization flow with the code and state
	// returned by the provider callback
	CompleteConnect(ctx context.Context, state, code string) (*ConnectionInfo, error)

	// ListConnections reports the connection state of every registered provider
	ListConnections(ctx context.Context, userID uuid.UUID) ([]*ConnectionInfo, error)

	// Disconnect removes the stored credential for a provider
	Disconnect(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
}
