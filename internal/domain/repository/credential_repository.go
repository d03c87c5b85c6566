// Package repository defines the persistence interfaces the use case layer
// depends on, keeping it independent of any specific database driver.
package repository

import (
	"context"

	"finsight/internal/domain/entity"
	"finsight/internal/errors"

	"github.com/google/uuid"
)

// ErrCredentialNotFound is returned when no credential exists for the
// requested (user, provider) pair.
var ErrCredentialNotFound = errors.New("provider credential not found")

// CredentialRepository stores OAuth credentials for provider connections.
// Adapters themselves hold no credential state; they receive value copies
// resolved through this store. Save replaces the credential wholesale;
// concurrent refreshes for the same pair are last-write-wins.
type CredentialRepository interface {
	// FindByUserAndProvider retrieves the credential for one connection.
	FindByUserAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.ProviderCredential, error)

	// FindByUser retrieves all credentials a user has, one per connected provider.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProviderCredential, error)

	// Save inserts the credential or replaces the existing one for the same
	// (user, provider) pair.
	Save(ctx context.Context, cred *entity.ProviderCredential) error

	// Delete discards the credential. Used when the provider reports an
	// authentication failure a refresh cannot resolve.
	Delete(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error
}
