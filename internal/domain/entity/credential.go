package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderCredential represents the OAuth credential state for one connected
// (user, provider) pair. It is an immutable value object: a refresh replaces
// the whole credential, fields are never patched individually, so concurrent
// sync runs can safely hold their own copies.
type ProviderCredential struct {
	ID           uuid.UUID    // The unique ID for this credential record itself.
	UserID       uuid.UUID    // Links the credential to the user who authorized the connection.
	Provider     ProviderType // The external provider this credential belongs to.
	AccessToken  string       // Bearer token used on data-fetch calls.
	RefreshToken string       // Long-lived token used to obtain a new access token.
	ExpiresAt    time.Time    // When the access token stops being accepted by the provider.
	CreatedAt    time.Time    // When the user first authorized this connection.
	UpdatedAt    time.Time    // When the credential was last replaced by a refresh.
}

// FreshUntil reports whether the access token is still valid with at least
// the given safety margin remaining before expiry.
func (c *ProviderCredential) FreshUntil(now time.Time, margin time.Duration) bool {
	return now.Add(margin).Before(c.ExpiresAt)
}

// Usable reports whether the credential carries enough state to attempt a
// live call at all. A credential without an access token resolves to
// sandbox mode rather than failing the request.
func (c *ProviderCredential) Usable() bool {
	return c != nil && c.AccessToken != ""
}
