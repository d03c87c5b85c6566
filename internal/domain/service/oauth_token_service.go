package service

import (
	"context"

	"finsight/internal/domain/entity"
)

// OAuthTokenService owns the OAuth token lifecycle for provider connections.
// It is stateless: persistence of exchanged or refreshed credentials is the
// caller's responsibility, so it is safe to call from concurrent sync runs.
type OAuthTokenService interface {
	// AuthorizationURL builds the provider's authorization URL carrying the
	// given state parameter.
	AuthorizationURL(provider entity.ProviderType, state string) (string, error)

	// ExchangeCode performs the one-time authorization_code grant. The
	// returned credential has no UserID set; the caller binds and persists
	// it. Fails with *AuthError when the provider rejects the code or the
	// client credentials are unset.
	ExchangeCode(ctx context.Context, provider entity.ProviderType, code string) (*entity.ProviderCredential, error)

	// EnsureFresh returns the credential unchanged when its expiry is more
	// than the safety margin away; otherwise it performs one refresh_token
	// grant and returns a replacement credential with a later expiry.
	// Fails with *AuthError when the refresh token itself is rejected
	// (terminal; the caller must prompt re-authorization, not retry).
	EnsureFresh(ctx context.Context, cred *entity.ProviderCredential) (*entity.ProviderCredential, error)
}
