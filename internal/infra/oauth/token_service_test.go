package oauth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"finsight/config"
	"finsight/internal/domain/entity"
	"finsight/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTokenServiceForTest(t *testing.T, tokenURL string) *tokenService {
	t.Helper()

	cfg := &config.Config{
		Integrations: &config.IntegrationsConfig{
			RefreshMargin: 2 * time.Minute,
			Sales: &config.ProviderConfig{
				ClientID:     "sales-client",
				ClientSecret: "sales-secret",
				AuthURL:      "https://auth.sales.example.com/authorize",
				TokenURL:     tokenURL,
				RedirectURI:  "https://app.example.com/integrations/callback",
				Scopes:       "orders:read",
			},
			OpenFinance: &config.ProviderConfig{
				ClientID:     "bank-client",
				ClientSecret: "bank-secret",
				TokenURL:     tokenURL,
			},
		},
	}

	svc, ok := NewTokenService(cfg, newDiscardLogger()).(*tokenService)
	require.True(t, ok)

	return svc
}

func TestTokenService_AuthorizationURL_CarriesState(t *testing.T) {
	svc := newTokenServiceForTest(t, "https://token.example.com")

	rawURL, err := svc.AuthorizationURL(entity.ProviderSales, "random-state")
	require.NoError(t, err)

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "auth.sales.example.com", parsed.Host)
	assert.Equal(t, "random-state", parsed.Query().Get("state"))
	assert.Equal(t, "sales-client", parsed.Query().Get("client_id"))
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
}

func TestTokenService_ExchangeCode_BuildsCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "sales-client", r.PostForm.Get("client_id"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "new-access",
			"refresh_token": "new-refresh",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	}))
	defer server.Close()

	svc := newTokenServiceForTest(t, server.URL)

	cred, err := svc.ExchangeCode(context.Background(), entity.ProviderSales, "the-code")
	require.NoError(t, err)
	assert.Equal(t, "new-access", cred.AccessToken)
	assert.Equal(t, "new-refresh", cred.RefreshToken)
	assert.Equal(t, entity.ProviderSales, cred.Provider)
	assert.True(t, cred.ExpiresAt.After(time.Now().Add(55*time.Minute)))
}

func TestTokenService_ExchangeCode_MissingClientCredentials(t *testing.T) {
	svc := newTokenServiceForTest(t, "https://token.example.com")
	svc.cfg.Integrations.Sales.ClientSecret = ""

	_, err := svc.ExchangeCode(context.Background(), entity.ProviderSales, "the-code")

	var authErr *service.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, entity.ProviderSales, authErr.Provider)
}

func TestTokenService_EnsureFresh_FreshCredentialSkipsEndpoint(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	svc := newTokenServiceForTest(t, server.URL)

	cred := &entity.ProviderCredential{
		Provider:     entity.ProviderSales,
		AccessToken:  "still-good",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	fresh, err := svc.EnsureFresh(context.Background(), cred)
	require.NoError(t, err)
	assert.Same(t, cred, fresh, "fresh credential must be returned unchanged")
	assert.Zero(t, calls.Load(), "no token endpoint call for a fresh credential")
}

func TestTokenService_EnsureFresh_ExpiringCredentialRefreshesOnce(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "old-refresh", r.PostForm.Get("refresh_token"))

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "rotated-access",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	svc := newTokenServiceForTest(t, server.URL)

	cred := &entity.ProviderCredential{
		Provider:     entity.ProviderOpenFinance,
		AccessToken:  "expiring",
		RefreshToken: "old-refresh",
		ExpiresAt:    time.Now().Add(30 * time.Second),
	}

	fresh, err := svc.EnsureFresh(context.Background(), cred)
	require.NoError(t, err)
	require.NotSame(t, cred, fresh)
	assert.Equal(t, "rotated-access", fresh.AccessToken)
	// The provider omitted a new refresh token, so the old one is kept.
	assert.Equal(t, "old-refresh", fresh.RefreshToken)
	assert.True(t, fresh.ExpiresAt.After(cred.ExpiresAt))
	assert.Equal(t, int32(1), calls.Load())

	// The input credential is never mutated.
	assert.Equal(t, "expiring", cred.AccessToken)
}

func TestTokenService_EnsureFresh_RejectedRefreshIsAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	}))
	defer server.Close()

	svc := newTokenServiceForTest(t, server.URL)

	cred := &entity.ProviderCredential{
		Provider:     entity.ProviderSales,
		AccessToken:  "expired",
		RefreshToken: "revoked",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}

	_, err := svc.EnsureFresh(context.Background(), cred)

	var authErr *service.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestTokenService_EnsureFresh_ServerErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newTokenServiceForTest(t, server.URL)

	cred := &entity.ProviderCredential{
		Provider:     entity.ProviderSales,
		AccessToken:  "expired",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(-time.Minute),
	}

	_, err := svc.EnsureFresh(context.Background(), cred)

	var transientErr *service.TransientError
	require.ErrorAs(t, err, &transientErr)
}

func TestTokenService_EnsureFresh_NoRefreshTokenIsAuthError(t *testing.T) {
	svc := newTokenServiceForTest(t, "https://token.example.com")

	cred := &entity.ProviderCredential{
		Provider:    entity.ProviderSales,
		AccessToken: "expired",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}

	_, err := svc.EnsureFresh(context.Background(), cred)

	var authErr *service.AuthError
	require.ErrorAs(t, err, &authErr)
}
