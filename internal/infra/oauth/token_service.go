// Package oauth implements the OAuth token lifecycle for provider
// connections: authorization URLs, the one-time code exchange, and access
// token refresh.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finsight/config"
	"finsight/internal/domain/entity"
	"finsight/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultHTTPTimeout = 15 * time.Second

// tokenService is a stateless implementation of service.OAuthTokenService.
// Credentials go in and come out as value objects; persisting them is the
// caller's job, so concurrent sync runs for different users are safe.
type tokenService struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(cfg *config.Config, logger *slog.Logger) service.OAuthTokenService {
	return &tokenService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

// tokenResponse is the provider's token endpoint payload for both the
// authorization_code and refresh_token grants.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthorizationURL constructs the provider's authorization URL carrying the
// state parameter for CSRF protection.
func (s *tokenService) AuthorizationURL(provider entity.ProviderType, state string) (string, error) {
	pc, err := s.providerConfig(provider)
	if err != nil {
		return "", err
	}
	if pc.AuthURL == "" || pc.ClientID == "" {
		return "", &service.ConfigurationError{Provider: provider, Missing: "authUrl/clientId"}
	}

	params := url.Values{}
	params.Set("client_id", pc.ClientID)
	params.Set("redirect_uri", pc.RedirectURI)
	params.Set("scope", pc.Scopes)
	params.Set("response_type", "code")
	params.Set("state", state)

	return pc.AuthURL + "?" + params.Encode(), nil
}

// ExchangeCode exchanges an authorization code for a credential.
func (s *tokenService) ExchangeCode(ctx context.Context, provider entity.ProviderType, code string) (*entity.ProviderCredential, error) {
	pc, err := s.providerConfig(provider)
	if err != nil {
		return nil, err
	}
	if pc.ClientID == "" || pc.ClientSecret == "" || pc.TokenURL == "" {
		// The connect flow cannot proceed without client credentials; the
		// user-visible outcome is the same as a rejected code.
		return nil, &service.AuthError{Provider: provider, Reason: "client credentials are not configured"}
	}

	data := url.Values{}
	data.Set("client_id", pc.ClientID)
	data.Set("client_secret", pc.ClientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", pc.RedirectURI)

	token, err := s.postTokenRequest(ctx, provider, pc.TokenURL, data)
	if err != nil {
		return nil, err
	}

	now := s.now()

	return &entity.ProviderCredential{
		Provider:     provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    now.Add(time.Duration(token.ExpiresIn) * time.Second),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// EnsureFresh returns the credential unchanged while it is still fresh;
// otherwise it performs one refresh call and returns a replacement
// credential. The input is never mutated.
func (s *tokenService) EnsureFresh(ctx context.Context, cred *entity.ProviderCredential) (*entity.ProviderCredential, error) {
	if cred == nil {
		return nil, errors.New("credential is nil")
	}

	if cred.FreshUntil(s.now(), s.refreshMargin()) {
		return cred, nil
	}

	pc, err := s.providerConfig(cred.Provider)
	if err != nil {
		return nil, err
	}
	if cred.RefreshToken == "" {
		return nil, &service.AuthError{Provider: cred.Provider, Reason: "no refresh token available"}
	}

	data := url.Values{}
	data.Set("client_id", pc.ClientID)
	data.Set("client_secret", pc.ClientSecret)
	data.Set("refresh_token", cred.RefreshToken)
	data.Set("grant_type", "refresh_token")

	token, err := s.postTokenRequest(ctx, cred.Provider, pc.TokenURL, data)
	if err != nil {
		return nil, err
	}

	// Replace the credential wholesale. Providers that rotate refresh tokens
	// return a new one; otherwise the old refresh token stays valid.
	refreshed := *cred
	refreshed.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		refreshed.RefreshToken = token.RefreshToken
	}
	refreshed.ExpiresAt = s.now().Add(time.Duration(token.ExpiresIn) * time.Second)
	refreshed.UpdatedAt = s.now()

	s.logger.Debug("Refreshed provider access token",
		slog.String("provider", string(cred.Provider)),
		slog.Time("expiresAt", refreshed.ExpiresAt),
	)

	return &refreshed, nil
}

// postTokenRequest performs one form-encoded token endpoint call and
// classifies failures: 4xx means the grant was rejected (terminal), anything
// else is transient.
func (s *tokenService) postTokenRequest(ctx context.Context, provider entity.ProviderType, tokenURL string, data url.Values) (*tokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &service.TransientError{Provider: provider, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
		body, _ := io.ReadAll(resp.Body)

		return nil, &service.AuthError{
			Provider: provider,
			Reason:   "token endpoint returned " + resp.Status + ": " + string(body),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &service.TransientError{
			Provider: provider,
			Err:      errors.Errorf("token endpoint returned status %d", resp.StatusCode),
		}
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, errors.Wrap(err, "failed to decode token response")
	}
	if token.AccessToken == "" {
		return nil, &service.AuthError{Provider: provider, Reason: "token endpoint returned no access token"}
	}

	return &token, nil
}

func (s *tokenService) refreshMargin() time.Duration {
	if s.cfg.Integrations != nil && s.cfg.Integrations.RefreshMargin > 0 {
		return s.cfg.Integrations.RefreshMargin
	}

	return 2 * time.Minute
}

func (s *tokenService) providerConfig(provider entity.ProviderType) (*config.ProviderConfig, error) {
	if s.cfg.Integrations == nil {
		return nil, &service.ConfigurationError{Provider: provider, Missing: "integrations"}
	}

	switch provider {
	case entity.ProviderSales:
		if s.cfg.Integrations.Sales == nil {
			return nil, &service.ConfigurationError{Provider: provider, Missing: "integrations.sales"}
		}

		return s.cfg.Integrations.Sales, nil
	case entity.ProviderOpenFinance:
		if s.cfg.Integrations.OpenFinance == nil {
			return nil, &service.ConfigurationError{Provider: provider, Missing: "integrations.openFinance"}
		}

		return s.cfg.Integrations.OpenFinance, nil
	default:
		return nil, errors.Errorf("unknown provider: %s", provider)
	}
}
