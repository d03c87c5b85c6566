package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/domain/service"
	"finsight/internal/infra/oauth"
	"finsight/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrInvalidState is returned when the OAuth callback carries an unknown,
	// replayed or expired state parameter
	ErrInvalidState = errors.New("invalid or expired authorization state")
)

type connectionService struct {
	tokenService   service.OAuthTokenService
	credentialRepo repository.CredentialRepository
	stateStore     *oauth.StateStore
	logger         *slog.Logger
}

// NewConnectionService creates a new connection service instance
func NewConnectionService(
	tokenService service.OAuthTokenService,
	credentialRepo repository.CredentialRepository,
	stateStore *oauth.StateStore,
	logger *slog.Logger,
) usecase.ConnectionUsecase {
	return &connectionService{
		tokenService:   tokenService,
		credentialRepo: credentialRepo,
		stateStore:     stateStore,
		logger:         logger,
	}
}

// BeginConnect starts the authorization flow for a provider and returns
// the URL the user should be redirected to
func (s *connectionService) BeginConnect(_ context.Context, userID uuid.UUID, provider entity.ProviderType) (string, error) {
	if !provider.IsValid() {
		return "", ErrUnknownProvider
	}

	state := s.stateStore.Issue(userID, provider)

	url, err := s.tokenService.AuthorizationURL(provider, state)
	if err != nil {
		return "", fmt.Errorf("failed to build authorization URL: %w", err)
	}

	return url, nil
}

// CompleteConnect finishes the authorization flow with the code and state
// returned by the provider callback
func (s *connectionService) CompleteConnect(ctx context.Context, state, code string) (*usecase.ConnectionInfo, error) {
	userID, provider, ok := s.stateStore.Consume(state)
	if !ok {
		return nil, ErrInvalidState
	}

	cred, err := s.tokenService.ExchangeCode(ctx, provider, code)
	if err != nil {
		return nil, err
	}

	cred.UserID = userID
	if err := s.credentialRepo.Save(ctx, cred); err != nil {
		return nil, fmt.Errorf("failed to store credential: %w", err)
	}

	s.logger.Info("provider connected",
		slog.String("provider", string(provider)),
	)

	expiresAt := cred.ExpiresAt

	return &usecase.ConnectionInfo{
		Provider:  provider,
		Label:     provider.Label(),
		Connected: true,
		ExpiresAt: &expiresAt,
	}, nil
}

// ListConnections reports the connection state of every registered provider
func (s *connectionService) ListConnections(ctx context.Context, userID uuid.UUID) ([]*usecase.ConnectionInfo, error) {
	creds, err := s.credentialRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	byProvider := make(map[entity.ProviderType]*entity.ProviderCredential, len(creds))
	for _, cred := range creds {
		byProvider[cred.Provider] = cred
	}

	providers := []entity.ProviderType{entity.ProviderSales, entity.ProviderOpenFinance}
	infos := make([]*usecase.ConnectionInfo, 0, len(providers))
	for _, provider := range providers {
		info := &usecase.ConnectionInfo{
			Provider: provider,
			Label:    provider.Label(),
		}
		if cred, exists := byProvider[provider]; exists {
			info.Connected = true
			expiresAt := cred.ExpiresAt
			info.ExpiresAt = &expiresAt
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// Disconnect removes the stored credential for a provider
func (s *connectionService) Disconnect(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) error {
	if !provider.IsValid() {
		return ErrUnknownProvider
	}

	if err := s.credentialRepo.Delete(ctx, userID, provider); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return err
		}

		return fmt.Errorf("failed to delete credential: %w", err)
	}

	return nil
}
