// Package impl contains the concrete use case implementations wired together
// by the application entrypoint.
package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"finsight/config"
	deliverycontext "finsight/internal/delivery/context"
	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/domain/service"
	"finsight/internal/usecase"

	"github.com/google/uuid"
)

// ErrUnknownProvider is returned when a sync targets a provider no adapter serves
var ErrUnknownProvider = errors.New("unknown provider")

type syncService struct {
	cfg             *config.Config
	adapters        []service.ProviderAdapter
	tokenService    service.OAuthTokenService
	credentialRepo  repository.CredentialRepository
	transactionRepo repository.TransactionRepository
	profileRepo     repository.UserProfileRepository
	publisher       service.EventPublisher
	notificationSvc service.NotificationService
	logger          *slog.Logger
	now             func() time.Time
}

// NewSyncService creates a new sync service instance. The notification
// service may be nil when push delivery is not configured.
func NewSyncService(
	cfg *config.Config,
	adapters []service.ProviderAdapter,
	tokenService service.OAuthTokenService,
	credentialRepo repository.CredentialRepository,
	transactionRepo repository.TransactionRepository,
	profileRepo repository.UserProfileRepository,
	publisher service.EventPublisher,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		cfg:             cfg,
		adapters:        adapters,
		tokenService:    tokenService,
		credentialRepo:  credentialRepo,
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		publisher:       publisher,
		notificationSvc: notificationSvc,
		logger:          logger,
		now:             time.Now,
	}
}

// SyncAll fetches and stores transactions from every registered provider.
// Each adapter runs in its own goroutine under its own timeout; one
// provider's failure never blocks or fails the others.
func (s *syncService) SyncAll(ctx context.Context, userID uuid.UUID) (*usecase.SyncOutput, error) {
	results := make([]*usecase.ProviderSyncResult, len(s.adapters))

	var wg sync.WaitGroup
	for i, adapter := range s.adapters {
		wg.Add(1)
		go func(i int, adapter service.ProviderAdapter) {
			defer wg.Done()
			results[i] = s.syncOne(ctx, userID, adapter)
		}(i, adapter)
	}
	wg.Wait()

	return &usecase.SyncOutput{Results: results}, nil
}

// SyncProvider fetches and stores transactions from a single provider
func (s *syncService) SyncProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*usecase.ProviderSyncResult, error) {
	for _, adapter := range s.adapters {
		if adapter.Provider() == provider {
			return s.syncOne(ctx, userID, adapter), nil
		}
	}

	return nil, ErrUnknownProvider
}

// log returns the request-scoped logger when the delivery layer installed
// one, falling back to the service logger for non-HTTP callers.
func (s *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// syncOne runs the full lifecycle for one provider: credential refresh,
// bounded fetch, idempotent persistence, event publishing. It never returns
// an error; every failure mode maps to a result status.
func (s *syncService) syncOne(ctx context.Context, userID uuid.UUID, adapter service.ProviderAdapter) *usecase.ProviderSyncResult {
	provider := adapter.Provider()

	cred, err := s.credentialRepo.FindByUserAndProvider(ctx, userID, provider)
	if err != nil && !errors.Is(err, repository.ErrCredentialNotFound) {
		s.log(ctx).Error("failed to load provider credential",
			slog.String("provider", string(provider)),
			slog.Any("error", err),
		)

		return s.failedResult(provider, "could not load provider credential")
	}

	if cred != nil {
		fresh, err := s.tokenService.EnsureFresh(ctx, cred)
		switch {
		case err == nil:
			if fresh != cred {
				// Persist the refreshed credential so the next run skips the
				// refresh. Last write wins on concurrent refreshes.
				if saveErr := s.credentialRepo.Save(ctx, fresh); saveErr != nil {
					s.log(ctx).Warn("failed to persist refreshed credential",
						slog.String("provider", string(provider)),
						slog.Any("error", saveErr),
					)
				}
			}
			cred = fresh
		case isAuthError(err):
			return s.handleAuthFailure(ctx, userID, provider, err)
		default:
			if !cred.FreshUntil(s.now(), 0) {
				// The stored token is already expired, so a live call would
				// come back 401 and tear down a credential that the next
				// refresh can still revive. Degrade this run and keep it.
				s.log(ctx).Warn("token refresh unavailable for expired credential, degrading sync",
					slog.String("provider", string(provider)),
					slog.Any("error", err),
				)

				return s.failedResult(provider, "token refresh temporarily unavailable")
			}

			// The token is inside the refresh margin but still accepted by
			// the provider; proceed with it and let the adapter resolve its
			// own fallback.
			s.log(ctx).Warn("token refresh failed, proceeding with stored credential",
				slog.String("provider", string(provider)),
				slog.Any("error", err),
			)
		}
	}

	window := service.WindowEndingNow(s.now(), s.cfg.Integrations.SyncWindowDays)

	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.Integrations.AdapterTimeout)
	defer cancel()

	fetched, err := adapter.Fetch(fetchCtx, userID, cred, window)
	if err != nil {
		if isAuthError(err) {
			return s.handleAuthFailure(ctx, userID, provider, err)
		}
		s.log(ctx).Error("provider fetch failed",
			slog.String("provider", string(provider)),
			slog.Any("error", err),
		)

		return s.failedResult(provider, "provider fetch failed")
	}

	upserted, err := s.transactionRepo.UpsertBatch(ctx, fetched.Records)
	if err != nil {
		s.log(ctx).Error("failed to persist transactions",
			slog.String("provider", string(provider)),
			slog.Any("error", err),
		)

		return s.failedResult(provider, "could not store fetched transactions")
	}

	status := entity.SyncStatusOK
	if fetched.Mode == entity.ModeSandbox || fetched.Degraded {
		status = entity.SyncStatusDegraded
	}

	result := &usecase.ProviderSyncResult{
		Provider:    provider,
		Status:      status,
		Mode:        fetched.Mode,
		RecordCount: len(fetched.Records),
		Inserted:    upserted.Inserted,
		Updated:     upserted.Updated,
	}
	s.publishResult(ctx, userID, result)

	return result
}

// handleAuthFailure discards the broken credential, notifies the user that
// re-authorization is needed, and reports the connection as broken.
func (s *syncService) handleAuthFailure(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, cause error) *usecase.ProviderSyncResult {
	s.log(ctx).Warn("provider rejected credentials, re-authorization required",
		slog.String("provider", string(provider)),
		slog.Any("error", cause),
	)

	if err := s.credentialRepo.Delete(ctx, userID, provider); err != nil &&
		!errors.Is(err, repository.ErrCredentialNotFound) {
		s.log(ctx).Error("failed to discard rejected credential",
			slog.String("provider", string(provider)),
			slog.Any("error", err),
		)
	}

	s.notifyReauthorization(ctx, userID, provider)

	result := &usecase.ProviderSyncResult{
		Provider: provider,
		Status:   entity.SyncStatusAuthRequired,
		Mode:     entity.ModeLive,
		Message:  fmt.Sprintf("%s rejected the stored authorization, please reconnect", provider.Label()),
	}
	s.publishResult(ctx, userID, result)

	return result
}

// notifyReauthorization sends a best-effort push telling the user to
// reconnect the provider. Missing tokens and delivery failures are logged
// and swallowed.
func (s *syncService) notifyReauthorization(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) {
	if s.notificationSvc == nil {
		return
	}

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			s.log(ctx).Warn("failed to load profile for re-auth notification",
				slog.Any("error", err),
			)
		}

		return
	}
	if profile.FCMToken == "" {
		return
	}

	title := fmt.Sprintf("Reconnect %s", provider.Label())
	body := fmt.Sprintf("Your %s connection expired. Open the app to reconnect and keep your data in sync.", provider.Label())
	data := map[string]string{
		"type":     "provider_auth_required",
		"provider": string(provider),
	}

	if err := s.notificationSvc.SendSingleNotification(ctx, profile.FCMToken, title, body, data); err != nil {
		s.log(ctx).Warn("failed to send re-auth notification",
			slog.String("provider", string(provider)),
			slog.Any("error", err),
		)
	}
}

// publishResult emits a sync event for downstream consumers. Publishing is
// best-effort and never affects the sync outcome.
func (s *syncService) publishResult(ctx context.Context, userID uuid.UUID, result *usecase.ProviderSyncResult) {
	event := &service.SyncEvent{
		UserID:      userID.String(),
		Provider:    result.Provider,
		Status:      result.Status,
		RecordCount: result.RecordCount,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := s.publisher.PublishSyncEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to publish sync event",
			slog.String("provider", string(result.Provider)),
			slog.Any("error", err),
		)
	}
}

func (s *syncService) failedResult(provider entity.ProviderType, message string) *usecase.ProviderSyncResult {
	return &usecase.ProviderSyncResult{
		Provider: provider,
		Status:   entity.SyncStatusDegraded,
		Mode:     entity.ModeSandbox,
		Message:  message,
	}
}

func isAuthError(err error) bool {
	var authErr *service.AuthError

	return errors.As(err, &authErr)
}
