package impl

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"finsight/internal/domain/entity"
	"finsight/internal/domain/repository"
	"finsight/internal/domain/service"
	mockRepo "finsight/internal/mocks/repository"
	mockSvc "finsight/internal/mocks/service"
	"finsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service          usecase.SyncUsecase
	salesAdapter     *mockSvc.MockProviderAdapter
	bankAdapter      *mockSvc.MockProviderAdapter
	tokenService     *mockSvc.MockOAuthTokenService
	credentialRepo   *mockRepo.MockCredentialRepository
	transactionRepo  *mockRepo.MockTransactionRepository
	profileRepo      *mockRepo.MockUserProfileRepository
	publisher        *mockSvc.MockEventPublisher
	notificationSvc  *mockSvc.MockNotificationService
	withNotification bool
}

func createTestSyncService(t *testing.T, withNotification bool) syncServiceFixtures {
	salesAdapter := mockSvc.NewMockProviderAdapter(t)
	bankAdapter := mockSvc.NewMockProviderAdapter(t)
	tokenService := mockSvc.NewMockOAuthTokenService(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)
	profileRepo := mockRepo.NewMockUserProfileRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	salesAdapter.EXPECT().Provider().Return(entity.ProviderSales).Maybe()
	bankAdapter.EXPECT().Provider().Return(entity.ProviderOpenFinance).Maybe()

	var notifier service.NotificationService
	if withNotification {
		notifier = notificationSvc
	}

	svc := NewSyncService(
		newTestConfig(),
		[]service.ProviderAdapter{salesAdapter, bankAdapter},
		tokenService,
		credentialRepo,
		transactionRepo,
		profileRepo,
		publisher,
		notifier,
		newDiscardLogger(),
	)

	return syncServiceFixtures{
		service:          svc,
		salesAdapter:     salesAdapter,
		bankAdapter:      bankAdapter,
		tokenService:     tokenService,
		credentialRepo:   credentialRepo,
		transactionRepo:  transactionRepo,
		profileRepo:      profileRepo,
		publisher:        publisher,
		notificationSvc:  notificationSvc,
		withNotification: withNotification,
	}
}

func testCredential(userID uuid.UUID, provider entity.ProviderType) *entity.ProviderCredential {
	return &entity.ProviderCredential{
		ID:           uuid.New(),
		UserID:       userID,
		Provider:     provider,
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func testRecords(userID uuid.UUID, provider entity.ProviderType, count int) []*entity.Transaction {
	records := make([]*entity.Transaction, 0, count)
	for i := range count {
		records = append(records, &entity.Transaction{
			UserID:     userID,
			Provider:   provider,
			ExternalID: uuid.NewString(),
			Amount:     float64(i + 1),
			Type:       entity.TransactionIncome,
			Source:     provider.Label(),
			Date:       entity.NormalizeDate(time.Now()),
		})
	}

	return records
}

func TestSyncService_SyncAll_IsolatesProviderFailures(t *testing.T) {
	fx := createTestSyncService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	salesCred := testCredential(userID, entity.ProviderSales)
	bankCred := testCredential(userID, entity.ProviderOpenFinance)

	// Sales rejects the stored authorization.
	fx.credentialRepo.EXPECT().
		FindByUserAndProvider(ctx, userID, entity.ProviderSales).
		Return(salesCred, nil)
	fx.tokenService.EXPECT().
		EnsureFresh(ctx, salesCred).
		Return(nil, &service.AuthError{Provider: entity.ProviderSales, Reason: "refresh token revoked"})
	fx.credentialRepo.EXPECT().
		Delete(ctx, userID, entity.ProviderSales).
		Return(nil)

	// The bank provider succeeds live.
	fx.credentialRepo.EXPECT().
		FindByUserAndProvider(ctx, userID, entity.ProviderOpenFinance).
		Return(bankCred, nil)
	fx.tokenService.EXPECT().
		EnsureFresh(ctx, bankCred).
		Return(bankCred, nil)
	fx.bankAdapter.EXPECT().
		Fetch(mock.Anything, userID, bankCred, mock.AnythingOfType("service.SyncWindow")).
		Return(&service.FetchResult{
			Records: testRecords(userID, entity.ProviderOpenFinance, 3),
			Mode:    entity.ModeLive,
		}, nil)
	fx.transactionRepo.EXPECT().
		UpsertBatch(mock.Anything, mock.AnythingOfType("[]*entity.Transaction")).
		Return(&repository.UpsertResult{Inserted: 3}, nil)

	fx.publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.AnythingOfType("*service.SyncEvent")).
		Return(nil).
		Times(2)

	output, err := fx.service.SyncAll(ctx, userID)
	require.NoError(t, err)
	require.Len(t, output.Results, 2)

	byProvider := make(map[entity.ProviderType]*usecase.ProviderSyncResult)
	for _, result := range output.Results {
		byProvider[result.Provider] = result
	}

	assert.Equal(t, entity.SyncStatusAuthRequired, byProvider[entity.ProviderSales].Status)
	assert.NotEmpty(t, byProvider[entity.ProviderSales].Message)

	assert.Equal(t, entity.SyncStatusOK, byProvider[entity.ProviderOpenFinance].Status)
	assert.Equal(t, 3, byProvider[entity.ProviderOpenFinance].RecordCount)
	assert.Equal(t, 3, byProvider[entity.ProviderOpenFinance].Inserted)
}

func TestSyncService_SyncProvider_NoCredentialFallsBackToSandbox(t *testing.T) {
	fx := createTestSyncService(t, false)

	ctx := context.Background()
	userID := uuid.New()

	fx.credentialRepo.EXPECT().
		FindByUserAndProvider(ctx, userID, entity.ProviderSales).
		Return(nil, repository.ErrCredentialNotFound)

	fx.salesAdapter.EXPECT().
		Fetch(mock.Anything, userID, (*entity.ProviderCredential)(nil), mock.AnythingOfType("service.SyncWindow")).
		Return(&service.FetchResult{
			Records:  testRecords(userID, entity.ProviderSales, 5),
			Mode:     entity.ModeSandbox,
			Degraded: true,
		}, nil)
	fx.transactionRepo.EXPECT().
		UpsertBatch(mock.Anything, mock.AnythingOfType("[]*entity.Transaction")).
		Return(&repository.UpsertResult{Inserted: 5}, nil)
	fx.publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.AnythingOfType("*service.SyncEvent")).
		Return(nil)

	result, err := fx.service.SyncProvider(ctx, userID, entity.ProviderSales)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusDegraded, result.Status)
	assert.Equal(t, entity.ModeSandbox, result.Mode)
	assert.Equal(t, 5, result.RecordCount)
}

func TestSyncService_SyncProvider_PersistsRefreshedCredential(t *testing.T) {
	fx := createTestSyncService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	staleCred := testCredential(userID, entity.ProviderSales)
	staleCred.ExpiresAt = time.Now().Add(-time.Minute)

	refreshed := testCredential(userID, entity.ProviderSales)
	refreshed.AccessToken = "new-access-token"

	fx.credentialRepo.EXPECT().
		FindByUserAndProvider(ctx, userID, entity.ProviderSales).
		Return(staleCred, nil)
	fx.tokenService.EXPECT().
		EnsureFresh(ctx, staleCred).
		Return(refreshed, nil)
	fx.credentialRepo.EXPECT().
		Save(ctx, refreshed).
		Return(nil)

	fx.salesAdapter.EXPECT().
		Fetch(mock.Anything, userID, refreshed, mock.AnythingOfType("service.SyncWindow")).
		Return(&service.FetchResult{
			Records: testRecords(userID, entity.ProviderSales, 2),
			Mode:    entity.ModeLive,
		}, nil)
	fx.transactionRepo.EXPECT().
		UpsertBatch(mock.Anything, mock.AnythingOfType("[]*entity.Transaction")).
		Return(&repository.UpsertResult{Inserted: 1, Updated: 1}, nil)
	fx.publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.AnythingOfType("*service.SyncEvent")).
		Return(nil)

	result, err := fx.service.SyncProvider(ctx, userID, entity.ProviderSales)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusOK, result.Status)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Updated)
}

func TestSyncService_SyncProvider_AuthFailureNotifiesUser(t *testing.T) {
	fx := createTestSyncService(t, true)

	ctx := context.Background()
	userID := uuid.New()
	cred := testCredential(userID, entity.ProviderOpenFinance)

	fx.credentialRepo.EXPECT().
		FindByUserAndProvider(ctx, userID, entity.ProviderOpenFinance).
		Return(cred, nil)
	fx.tokenService.EXPECT().
		EnsureFresh(ctx, cred).
		Return(cred, nil)
	fx.bankAdapter.EXPECT().
		Fetch(mock.Anything, userID, cred, mock.AnythingOfType("service.SyncWindow")).
		Return(nil, &service.AuthError{Provider: entity.ProviderOpenFinance, Reason: "token revoked upstream"})
	fx.credentialRepo.EXPECT().
		Delete(ctx, userID, entity.ProviderOpenFinance).
		Return(nil)
	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.UserProfile{UserID: userID, FCMToken: "device-token"}, nil)
	fx.notificationSvc.EXPECT().
		SendSingleNotification(ctx, "device-token", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.AnythingOfType("map[string]string")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.AnythingOfType("*service.SyncEvent")).
		Return(nil)

	result, err := fx.service.SyncProvider(ctx, userID, entity.ProviderOpenFinance)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusAuthRequired, result.Status)
	assert.Zero(t, result.RecordCount)
}

func TestSyncService_SyncProvider_TransientRefreshKeepsStoredCredential(t *testing.T) {
	fx := createTestSyncService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	cred := testCredential(userID, entity.ProviderSales)

	fx.credentialRepo.EXPECT().
		FindByUserAndProvider(ctx, userID, entity.ProviderSales).
		Return(cred, nil)
	fx.tokenService.EXPECT().
		EnsureFresh(ctx, cred).
		Return(nil, &service.TransientError{Provider: entity.ProviderSales, Err: errors.New("token endpoint timeout")})

	// The adapter still runs with the stored credential and resolves its own fallback.
	fx.salesAdapter.EXPECT().
		Fetch(mock.Anything, userID, cred, mock.AnythingOfType("service.SyncWindow")).
		Return(&service.FetchResult{
			Records:  testRecords(userID, entity.ProviderSales, 4),
			Mode:     entity.ModeSandbox,
			Degraded: true,
		}, nil)
	fx.transactionRepo.EXPECT().
		UpsertBatch(mock.Anything, mock.AnythingOfType("[]*entity.Transaction")).
		Return(&repository.UpsertResult{Inserted: 4}, nil)
	fx.publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.AnythingOfType("*service.SyncEvent")).
		Return(nil)

	result, err := fx.service.SyncProvider(ctx, userID, entity.ProviderSales)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusDegraded, result.Status)
}

func TestSyncService_SyncProvider_TransientRefreshOnExpiredCredentialDegrades(t *testing.T) {
	fx := createTestSyncService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	expiredCred := testCredential(userID, entity.ProviderSales)
	expiredCred.ExpiresAt = time.Now().Add(-time.Minute)

	fx.credentialRepo.EXPECT().
		FindByUserAndProvider(ctx, userID, entity.ProviderSales).
		Return(expiredCred, nil)
	fx.tokenService.EXPECT().
		EnsureFresh(ctx, expiredCred).
		Return(nil, &service.TransientError{Provider: entity.ProviderSales, Err: errors.New("token endpoint unavailable")})

	// No Fetch, Delete or Save expectations: a live call with the expired
	// token would be rejected as an auth failure and discard a credential
	// that the next refresh can still revive, so the run degrades instead.
	result, err := fx.service.SyncProvider(ctx, userID, entity.ProviderSales)
	require.NoError(t, err)
	assert.Equal(t, entity.SyncStatusDegraded, result.Status)
	assert.Equal(t, entity.ModeSandbox, result.Mode)
	assert.NotEmpty(t, result.Message)
	assert.Zero(t, result.RecordCount)
}

func TestSyncService_SyncProvider_UnknownProvider(t *testing.T) {
	fx := createTestSyncService(t, false)

	_, err := fx.service.SyncProvider(context.Background(), uuid.New(), entity.ProviderType("crypto"))
	require.ErrorIs(t, err, ErrUnknownProvider)
}

func TestSyncService_SyncAll_RunsAdaptersConcurrently(t *testing.T) {
	fx := createTestSyncService(t, false)

	ctx := context.Background()
	userID := uuid.New()

	fx.credentialRepo.EXPECT().
		FindByUserAndProvider(mock.Anything, userID, mock.AnythingOfType("entity.ProviderType")).
		Return(nil, repository.ErrCredentialNotFound)

	bankStarted := make(chan struct{})
	var sawConcurrency atomic.Bool
	fx.salesAdapter.EXPECT().
		Fetch(mock.Anything, userID, (*entity.ProviderCredential)(nil), mock.AnythingOfType("service.SyncWindow")).
		RunAndReturn(func(fetchCtx context.Context, _ uuid.UUID, _ *entity.ProviderCredential, _ service.SyncWindow) (*service.FetchResult, error) {
			// Block until the other adapter has started; with sequential
			// execution this would time out instead.
			select {
			case <-bankStarted:
				sawConcurrency.Store(true)
			case <-time.After(2 * time.Second):
			}

			return &service.FetchResult{Mode: entity.ModeSandbox, Degraded: true}, nil
		})
	fx.bankAdapter.EXPECT().
		Fetch(mock.Anything, userID, (*entity.ProviderCredential)(nil), mock.AnythingOfType("service.SyncWindow")).
		RunAndReturn(func(fetchCtx context.Context, _ uuid.UUID, _ *entity.ProviderCredential, _ service.SyncWindow) (*service.FetchResult, error) {
			close(bankStarted)

			return &service.FetchResult{Mode: entity.ModeSandbox, Degraded: true}, nil
		})

	fx.transactionRepo.EXPECT().
		UpsertBatch(mock.Anything, mock.AnythingOfType("[]*entity.Transaction")).
		Return(&repository.UpsertResult{}, nil)
	fx.publisher.EXPECT().
		PublishSyncEvent(mock.Anything, mock.AnythingOfType("*service.SyncEvent")).
		Return(nil)

	output, err := fx.service.SyncAll(ctx, userID)
	require.NoError(t, err)
	require.Len(t, output.Results, 2)
	for _, result := range output.Results {
		assert.Equal(t, entity.SyncStatusDegraded, result.Status)
	}
	assert.True(t, sawConcurrency.Load(), "adapters should run in parallel")
}
