package impl

import (
	"context"
	"testing"
	"time"

	"finsight/internal/domain/entity"
	"finsight/internal/domain/service"
	"finsight/internal/infra/insight"
	mockRepo "finsight/internal/mocks/repository"
	mockSvc "finsight/internal/mocks/service"
	"finsight/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// insightServiceFixtures holds all test dependencies for insight service tests.
type insightServiceFixtures struct {
	service         usecase.InsightUsecase
	primary         *mockSvc.MockInsightGenerator
	secondary       *mockSvc.MockInsightGenerator
	transactionRepo *mockRepo.MockTransactionRepository
	profileRepo     *mockRepo.MockUserProfileRepository
	goalRepo        *mockRepo.MockGoalRepository
	messageRepo     *mockRepo.MockInsightMessageRepository
}

func createTestInsightService(t *testing.T) insightServiceFixtures {
	primary := mockSvc.NewMockInsightGenerator(t)
	secondary := mockSvc.NewMockInsightGenerator(t)
	transactionRepo := mockRepo.NewMockTransactionRepository(t)
	profileRepo := mockRepo.NewMockUserProfileRepository(t)
	goalRepo := mockRepo.NewMockGoalRepository(t)
	messageRepo := mockRepo.NewMockInsightMessageRepository(t)

	primary.EXPECT().Name().Return("gemini-2.5-pro").Maybe()
	secondary.EXPECT().Name().Return("gemini-2.5-flash").Maybe()

	svc := NewInsightService(
		newTestConfig(),
		[]service.InsightGenerator{primary, secondary},
		insight.NewLocalGenerator(),
		transactionRepo,
		profileRepo,
		goalRepo,
		messageRepo,
		newDiscardLogger(),
	)

	return insightServiceFixtures{
		service:         svc,
		primary:         primary,
		secondary:       secondary,
		transactionRepo: transactionRepo,
		profileRepo:     profileRepo,
		goalRepo:        goalRepo,
		messageRepo:     messageRepo,
	}
}

func expectContextLoads(fx insightServiceFixtures, ctx context.Context, userID uuid.UUID) {
	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(&entity.UserProfile{UserID: userID, DisplayName: "Dana", Currency: "EUR"}, nil)
	fx.transactionRepo.EXPECT().
		FindRecentByUser(ctx, userID, mock.AnythingOfType("time.Time"), 200).
		Return([]*entity.Transaction{
			{
				UserID:      userID,
				Provider:    entity.ProviderSales,
				ExternalID:  "order-1",
				Description: "Storefront order",
				Amount:      120.50,
				Type:        entity.TransactionIncome,
				Source:      "Sales Platform",
				Date:        entity.NormalizeDate(time.Now()),
			},
			{
				UserID:      userID,
				Provider:    entity.ProviderOpenFinance,
				ExternalID:  "tx-9",
				Description: "Office supplies",
				Amount:      45.10,
				Type:        entity.TransactionExpense,
				Source:      "Open Finance",
				Date:        entity.NormalizeDate(time.Now()),
			},
		}, nil)
	fx.goalRepo.EXPECT().
		FindActiveByUser(ctx, userID).
		Return([]*entity.Goal{}, nil)
	fx.messageRepo.EXPECT().
		FindRecentByUser(ctx, userID, 20).
		Return([]*entity.InsightMessage{}, nil)
}

func TestInsightService_Generate_FirstCandidateWins(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectContextLoads(fx, ctx, userID)

	fx.primary.EXPECT().
		Generate(ctx, mock.AnythingOfType("*entity.InsightContext")).
		Return("Your income comfortably covers your spending this quarter.", nil).
		Once()
	// The secondary candidate must never be invoked when the first succeeds.

	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.InsightMessage")).
		Return(nil).
		Times(2)

	output, err := fx.service.Generate(ctx, userID, "How am I doing?")
	require.NoError(t, err)
	assert.Equal(t, "Your income comfortably covers your spending this quarter.", output.Answer)
	assert.Equal(t, "gemini-2.5-pro", output.Source)
}

func TestInsightService_Generate_CascadesToNextCandidate(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectContextLoads(fx, ctx, userID)

	fx.primary.EXPECT().
		Generate(ctx, mock.AnythingOfType("*entity.InsightContext")).
		Return("", errors.New("429 RESOURCE_EXHAUSTED: quota exceeded")).
		Once()
	fx.secondary.EXPECT().
		Generate(ctx, mock.AnythingOfType("*entity.InsightContext")).
		Return("Spending is trending down compared to last month.", nil).
		Once()

	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.InsightMessage")).
		Return(nil).
		Times(2)

	output, err := fx.service.Generate(ctx, userID, "Any trends?")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", output.Source)
}

func TestInsightService_Generate_AllCandidatesFailUsesLocalFallback(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectContextLoads(fx, ctx, userID)

	fx.primary.EXPECT().
		Generate(ctx, mock.AnythingOfType("*entity.InsightContext")).
		Return("", errors.New("model not found")).
		Once()
	fx.secondary.EXPECT().
		Generate(ctx, mock.AnythingOfType("*entity.InsightContext")).
		Return("", errors.New("upstream timeout")).
		Once()

	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.InsightMessage")).
		Return(nil).
		Times(2)

	output, err := fx.service.Generate(ctx, userID, "How much did I spend?")
	require.NoError(t, err)
	assert.NotEmpty(t, output.Answer)
	assert.Equal(t, "local", output.Source)
	// The local answer embeds the deterministic expense total.
	assert.Contains(t, output.Answer, "45.10")
}

func TestInsightService_Generate_EmptyQuerySkipsUserMessage(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectContextLoads(fx, ctx, userID)

	fx.primary.EXPECT().
		Generate(ctx, mock.AnythingOfType("*entity.InsightContext")).
		Return("A general observation about your finances.", nil).
		Once()

	// Only the assistant message is recorded when there is no question.
	fx.messageRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(msg *entity.InsightMessage) bool {
			return msg.Role == entity.InsightRoleAssistant
		})).
		Return(nil).
		Once()

	_, err := fx.service.Generate(ctx, userID, "")
	require.NoError(t, err)
}

func TestInsightService_Generate_HistoryWriteFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestInsightService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectContextLoads(fx, ctx, userID)

	fx.primary.EXPECT().
		Generate(ctx, mock.AnythingOfType("*entity.InsightContext")).
		Return("All good.", nil).
		Once()
	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.InsightMessage")).
		Return(errors.New("database unavailable")).
		Once()

	output, err := fx.service.Generate(ctx, userID, "Status?")
	require.NoError(t, err)
	assert.Equal(t, "All good.", output.Answer)
}
