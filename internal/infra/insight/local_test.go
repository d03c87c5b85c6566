package insight

import (
	"context"
	"testing"
	"time"

	"finsight/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(query string) *entity.InsightContext {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	return &entity.InsightContext{
		Profile: &entity.UserProfile{DisplayName: "Dana", Currency: "EUR"},
		Transactions: []*entity.Transaction{
			{Type: entity.TransactionIncome, Amount: 1200.00, Description: "Storefront payout", Date: date},
			{Type: entity.TransactionExpense, Amount: 45.10, Description: "Office supplies", Date: date.AddDate(0, 0, 1)},
			{Type: entity.TransactionExpense, Amount: 210.00, Description: "Supplier invoice", Date: date.AddDate(0, 0, 2)},
		},
		Goals: []*entity.Goal{
			{Name: "Emergency fund", TargetAmount: 1000, CurrentAmount: 250, IsActive: true},
		},
		Query: query,
	}
}

func TestLocalGenerator_DeterministicForIdenticalContext(t *testing.T) {
	generator := NewLocalGenerator()

	first, err := generator.Generate(context.Background(), testContext("how am I doing?"))
	require.NoError(t, err)
	second, err := generator.Generate(context.Background(), testContext("how am I doing?"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLocalGenerator_ExpenseQuestion(t *testing.T) {
	generator := NewLocalGenerator()

	answer, err := generator.Generate(context.Background(), testContext("How much did I spend this month?"))
	require.NoError(t, err)

	assert.Contains(t, answer, "EUR 255.10")
	assert.Contains(t, answer, "Supplier invoice", "the largest expense is named")
	assert.Contains(t, answer, "EUR 210.00")
}

func TestLocalGenerator_ExpenseQuestionWithNoExpenses(t *testing.T) {
	generator := NewLocalGenerator()
	insightCtx := &entity.InsightContext{Query: "what were my costs?"}

	answer, err := generator.Generate(context.Background(), insightCtx)
	require.NoError(t, err)
	assert.Equal(t, "You have no recorded expenses in this period.", answer)
}

func TestLocalGenerator_IncomeQuestion(t *testing.T) {
	generator := NewLocalGenerator()

	answer, err := generator.Generate(context.Background(), testContext("what is my income?"))
	require.NoError(t, err)

	assert.Contains(t, answer, "EUR 1200.00")
	assert.Contains(t, answer, "net result is EUR 944.90")
}

func TestLocalGenerator_GoalQuestion(t *testing.T) {
	generator := NewLocalGenerator()

	answer, err := generator.Generate(context.Background(), testContext("how are my savings goals?"))
	require.NoError(t, err)

	assert.Contains(t, answer, "Emergency fund")
	assert.Contains(t, answer, "25%")
}

func TestLocalGenerator_GoalQuestionWithoutGoals(t *testing.T) {
	generator := NewLocalGenerator()
	insightCtx := testContext("should I save more?")
	insightCtx.Goals = nil

	answer, err := generator.Generate(context.Background(), insightCtx)
	require.NoError(t, err)
	assert.Contains(t, answer, "no active goals")
}

func TestLocalGenerator_EmptyQueryGivesOverview(t *testing.T) {
	generator := NewLocalGenerator()

	answer, err := generator.Generate(context.Background(), testContext(""))
	require.NoError(t, err)

	assert.Contains(t, answer, "income EUR 1200.00")
	assert.Contains(t, answer, "expenses EUR 255.10")
	assert.Contains(t, answer, "You earned more than you spent")
}

func TestLocalGenerator_NilProfileDefaultsToUSD(t *testing.T) {
	generator := NewLocalGenerator()
	insightCtx := testContext("")
	insightCtx.Profile = nil

	answer, err := generator.Generate(context.Background(), insightCtx)
	require.NoError(t, err)
	assert.Contains(t, answer, "USD")
}
