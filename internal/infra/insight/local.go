package insight

import (
	"context"
	"fmt"
	"strings"

	"finsight/internal/domain/entity"
	"finsight/internal/domain/service"
)

// localGenerator is the guaranteed-available tail of the cascade: a
// rule-based responder with no external dependency. It is deliberately
// templated, but still reflects the user's actual numbers so the degraded
// answer stays useful. Identical context always produces identical text.
type localGenerator struct{}

// NewLocalGenerator creates the deterministic fallback generator.
func NewLocalGenerator() service.InsightGenerator {
	return &localGenerator{}
}

// Name identifies the fallback in cascade logs.
func (g *localGenerator) Name() string {
	return "local"
}

// Generate inspects the structured context and answers from fixed templates.
// It never returns an error.
func (g *localGenerator) Generate(_ context.Context, insightCtx *entity.InsightContext) (string, error) {
	currency := "USD"
	if insightCtx.Profile != nil && insightCtx.Profile.Currency != "" {
		currency = insightCtx.Profile.Currency
	}

	income, expense := insightCtx.Totals()
	net := income - expense
	query := strings.ToLower(insightCtx.Query)

	switch {
	case containsAny(query, "goal", "save", "saving"):
		return g.goalAnswer(insightCtx, currency, net), nil
	case containsAny(query, "spend", "spent", "expense", "cost"):
		return g.expenseAnswer(insightCtx, currency, expense), nil
	case containsAny(query, "income", "earn", "revenue", "sales"):
		return fmt.Sprintf(
			"Your recent income adds up to %s %.2f across %d transactions. After %s %.2f of expenses, your net result is %s %.2f.",
			currency, income, countByType(insightCtx.Transactions, entity.TransactionIncome),
			currency, expense, currency, net,
		), nil
	default:
		return g.overviewAnswer(insightCtx, currency, income, expense, net), nil
	}
}

func (g *localGenerator) overviewAnswer(insightCtx *entity.InsightContext, currency string, income, expense, net float64) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Here is a summary of your recent activity: income %s %.2f, expenses %s %.2f, net %s %.2f.",
		currency, income, currency, expense, currency, net,
	)

	if net < 0 {
		b.WriteString(" You spent more than you earned in this period, so it may be worth reviewing your largest expenses.")
	} else {
		b.WriteString(" You earned more than you spent in this period.")
	}

	if len(insightCtx.Goals) > 0 {
		goal := insightCtx.Goals[0]
		fmt.Fprintf(&b,
			" Your goal %q is at %.0f%% (%s %.2f of %s %.2f).",
			goal.Name, goal.Progress()*100, currency, goal.CurrentAmount, currency, goal.TargetAmount,
		)
	}

	return b.String()
}

func (g *localGenerator) goalAnswer(insightCtx *entity.InsightContext, currency string, net float64) string {
	if len(insightCtx.Goals) == 0 {
		return fmt.Sprintf(
			"You have no active goals yet. Based on your recent net result of %s %.2f, setting a monthly savings target would be a good starting point.",
			currency, net,
		)
	}

	var b strings.Builder
	b.WriteString("Here is where your goals stand:")
	for _, goal := range insightCtx.Goals {
		fmt.Fprintf(&b,
			"\n- %s: %s %.2f of %s %.2f (%.0f%%)",
			goal.Name, currency, goal.CurrentAmount, currency, goal.TargetAmount, goal.Progress()*100,
		)
	}
	fmt.Fprintf(&b, "\nYour recent net result is %s %.2f.", currency, net)

	return b.String()
}

func (g *localGenerator) expenseAnswer(insightCtx *entity.InsightContext, currency string, expense float64) string {
	count := countByType(insightCtx.Transactions, entity.TransactionExpense)
	if count == 0 {
		return "You have no recorded expenses in this period."
	}

	largest := largestExpense(insightCtx.Transactions)

	return fmt.Sprintf(
		"You spent %s %.2f across %d transactions recently. Your largest expense was %q at %s %.2f.",
		currency, expense, count, largest.Description, currency, largest.Amount,
	)
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}

	return false
}

func countByType(transactions []*entity.Transaction, txType entity.TransactionType) int {
	count := 0
	for _, tx := range transactions {
		if tx.Type == txType {
			count++
		}
	}

	return count
}

// largestExpense returns the highest-amount expense, preferring the earliest
// occurrence on ties so the answer is stable for identical input.
func largestExpense(transactions []*entity.Transaction) *entity.Transaction {
	var largest *entity.Transaction
	for _, tx := range transactions {
		if tx.Type != entity.TransactionExpense {
			continue
		}
		if largest == nil || tx.Amount > largest.Amount {
			largest = tx
		}
	}

	return largest
}
