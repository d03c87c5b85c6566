// Package insight contains the generation back-ends for financial insights:
// remote model candidates and the deterministic local fallback.
package insight

import (
	"fmt"
	"strings"

	"finsight/internal/domain/entity"
)

// buildPrompt renders the full insight context into a single structured
// prompt. Remote candidates all receive the same rendering so switching
// candidates never changes the question being asked.
func buildPrompt(insightCtx *entity.InsightContext) string {
	var b strings.Builder

	b.WriteString("You are a personal-finance assistant inside a financial dashboard.\n")
	b.WriteString("Answer concisely in plain text with at most light markdown.\n")
	b.WriteString("Base every figure strictly on the data below; never invent numbers.\n\n")

	currency := "USD"
	if insightCtx.Profile != nil {
		if insightCtx.Profile.Currency != "" {
			currency = insightCtx.Profile.Currency
		}
		if insightCtx.Profile.DisplayName != "" {
			fmt.Fprintf(&b, "User: %s\n", insightCtx.Profile.DisplayName)
		}
	}
	fmt.Fprintf(&b, "Currency: %s\n\n", currency)

	income, expense := insightCtx.Totals()
	fmt.Fprintf(&b, "Recent totals: income %.2f, expenses %.2f, net %.2f\n", income, expense, income-expense)

	if len(insightCtx.Transactions) > 0 {
		b.WriteString("\nRecent transactions (date, type, amount, description):\n")
		for _, tx := range insightCtx.Transactions {
			fmt.Fprintf(&b, "- %s %s %.2f %s\n", tx.Date.Format("2006-01-02"), tx.Type, tx.Amount, tx.Description)
		}
	}

	if len(insightCtx.Goals) > 0 {
		b.WriteString("\nActive goals (name, saved, target):\n")
		for _, goal := range insightCtx.Goals {
			fmt.Fprintf(&b, "- %s: %.2f of %.2f\n", goal.Name, goal.CurrentAmount, goal.TargetAmount)
		}
	}

	if len(insightCtx.History) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, msg := range insightCtx.History {
			fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
		}
	}

	b.WriteString("\n")
	if insightCtx.Query != "" {
		fmt.Fprintf(&b, "Question: %s\n", insightCtx.Query)
	} else {
		b.WriteString("Give the user one useful observation about their recent finances.\n")
	}

	return b.String()
}
