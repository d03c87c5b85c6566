package entity

import (
	"time"

	"github.com/google/uuid"
)

// InsightRole distinguishes who authored a chat message.
type InsightRole string

const (
	InsightRoleUser      InsightRole = "user"
	InsightRoleAssistant InsightRole = "assistant"
)

// InsightMessage is one persisted message in a user's insight chat history.
type InsightMessage struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Role      InsightRole
	Content   string
	CreatedAt time.Time
}

// InsightContext is the read-only input to insight generation. It is
// assembled once per request and never mutated by the cascade.
type InsightContext struct {
	Profile      *UserProfile
	Transactions []*Transaction
	Goals        []*Goal
	History      []*InsightMessage
	Query        string // Optional free-text question from the user.
}

// Totals computes positive income and expense sums over the context's
// transactions. The local fallback embeds these figures, so identical
// context must always produce identical totals.
func (c *InsightContext) Totals() (income, expense float64) {
	for _, tx := range c.Transactions {
		switch tx.Type {
		case TransactionIncome:
			income += tx.Amount
		case TransactionExpense:
			expense += tx.Amount
		}
	}

	return income, expense
}
