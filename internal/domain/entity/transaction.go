package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType carries the direction of a financial event. Amounts are
// always positive; sign information lives here and nowhere else.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is the canonical, provider-agnostic representation of a
// financial event. Every adapter maps its provider-native records into this
// shape at the adapter boundary; provider-native shapes never travel further.
type Transaction struct {
	ID          uuid.UUID       // The unique ID for this record in our store.
	UserID      uuid.UUID       // The owning user.
	Provider    ProviderType    // Which adapter produced the record.
	ExternalID  string          // Provider-scoped unique ID; upserts key on (provider, external_id).
	Description string          // Human-readable description of the event.
	Amount      float64         // Always > 0; direction is carried by Type.
	Type        TransactionType // income or expense.
	Source      string          // Fixed human-readable provider label, e.g. "Open Finance".
	Category    string          // Optional category label; empty when the provider supplies none.
	Date        time.Time       // Plain calendar date (UTC midnight), settlement/purchase date.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeDate truncates a provider-reported timestamp to a plain calendar
// date at UTC midnight. Canonical records carry no time-of-day and no zone.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Valid reports whether the record satisfies the canonical invariants.
func (t *Transaction) Valid() bool {
	if t.Amount <= 0 {
		return false
	}
	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return false
	}

	return t.ExternalID != ""
}
