package usecase

import (
	"context"

	"github.com/google/uuid"
)

// InsightOutput carries a generated insight and the source that produced it
type InsightOutput struct {
	Answer string `json:"answer"`
	Source string `json:"source"`
}

// InsightUsecase defines the interface for financial insight generation use cases
type InsightUsecase interface {
	// Generate answers a user question (or produces a general observation when
	// the query is empty) from the user's recent financial data. The call
	// always succeeds with a non-empty answer; remote model failures degrade
	// to a locally computed one.
	Generate(ctx context.Context, userID uuid.UUID, query string) (*InsightOutput, error)
}
