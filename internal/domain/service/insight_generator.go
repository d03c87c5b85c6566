package service

import (
	"context"

	"finsight/internal/domain/entity"
)

// InsightGenerator is one generation back-end in the insight cascade. Remote
// model candidates and the local rule-based fallback all conform to this
// capability so the cascade is a plain ordered iteration.
type InsightGenerator interface {
	// Name identifies the back-end for logging, e.g. a model identifier or
	// "local".
	Name() string

	// Generate produces a plain-text (optionally light markdown) insight
	// from the read-only context. The only schema guarantee is a non-empty
	// string on success.
	Generate(ctx context.Context, insightCtx *entity.InsightContext) (string, error)
}
