// Package service defines the domain service interfaces that the use case
// layer depends on. Concrete implementations live under internal/infra.
package service

import (
	"context"
	"fmt"
	"time"

	"finsight/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncWindow bounds a data fetch to a date range, normally the last N days.
type SyncWindow struct {
	From time.Time
	To   time.Time
}

// WindowEndingNow returns a sync window covering the given number of days up
// to now, with calendar-date boundaries.
func WindowEndingNow(now time.Time, days int) SyncWindow {
	to := entity.NormalizeDate(now)

	return SyncWindow{
		From: to.AddDate(0, 0, -days),
		To:   to,
	}
}

// FetchResult is the outcome of one adapter invocation.
type FetchResult struct {
	Records []*entity.Transaction
	Mode    entity.ProviderMode
	// Degraded is true when the live path was attempted but a transient
	// failure forced the sandbox fallback. When Mode is sandbox because no
	// credential or config was available, Degraded is also true: the caller
	// reports both cases as a degraded sync.
	Degraded bool
}

// ProviderAdapter translates one external provider's data into canonical
// transaction records. Fetch never fails for "no data" (an empty list is
// success) and never fails for availability issues (it falls back to the
// sandbox generator instead). The only error it surfaces is an AuthError,
// which the caller must turn into a re-authorization prompt.
type ProviderAdapter interface {
	// Provider returns the provider this adapter serves.
	Provider() entity.ProviderType

	// Fetch returns canonical records for the window. The credential may be
	// nil; the adapter then resolves to sandbox mode.
	Fetch(ctx context.Context, userID uuid.UUID, cred *entity.ProviderCredential, window SyncWindow) (*FetchResult, error)
}

// AuthError is terminal for a provider connection: the provider rejected the
// credential in a way a refresh cannot resolve, and the user must
// re-authorize. It is never retried automatically.
type AuthError struct {
	Provider entity.ProviderType
	Reason   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: authorization rejected: %s", e.Provider, e.Reason)
}

// TransientError marks a network, timeout or 5xx failure. Callers may retry
// later; adapters downgrade it to sandbox data, the insight cascade skips to
// the next candidate.
type TransientError struct {
	Provider entity.ProviderType
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: transient provider failure: %v", e.Provider, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// ConfigurationError marks missing client credentials or secrets. It is
// treated identically to "no credential": the adapter silently resolves to
// sandbox mode so the product stays demoable without live configuration.
type ConfigurationError struct {
	Provider entity.ProviderType
	Missing  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: missing configuration: %s", e.Provider, e.Missing)
}
