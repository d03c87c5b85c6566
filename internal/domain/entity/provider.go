// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ProviderType identifies an external data provider.
type ProviderType string

const (
	// ProviderSales is the connected sales-platform (storefront) provider.
	ProviderSales ProviderType = "sales"

	// ProviderOpenFinance is the open-banking aggregator provider.
	ProviderOpenFinance ProviderType = "openfinance"
)

// IsValid reports whether the provider type is one of the known providers.
func (p ProviderType) IsValid() bool {
	return p == ProviderSales || p == ProviderOpenFinance
}

// Label returns the fixed human-readable source label for the provider.
// Downstream aggregation groups by this value, so it must never be derived
// from provider free text.
func (p ProviderType) Label() string {
	switch p {
	case ProviderSales:
		return "Sales Platform"
	case ProviderOpenFinance:
		return "Open Finance"
	default:
		return string(p)
	}
}

// ProviderMode indicates whether an adapter invocation ran against the live
// provider API or the synthetic sandbox generator. It is resolved once per
// invocation and never persisted.
type ProviderMode string

const (
	ModeSandbox ProviderMode = "sandbox"
	ModeLive    ProviderMode = "live"
)

// SyncStatus is the per-provider outcome of a sync run.
type SyncStatus string

const (
	// SyncStatusOK means live data was fetched and persisted.
	SyncStatusOK SyncStatus = "ok"

	// SyncStatusDegraded means a fallback path produced the records
	// (sandbox data after a transient live failure, or no credential).
	SyncStatusDegraded SyncStatus = "degraded"

	// SyncStatusAuthRequired means the provider connection is broken and
	// the user must re-authorize before live data can be fetched again.
	SyncStatusAuthRequired SyncStatus = "authRequired"
)
