// Package openfinance implements the provider adapter for the open-banking
// aggregator integration.
package openfinance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"finsight/config"
	"finsight/internal/domain/entity"
	"finsight/internal/domain/service"
	"finsight/internal/infra/provider/sandbox"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	accountsPath = "/v1/accounts"
	maxPages     = 40
	dateFormat   = "2006-01-02"
	apiKeyHeader = "X-API-Key"
)

// accountRecord is the aggregator's native account shape, confined to this
// boundary.
type accountRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // "BANK" or "CREDIT"
}

type accountsResponse struct {
	Results []accountRecord `json:"results"`
}

// bankTransaction is the aggregator's native transaction shape. Amounts are
// signed; how the sign maps to income/expense depends on the account type.
type bankTransaction struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

type transactionsPage struct {
	Results    []bankTransaction `json:"results"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}

// Adapter fetches account transactions from the open-banking aggregator and
// maps them into canonical transaction records.
type Adapter struct {
	cfg        *config.Config
	generator  *sandbox.Generator
	httpClient *http.Client
	logger     *slog.Logger
}

// New is the constructor for the open-finance adapter.
func New(cfg *config.Config, generator *sandbox.Generator, logger *slog.Logger) *Adapter {
	return &Adapter{
		cfg:        cfg,
		generator:  generator,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Provider returns the provider this adapter serves.
func (a *Adapter) Provider() entity.ProviderType {
	return entity.ProviderOpenFinance
}

// Fetch returns canonical records for the window, resolving to sandbox data
// whenever a live call is impossible or fails transiently.
func (a *Adapter) Fetch(ctx context.Context, userID uuid.UUID, cred *entity.ProviderCredential, window service.SyncWindow) (*service.FetchResult, error) {
	if reason := a.sandboxReason(cred); reason != "" {
		a.logger.Info("Open-finance adapter resolving to sandbox mode",
			slog.String("reason", reason),
		)

		return a.sandboxResult(userID), nil
	}

	records, err := a.fetchLive(ctx, userID, cred, window)
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			return nil, authErr
		}

		a.logger.Warn("Open-finance adapter live fetch failed, falling back to sandbox data",
			slog.String("error", err.Error()),
		)

		return a.sandboxResult(userID), nil
	}

	return &service.FetchResult{Records: records, Mode: entity.ModeLive}, nil
}

func (a *Adapter) sandboxReason(cred *entity.ProviderCredential) string {
	integrations := a.cfg.Integrations
	if integrations == nil || integrations.OpenFinance == nil || integrations.OpenFinance.APIBaseURL == "" {
		return "provider not configured"
	}
	if integrations.OpenFinance.APIKey == "" {
		return "no API key configured"
	}
	if integrations.Sandbox {
		return "global sandbox flag"
	}
	if !cred.Usable() {
		return "no usable credential"
	}

	return ""
}

func (a *Adapter) sandboxResult(userID uuid.UUID) *service.FetchResult {
	return &service.FetchResult{
		Records:  a.generator.Generate(userID, entity.ProviderOpenFinance),
		Mode:     entity.ModeSandbox,
		Degraded: true,
	}
}

// fetchLive enumerates the user's linked accounts and pulls each account's
// transactions across the sync window.
func (a *Adapter) fetchLive(ctx context.Context, userID uuid.UUID, cred *entity.ProviderCredential, window service.SyncWindow) ([]*entity.Transaction, error) {
	accounts, err := a.getAccounts(ctx, cred)
	if err != nil {
		return nil, err
	}

	var records []*entity.Transaction
	for _, account := range accounts {
		accountRecords, err := a.getAccountTransactions(ctx, cred, account, window)
		if err != nil {
			return nil, err
		}
		for i, tx := range accountRecords {
			record := a.mapTransaction(userID, account, tx, i)
			if record != nil {
				records = append(records, record)
			}
		}
	}

	return records, nil
}

func (a *Adapter) getAccounts(ctx context.Context, cred *entity.ProviderCredential) ([]accountRecord, error) {
	endpoint := a.cfg.Integrations.OpenFinance.APIBaseURL + accountsPath

	var body accountsResponse
	if err := a.getJSON(ctx, cred, endpoint, &body); err != nil {
		return nil, err
	}

	return body.Results, nil
}

func (a *Adapter) getAccountTransactions(ctx context.Context, cred *entity.ProviderCredential, account accountRecord, window service.SyncWindow) ([]bankTransaction, error) {
	var all []bankTransaction

	for page := 1; page <= maxPages; page++ {
		params := url.Values{}
		params.Set("from", window.From.Format(dateFormat))
		params.Set("to", window.To.Format(dateFormat))
		params.Set("page", strconv.Itoa(page))

		endpoint := a.cfg.Integrations.OpenFinance.APIBaseURL + accountsPath + "/" + url.PathEscape(account.ID) + "/transactions?" + params.Encode()

		var body transactionsPage
		if err := a.getJSON(ctx, cred, endpoint, &body); err != nil {
			return nil, err
		}

		all = append(all, body.Results...)

		if body.Page >= body.TotalPages || len(body.Results) == 0 {
			break
		}
	}

	return all, nil
}

// getJSON performs one authenticated GET against the aggregator, classifying
// failures into the integration taxonomy.
func (a *Adapter) getJSON(ctx context.Context, cred *entity.ProviderCredential, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create aggregator request")
	}
	req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	req.Header.Set(apiKeyHeader, a.cfg.Integrations.OpenFinance.APIKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return &service.TransientError{Provider: entity.ProviderOpenFinance, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		body, _ := io.ReadAll(resp.Body)

		return &service.AuthError{
			Provider: entity.ProviderOpenFinance,
			Reason:   "aggregator returned " + resp.Status + ": " + string(body),
		}
	case resp.StatusCode != http.StatusOK:
		return &service.TransientError{
			Provider: entity.ProviderOpenFinance,
			Err:      errors.Errorf("aggregator returned status %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &service.TransientError{
			Provider: entity.ProviderOpenFinance,
			Err:      errors.Wrap(err, "failed to decode aggregator response"),
		}
	}

	return nil
}

// mapTransaction converts one aggregator transaction into a canonical
// record. Direction is derived from the signed amount and the account
// semantics: on a credit account a positive amount is spending, on a bank
// account a positive amount is money in.
func (a *Adapter) mapTransaction(userID uuid.UUID, account accountRecord, tx bankTransaction, index int) *entity.Transaction {
	if tx.Amount == 0 {
		return nil
	}

	amount := tx.Amount
	inbound := amount > 0
	if amount < 0 {
		amount = -amount
	}
	if account.Type == "CREDIT" {
		inbound = !inbound
	}

	txType := entity.TransactionExpense
	if inbound {
		txType = entity.TransactionIncome
	}

	date := entity.NormalizeDate(time.Now())
	if parsed, err := time.Parse(dateFormat, tx.Date); err == nil {
		date = entity.NormalizeDate(parsed)
	}

	externalID := tx.ID
	if externalID == "" {
		externalID = fmt.Sprintf("openfinance-%s-%d-%d", account.ID, date.Unix(), index)
	}

	description := tx.Description
	if description == "" {
		description = account.Name + " transaction"
	}

	return &entity.Transaction{
		UserID:      userID,
		Provider:    entity.ProviderOpenFinance,
		ExternalID:  externalID,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Source:      entity.ProviderOpenFinance.Label(),
		Category:    tx.Category,
		Date:        date,
	}
}
