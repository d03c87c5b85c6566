// Package sales implements the provider adapter for the connected
// sales-platform (storefront) integration.
package sales

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
	pageSize     = 50
	maxPages     = 40 // hard stop against runaway pagination
	ordersPath   = "/v1/orders"
	sourceFormat = time.RFC3339
)

// orderRecord is the provider-native order shape. It exists only at this
// boundary; nothing past the adapter ever sees it.
type orderRecord struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Status       string  `json:"status"`
	TotalAmount  float64 `json:"total_amount"`
	CurrencyID   string  `json:"currency_id"`
	DateApproved string  `json:"date_approved"`
}

type ordersPage struct {
	Results []orderRecord `json:"results"`
	Paging  struct {
		Total  int `json:"total"`
		Offset int `json:"offset"`
		Limit  int `json:"limit"`
	} `json:"paging"`
}

// Adapter fetches orders from the sales platform and maps them into
// canonical transaction records.
type Adapter struct {
	cfg        *config.Config
	generator  *sandbox.Generator
	httpClient *http.Client
	logger     *slog.Logger
}

// New is the constructor for the sales adapter.
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
	return entity.ProviderSales
}

// Fetch returns canonical records for the window. Availability problems are
// downgraded to sandbox data; only authentication failures surface as errors.
func (a *Adapter) Fetch(ctx context.Context, userID uuid.UUID, cred *entity.ProviderCredential, window service.SyncWindow) (*service.FetchResult, error) {
	if reason := a.sandboxReason(cred); reason != "" {
		a.logger.Info("Sales adapter resolving to sandbox mode",
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

		// Transient availability failure: the user still gets a dashboard.
		a.logger.Warn("Sales adapter live fetch failed, falling back to sandbox data",
			slog.String("error", err.Error()),
		)

		return a.sandboxResult(userID), nil
	}

	return &service.FetchResult{Records: records, Mode: entity.ModeLive}, nil
}

// sandboxReason returns a non-empty reason when the invocation must resolve
// to sandbox mode before any live call is attempted.
func (a *Adapter) sandboxReason(cred *entity.ProviderCredential) string {
	integrations := a.cfg.Integrations
	if integrations == nil || integrations.Sales == nil || integrations.Sales.APIBaseURL == "" {
		return "provider not configured"
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
		Records:  a.generator.Generate(userID, entity.ProviderSales),
		Mode:     entity.ModeSandbox,
		Degraded: true,
	}
}

// fetchLive walks the paginated orders endpoint across the sync window.
func (a *Adapter) fetchLive(ctx context.Context, userID uuid.UUID, cred *entity.ProviderCredential, window service.SyncWindow) ([]*entity.Transaction, error) {
	var records []*entity.Transaction

	for page := 0; page < maxPages; page++ {
		body, err := a.getOrdersPage(ctx, cred, window, page*pageSize)
		if err != nil {
			return nil, err
		}

		for i, order := range body.Results {
			record := a.mapOrder(userID, order, page*pageSize+i)
			if record != nil {
				records = append(records, record)
			}
		}

		if body.Paging.Offset+len(body.Results) >= body.Paging.Total || len(body.Results) == 0 {
			break
		}
	}

	return records, nil
}

func (a *Adapter) getOrdersPage(ctx context.Context, cred *entity.ProviderCredential, window service.SyncWindow, offset int) (*ordersPage, error) {
	params := url.Values{}
	params.Set("date_from", window.From.Format(sourceFormat))
	params.Set("date_to", window.To.Format(sourceFormat))
	params.Set("offset", strconv.Itoa(offset))
	params.Set("limit", strconv.Itoa(pageSize))

	endpoint := a.cfg.Integrations.Sales.APIBaseURL + ordersPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create orders request")
	}
	req.Header.Set("Authorization", "Bearer "+cred.AccessToken)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, &service.TransientError{Provider: entity.ProviderSales, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		body, _ := io.ReadAll(resp.Body)

		return nil, &service.AuthError{
			Provider: entity.ProviderSales,
			Reason:   "orders endpoint returned " + resp.Status + ": " + string(body),
		}
	case resp.StatusCode != http.StatusOK:
		return nil, &service.TransientError{
			Provider: entity.ProviderSales,
			Err:      errors.Errorf("orders endpoint returned status %d", resp.StatusCode),
		}
	}

	var body ordersPage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &service.TransientError{
			Provider: entity.ProviderSales,
			Err:      errors.Wrap(err, "failed to decode orders page"),
		}
	}

	return &body, nil
}

// mapOrder converts one provider-native order into a canonical record, or
// nil when the order carries no financial effect.
func (a *Adapter) mapOrder(userID uuid.UUID, order orderRecord, index int) *entity.Transaction {
	// Direction comes from the order status, never from the amount's sign:
	// a paid order is seller income, a refunded order is money going back out.
	var txType entity.TransactionType
	var category string
	switch order.Status {
	case "paid", "delivered", "completed":
		txType = entity.TransactionIncome
		category = "Sales"
	case "refunded", "partially_refunded", "charged_back":
		txType = entity.TransactionExpense
		category = "Refunds"
	default:
		// Cancelled or pending orders have no settled financial effect yet.
		return nil
	}

	amount := order.TotalAmount
	if amount < 0 {
		amount = -amount
	}
	if amount == 0 {
		return nil
	}

	date := entity.NormalizeDate(time.Now())
	if parsed, err := time.Parse(sourceFormat, order.DateApproved); err == nil {
		date = entity.NormalizeDate(parsed)
	}

	externalID := order.ID
	if externalID == "" {
		// Synthesize a stable-enough ID from the settlement date and page
		// position when the provider omits one.
		externalID = fmt.Sprintf("sales-%d-%d", date.Unix(), index)
	}

	description := order.Title
	if description == "" {
		description = "Sales platform order"
	}

	return &entity.Transaction{
		UserID:      userID,
		Provider:    entity.ProviderSales,
		ExternalID:  externalID,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Source:      entity.ProviderSales.Label(),
		Category:    category,
		Date:        date,
	}
}
