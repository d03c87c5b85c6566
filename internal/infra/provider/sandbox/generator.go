// Package sandbox generates plausible synthetic transaction data for
// adapters running without live credentials or after a transient live
// failure. Synthetic records are tagged so they can never be mistaken for
// live data downstream.
package sandbox

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"finsight/config"
	"finsight/internal/domain/entity"

	"github.com/google/uuid"
)

// ExternalIDPrefix marks every synthetic record's external ID.
const ExternalIDPrefix = "sandbox-"

var incomeDescriptions = []string{
	"Storefront payout",
	"Customer payment",
	"Marketplace settlement",
	"Refund reversal",
	"Invoice payment received",
}

var expenseDescriptions = []string{
	"Supplier invoice",
	"Card purchase",
	"Subscription renewal",
	"Shipping charges",
	"Platform fee",
	"Utility bill",
}

var expenseCategories = []string{
	"Supplies", "Fees", "Utilities", "Logistics", "Software",
}

// Generator produces bounded, random-but-plausible canonical records. One
// instance is shared by every adapter and sync runs fan out concurrently, so
// the rand source sits behind a mutex.
type Generator struct {
	cfg *config.SandboxDataConfig
	now func() time.Time

	mu   sync.Mutex
	rand *rand.Rand
}

// NewGenerator creates a generator bounded by the given config, seeded from
// the current time.
func NewGenerator(cfg *config.SandboxDataConfig) *Generator {
	return NewGeneratorWithSeed(cfg, time.Now().UnixNano())
}

// NewGeneratorWithSeed creates a deterministic generator for a fixed seed.
func NewGeneratorWithSeed(cfg *config.SandboxDataConfig, seed int64) *Generator {
	if cfg == nil {
		cfg = &config.SandboxDataConfig{
			MinRecords:  8,
			MaxRecords:  25,
			MinAmount:   3,
			MaxAmount:   900,
			RecencyDays: 30,
		}
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(seed)),
		now:  time.Now,
	}
}

// Generate returns a randomized but bounded batch of well-formed records for
// the provider: amounts inside the configured band, dates inside the recency
// window, and external IDs carrying the sandbox marker. Safe for concurrent
// use by multiple adapters.
func (g *Generator) Generate(userID uuid.UUID, provider entity.ProviderType) []*entity.Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	count := g.cfg.MinRecords
	if g.cfg.MaxRecords > g.cfg.MinRecords {
		count += g.rand.Intn(g.cfg.MaxRecords - g.cfg.MinRecords + 1)
	}

	today := entity.NormalizeDate(g.now())
	// The batch tag is the calendar date, so repeated degraded syncs on the
	// same day upsert over the same (user, provider, external_id) keys
	// instead of inserting a fresh batch every run.
	batch := today.Format("20060102")

	records := make([]*entity.Transaction, 0, count)
	for i := 0; i < count; i++ {
		record := &entity.Transaction{
			UserID:     userID,
			Provider:   provider,
			ExternalID: fmt.Sprintf("%s%s-%s-%d", ExternalIDPrefix, provider, batch, i),
			Amount:     g.amount(),
			Source:     provider.Label(),
			Date:       today.AddDate(0, 0, -g.rand.Intn(g.cfg.RecencyDays+1)),
		}

		// Sales-platform activity skews toward income; bank activity skews
		// toward spending.
		incomeBias := 30
		if provider == entity.ProviderSales {
			incomeBias = 75
		}

		if g.rand.Intn(100) < incomeBias {
			record.Type = entity.TransactionIncome
			record.Description = incomeDescriptions[g.rand.Intn(len(incomeDescriptions))]
		} else {
			record.Type = entity.TransactionExpense
			record.Description = expenseDescriptions[g.rand.Intn(len(expenseDescriptions))]
			record.Category = expenseCategories[g.rand.Intn(len(expenseCategories))]
		}

		records = append(records, record)
	}

	return records
}

// amount returns a value inside the configured band, rounded to cents.
func (g *Generator) amount() float64 {
	span := g.cfg.MaxAmount - g.cfg.MinAmount
	if span <= 0 {
		return g.cfg.MinAmount
	}

	raw := g.cfg.MinAmount + g.rand.Float64()*span

	rounded := float64(int(raw*100)) / 100
	if rounded <= 0 {
		rounded = 0.01
	}

	return rounded
}
