package insight

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"finsight/config"
	"finsight/internal/domain/entity"
	"finsight/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// remoteGenerator is one remote model candidate in the cascade. All
// candidates share a single client; only the model identifier differs.
type remoteGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewRemoteGenerators builds one generator per configured model, in the
// configured priority order. With no API key or no models configured it
// returns an empty list and the cascade goes straight to the local fallback.
func NewRemoteGenerators(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]service.InsightGenerator, error) {
	if cfg.Insight == nil || len(cfg.Insight.Models) == 0 || cfg.Insight.APIKey == "" {
		logger.Info("No remote insight models configured, cascade will use the local fallback only")

		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.Insight.APIKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	generators := make([]service.InsightGenerator, 0, len(cfg.Insight.Models))
	for _, model := range cfg.Insight.Models {
		generators = append(generators, &remoteGenerator{
			client:  client,
			model:   model,
			timeout: cfg.Insight.RequestTimeout,
			logger:  logger,
		})
	}

	return generators, nil
}

// Name identifies the candidate in cascade logs.
func (g *remoteGenerator) Name() string {
	return g.model
}

// Generate renders the context into one structured prompt and asks the model.
func (g *remoteGenerator) Generate(ctx context.Context, insightCtx *entity.InsightContext) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(insightCtx)},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", errors.Wrapf(err, "model %s generation failed", g.model)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.Errorf("model %s returned an empty response", g.model)
	}

	return text, nil
}

// SkipReason classifies a candidate failure for cascade logging. Unsupported
// models and exhausted quotas are expected conditions; everything else is an
// unexpected error, but the cascade moves on either way.
func SkipReason(err error) string {
	if err == nil {
		return ""
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "not found") || strings.Contains(msg, "not_found") || strings.Contains(msg, "unsupported"):
		return "model_unavailable"
	case strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "rate limit"):
		return "quota_exceeded"
	default:
		return "error"
	}
}
