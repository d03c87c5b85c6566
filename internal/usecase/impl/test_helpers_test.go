package impl

import (
	"io"
	"log/slog"
	"time"

	"finsight/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Integrations: &config.IntegrationsConfig{
			SyncWindowDays: 30,
			AdapterTimeout: 5 * time.Second,
			RefreshMargin:  2 * time.Minute,
		},
		Insight: &config.InsightConfig{
			Models:            []string{"gemini-2.5-flash"},
			RequestTimeout:    5 * time.Second,
			HistoryLimit:      20,
			ContextWindowDays: 90,
			ContextLimit:      200,
		},
	}
}
