// Package logs wires the process-wide slog logger from config.
package logs

import (
	"log/slog"
	"os"
	"strings"

	"finsight/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"":      slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates the slog.Logger shared by every component. JSON output is the
// default; the pretty text handler is meant for local development only.
func New(params Params) (*slog.Logger, error) {
	logCfg := params.Config.Env.Log

	level, ok := levels[strings.ToLower(logCfg.Level)]
	if !ok {
		return nil, errors.Errorf("unknown log level: %s", logCfg.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if logCfg.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler), nil
}
