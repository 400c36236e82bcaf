package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/specificathor/pkg/config"
	"github.com/dmitrymomot/specificathor/pkg/logger"
	"github.com/dmitrymomot/specificathor/pkg/specification"
)

// Config holds the CLI settings read from the environment:
// SPECIFICATHOR_LOG_LEVEL, SPECIFICATHOR_LOG_FORMAT, SPECIFICATHOR_ENV and
// SPECIFICATHOR_SERVICE.
type Config struct {
	Log logger.Config `envPrefix:"SPECIFICATHOR_"`
}

type runIDKey struct{}

func runID(ctx context.Context) (slog.Attr, bool) {
	id, ok := ctx.Value(runIDKey{}).(string)
	return logger.RunID(id), ok
}

// invocation is everything a command needs after configuration is resolved.
type invocation struct {
	ctx  context.Context
	log  *slog.Logger
	spec specification.Config
}

// newInvocation loads both configurations, applies the level override and
// builds a logger that tags every record with a per-run id.
func newInvocation(ctx context.Context, levelOverride string, output io.Writer) (*invocation, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	var specCfg specification.Config
	if err := config.Load(&specCfg); err != nil {
		return nil, err
	}

	if levelOverride != "" {
		cfg.Log.Level = levelOverride
	}
	if _, ok := logger.ParseLevel(cfg.Log.Level); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Log.Level)
	}
	if cfg.Log.Service == "" {
		cfg.Log.Service = name
	}

	log := logger.New(
		logger.FromConfig(cfg.Log),
		logger.WithOutput(output),
		logger.WithContextExtractors(runID),
	)

	return &invocation{
		ctx:  context.WithValue(ctx, runIDKey{}, uuid.NewString()),
		log:  log,
		spec: specCfg,
	}, nil
}
