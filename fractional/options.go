package fractional

import (
	"context"
	"log/slog"

	"github.com/amp-labs/amp-fraction/envutil"
	"github.com/amp-labs/amp-fraction/logger"
	"github.com/amp-labs/amp-fraction/rational"
)

const defaultName = "default"

type options struct {
	mode    rational.CompareMode
	logger  *slog.Logger
	name    string
	metrics bool
}

func defaultOptions() options {
	return options{
		mode:    rational.ExactCompare,
		name:    defaultName,
		metrics: true,
	}
}

// Option configures a Sequence.
type Option func(*options)

// WithCompareMode selects how Insert and RemoveAt locate keys. The default is
// rational.ExactCompare. Under FastCompare, an insert key that rounds to the
// same float64 as an existing key is treated as a collision, so it may land
// next to that key rather than exactly where requested, but the keys stay
// strictly increasing.
func WithCompareMode(mode rational.CompareMode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithLogger sets the logger. By default the sequence logs through
// logger.Get with the "fractional" subsystem.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithName labels the sequence in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMetrics turns the Prometheus collectors on or off. They are on by default.
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		o.metrics = enabled
	}
}

// OptionsFromEnv reads FRACTIONAL_COMPARE_MODE ("exact" or "fast", default
// exact) and FRACTIONAL_METRICS (default true).
func OptionsFromEnv(ctx context.Context) ([]Option, error) {
	log := logger.Get(logger.WithSubsystem(ctx, "fractional"))

	modeEnv := envutil.Map(envutil.String(ctx, "FRACTIONAL_COMPARE_MODE"), rational.ParseCompareMode)
	if modeEnv.HasValue() {
		log.Debug("compare mode set from environment", "key", modeEnv.Key())
	}

	mode, err := modeEnv.WithDefault(rational.ExactCompare).Value()
	if err != nil {
		return nil, err
	}

	metrics, err := envutil.Bool(ctx, "FRACTIONAL_METRICS", envutil.Default(true)).Value()
	if err != nil {
		return nil, err
	}

	return []Option{
		WithCompareMode(mode),
		WithMetrics(metrics),
		WithLogger(log),
	}, nil
}
