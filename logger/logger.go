// Package logger configures log/slog for the process and hands out loggers
// annotated with the subsystem that produced them.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/amp-labs/amp-fraction/envutil"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.uber.org/atomic"
)

// Default subsystem, used when the context doesn't carry one.
var subsystem = atomic.NewString("") //nolint:gochecknoglobals

// configMutex serializes ConfigureLoggingWithOptions, which swaps global state.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	subsystemKey contextKey = "subsystem"
	muteKey      contextKey = "mute"
	valuesKey    contextKey = "loggerValues"
)

// ErrInvalidLogOutput is returned when LOG_OUTPUT names an unknown destination.
var ErrInvalidLogOutput = errors.New("invalid log output")

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer

	// OTel, if set, sends records to this provider through the otelslog
	// bridge instead of writing them to Output.
	OTel otellog.LoggerProvider
}

// ConfigureLoggingWithOptions installs the default slog logger described by
// opts, redirects the legacy log package into it, and returns it.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var handler slog.Handler

	switch {
	case opts.OTel != nil:
		handler = otelslog.NewHandler(opts.Subsystem, otelslog.WithLoggerProvider(opts.OTel))
	case opts.JSON:
		handler = slog.NewJSONHandler(opts.Output, &slog.HandlerOptions{Level: opts.MinLevel})
	default:
		handler = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: opts.MinLevel})
	}

	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Third party packages may still use the log package.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option adjusts the Options built by ConfigureLogging.
type Option func(*Options)

// WithOutput overrides LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithLoggerProvider sends logs to p regardless of LOG_OTEL.
func WithLoggerProvider(p otellog.LoggerProvider) Option {
	return func(o *Options) {
		o.OTel = p
	}
}

// ConfigureLogging configures logging from the environment:
//
//	LOG_JSON          emit JSON instead of text (default false)
//	LOG_LEVEL         minimum level (default info)
//	LEGACY_LOG_LEVEL  level given to the log package (default info)
//	LOG_OUTPUT        stdout or stderr (default stdout)
//	LOG_OTEL          send logs to the global OpenTelemetry provider
func ConfigureLogging(ctx context.Context, app string, opts ...Option) (*slog.Logger, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	legacyLevel, err := envutil.SlogLevel(ctx, "LEGACY_LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	output, err := envutil.Map(envutil.String(ctx, "LOG_OUTPUT"), func(outName string) (io.Writer, error) {
		switch outName {
		case "stdout":
			return os.Stdout, nil
		case "stderr":
			return os.Stderr, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
		}
	}).WithDefault(os.Stdout).Value()
	if err != nil {
		return nil, err
	}

	useOTel, err := envutil.Bool(ctx, "LOG_OTEL", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	options := Options{
		Subsystem:   app,
		JSON:        logJSON,
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
		Output:      output,
	}

	if useOTel {
		options.OTel = global.GetLoggerProvider()
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithSubsystem overrides the subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, subsystemKey, name)
}

// GetSubsystem returns the subsystem carried by ctx, or the default one set
// by ConfigureLoggingWithOptions.
func GetSubsystem(ctx context.Context) string {
	if ctx != nil {
		if val, ok := ctx.Value(subsystemKey).(string); ok {
			return val
		}
	}

	return subsystem.Load()
}

// WithMuted silences every logger obtained from the returned context.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, muteKey, muted)
}

func isMuted(ctx context.Context) bool {
	if ctx == nil {
		return false
	}

	muted, ok := ctx.Value(muteKey).(bool)

	return ok && muted
}

// With returns a context whose loggers carry the given key-value pairs.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	existing := getValues(ctx)
	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return context.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}

	vals, _ := ctx.Value(valuesKey).([]any)

	return vals
}

// nullHandler discards everything; it backs muted loggers.
type nullHandler struct{}

func (n *nullHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (n *nullHandler) Handle(context.Context, slog.Record) error { return nil }
func (n *nullHandler) WithAttrs([]slog.Attr) slog.Handler        { return n }
func (n *nullHandler) WithGroup(string) slog.Handler             { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns the default logger annotated with the subsystem and any values
// attached with With. Only the first non-nil context is used.
func Get(ctx ...context.Context) *slog.Logger {
	var realCtx context.Context

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
