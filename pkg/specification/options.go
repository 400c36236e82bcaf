package specification

import (
	"log/slog"
	"runtime"
)

// DefaultSeparator joins retained error messages in Result.ErrorMessage.
const DefaultSeparator = "\n"

// Config holds environment driven defaults for builders.
// It is meant to be populated by pkg/config and applied with WithConfig.
type Config struct {
	ErrorSeparator string `env:"SPECIFICATION_ERROR_SEPARATOR" envDefault:"\n"`
	Concurrency    int    `env:"SPECIFICATION_CONCURRENCY" envDefault:"0"`
}

// Option configures a builder created by Create or CreateAll.
type Option func(*options)

type options struct {
	separator   string
	logger      *slog.Logger
	concurrency int
}

func defaultOptions() options {
	return options{
		separator: DefaultSeparator,
		logger:    slog.New(slog.DiscardHandler),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithSeparator sets the string placed between messages in ErrorMessage.
func WithSeparator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// WithLogger sets the logger used for evaluation diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConcurrency limits how many candidates CreateAll evaluates at once.
// Values below 1 fall back to runtime.NumCPU.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithConfig applies a loaded Config. Empty fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.ErrorSeparator != "" {
			o.separator = cfg.ErrorSeparator
		}
		if cfg.Concurrency > 0 {
			o.concurrency = cfg.Concurrency
		}
	}
}

func (o options) limit() int {
	if o.concurrency < 1 {
		return runtime.NumCPU()
	}
	return o.concurrency
}
