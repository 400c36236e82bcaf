package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat maps a format name to a Format. Unknown names report false.
func ParseFormat(name string) (Format, bool) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatText:
		return f, true
	default:
		return FormatJSON, false
	}
}

// ParseLevel maps a level name to a slog.Level. An empty name is info;
// unknown names report false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Config describes a logger in environment terms. Level and Format are
// optional; when empty the Env preset decides them. Embed it with an
// envPrefix to namespace the variables:
//
//	type Config struct {
//		Log logger.Config `envPrefix:"MYTOOL_"`
//	}
type Config struct {
	Level   string `env:"LOG_LEVEL"`
	Format  string `env:"LOG_FORMAT"`
	Env     string `env:"ENV" envDefault:"production"`
	Service string `env:"SERVICE"`
}

// Option configures New.
type Option func(*settings)

type settings struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// WithLevel sets the minimum level.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithLevelName sets the level by name. Unknown names are ignored.
func WithLevelName(name string) Option {
	return func(s *settings) {
		if l, ok := ParseLevel(name); ok {
			s.level = l
		}
	}
}

// WithFormat sets the output format. Unknown formats are ignored.
func WithFormat(f Format) Option {
	return func(s *settings) {
		if f, ok := ParseFormat(string(f)); ok {
			s.format = f
		}
	}
}

// WithOutput sets the destination. A nil writer keeps stderr.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// WithContextExtractors adds attributes taken from the context of each
// record. Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(s *settings) {
		for _, ex := range extractors {
			if ex != nil {
				s.extractors = append(s.extractors, ex)
			}
		}
	}
}

// WithContextValue logs the context value stored under key as name.
func WithContextValue(name string, key any) Option {
	if name == "" || key == nil {
		return func(*settings) {}
	}
	return WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
		v := ctx.Value(key)
		return slog.Any(name, v), v != nil
	})
}

// WithEnvironment applies environment presets: "production" (or "prod")
// logs JSON at info, anything else logs text at debug. The env name, and the
// service when given, are attached to every record.
func WithEnvironment(env, service string) Option {
	return func(s *settings) {
		name := strings.ToLower(strings.TrimSpace(env))
		if name == "prod" {
			name = "production"
		}
		if name == "production" {
			s.level, s.format = slog.LevelInfo, FormatJSON
		} else {
			s.level, s.format = slog.LevelDebug, FormatText
		}
		if name != "" {
			s.attrs = append(s.attrs, slog.String("env", name))
		}
		if service != "" {
			s.attrs = append(s.attrs, slog.String("service", service))
		}
	}
}

// FromConfig applies cfg: environment presets first, then the format and
// level when they are set.
func FromConfig(cfg Config) Option {
	return func(s *settings) {
		WithEnvironment(cfg.Env, cfg.Service)(s)
		if cfg.Format != "" {
			WithFormat(Format(cfg.Format))(s)
		}
		if cfg.Level != "" {
			WithLevelName(cfg.Level)(s)
		}
	}
}

// New creates a logger writing JSON at info level to stderr unless opts say
// otherwise.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stderr,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: s.level}
	var h slog.Handler = slog.NewJSONHandler(s.output, handlerOpts)
	if s.format == FormatText {
		h = slog.NewTextHandler(s.output, handlerOpts)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}

	return slog.New(newContextHandler(h, s.extractors))
}
