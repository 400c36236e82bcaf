// Package logger builds *slog.Logger values for specificathor tools and
// provides the attribute helpers the specification engine logs with.
//
// New takes functional options (format, level, output, static attributes,
// context extractors). Config carries the same settings as environment
// variables and is applied with FromConfig. When extractors are registered
// the handler copies their attributes from the context onto every record,
// which is how a CLI run id reaches the lines logged during an evaluation.
//
// # Usage
//
//	log := logger.New(
//	    logger.FromConfig(cfg.Log),
//	    logger.WithContextExtractors(runID),
//	)
//
//	res := specification.Create(v, specification.WithLogger(log)).
//	    Is(spec).
//	    GetResultContext(ctx)
//
// Helpers such as Error, Errors, Keys and RunID return an empty slog.Attr for
// nil or empty input, so they can be passed unconditionally.
package logger
