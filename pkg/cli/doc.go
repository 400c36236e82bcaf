// Package cli implements the specificathor command line tool.
//
// The tool evaluates plain string values against compiled rule sets built
// from the predicates in pkg/specs, using the batch API of pkg/specification.
//
// # Commands
//
//	specificathor check --rule <set> [--file values.yaml] [values...]
//	specificathor rules
//
// # Configuration
//
// Settings are read from the environment (and a .env file when present):
//
//	SPECIFICATHOR_LOG_LEVEL        debug, info, warn or error
//	SPECIFICATHOR_LOG_FORMAT       json or text
//	SPECIFICATHOR_ENV              production (default) or development
//	SPECIFICATHOR_SERVICE          service attribute, defaults to specificathor
//	SPECIFICATION_ERROR_SEPARATOR  separator between messages
//	SPECIFICATION_CONCURRENCY      values evaluated at once, 0 for NumCPU
//
// When the level or format is unset, SPECIFICATHOR_ENV picks them: json at
// info in production, text at debug otherwise. The --log-level and
// --concurrency flags take precedence.
//
// # Exit Codes
//
// check returns an error wrapping ErrInvalidValues when any value fails its
// rule set, so the binary exits with status 1.
package cli
