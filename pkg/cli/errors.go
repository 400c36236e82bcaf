package cli

import "errors"

var (
	ErrUnknownRuleSet  = errors.New("unknown rule set")
	ErrNoValues        = errors.New("no values to check")
	ErrInvalidValues   = errors.New("some values are invalid")
	ErrReadingValues   = errors.New("failed to read values file")
	ErrInvalidLogLevel = errors.New("invalid log level")
)
