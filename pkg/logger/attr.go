package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Specification records a specification key under the key "specification".
func Specification(key string) slog.Attr {
	return slog.String("specification", key)
}

// Keys records the specification keys that failed under the key "keys".
// If no key is given, it returns an empty Attr.
func Keys(keys ...string) slog.Attr {
	if len(keys) == 0 {
		return slog.Attr{}
	}
	return slog.Any("keys", keys)
}

// Expecting records an entry expectation under the key "expecting".
func Expecting(expecting string) slog.Attr {
	return slog.String("expecting", expecting)
}

// GroupIndex records the position of a validation group under the key "group".
func GroupIndex(i int) slog.Attr {
	return slog.Int("group", i)
}

// Groups records the number of validation groups under the key "groups".
func Groups(n int) slog.Attr {
	return slog.Int("groups", n)
}

// Validators records the number of entries in a group under the key "validators".
func Validators(n int) slog.Attr {
	return slog.Int("validators", n)
}

// Failures records the number of failing entries under the key "failures".
func Failures(n int) slog.Attr {
	return slog.Int("failures", n)
}

// Valid records a verdict under the key "valid".
func Valid(v bool) slog.Attr {
	return slog.Bool("valid", v)
}

// Candidates records a batch size under the key "candidates".
func Candidates(n int) slog.Attr {
	return slog.Int("candidates", n)
}

// RunID records the identifier of a CLI run under the key "run_id".
// If id is nil, it returns an empty Attr.
func RunID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("run_id", id)
}
