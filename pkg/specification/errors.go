package specification

import (
	"errors"
	"strings"
)

var (
	// ErrNotSatisfied matches every Errors value with errors.Is.
	ErrNotSatisfied = errors.New("specification not satisfied")

	// ErrNilSpecification is raised (as a panic) when a chain receives a nil
	// specification or factory.
	ErrNilSpecification = errors.New("nil specification")

	// ErrBatchCanceled is returned by BatchOperator.GetResults when the
	// context ends before every candidate was evaluated.
	ErrBatchCanceled = errors.New("batch evaluation canceled")
)

// Failure is one failing validator entry: the identity of its specification
// and the message it reported.
type Failure struct {
	Key     Key
	Message string
}

// Errors is the ordered list of failures retained by an evaluation.
type Errors []Failure

func (e Errors) Error() string {
	if len(e) == 0 {
		return ErrNotSatisfied.Error()
	}
	return ErrNotSatisfied.Error() + ": " + e.Join("; ")
}

// Is lets errors.Is(err, ErrNotSatisfied) succeed for any Errors value.
func (e Errors) Is(target error) bool {
	return target == ErrNotSatisfied
}

func (e Errors) Has(key Key) bool {
	for _, f := range e {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Get returns the messages reported under key, in order.
func (e Errors) Get(key Key) []string {
	var messages []string
	for _, f := range e {
		if f.Key == key {
			messages = append(messages, f.Message)
		}
	}
	return messages
}

// Keys returns the distinct keys in order of first appearance.
func (e Errors) Keys() []Key {
	var keys []Key
	seen := make(map[Key]bool)
	for _, f := range e {
		if !seen[f.Key] {
			keys = append(keys, f.Key)
			seen[f.Key] = true
		}
	}
	return keys
}

func (e Errors) keyStrings() []string {
	keys := e.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, string(k))
	}
	return out
}

func (e Errors) Messages() []string {
	messages := make([]string, 0, len(e))
	for _, f := range e {
		messages = append(messages, f.Message)
	}
	return messages
}

func (e Errors) Join(sep string) string {
	return strings.Join(e.Messages(), sep)
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// AsErrors extracts Errors from err, or returns nil.
func AsErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var errs Errors
	if errors.As(err, &errs) {
		return errs
	}

	return nil
}

func IsNotSatisfied(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNotSatisfied)
}
