package specification

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/specificathor/pkg/logger"
)

// Candidate is the entry point of a chain. Only Is and IsNot are available,
// so every chain starts with a plain predicate.
type Candidate[T any] struct {
	candidate T
	opts      options
}

// Create starts a validation chain for candidate.
func Create[T any](candidate T, opts ...Option) *Candidate[T] {
	return &Candidate[T]{candidate: candidate, opts: newOptions(opts)}
}

// Is requires spec to hold.
func (c *Candidate[T]) Is(spec Specification[T]) *Operator[T] {
	return c.start(instance(mustSpecification(spec)), ExpectingTrue)
}

// IsNot requires spec not to hold.
func (c *Candidate[T]) IsNot(spec Specification[T]) *Operator[T] {
	return c.start(instance(mustSpecification(spec)), ExpectingFalse)
}

// IsFrom is like Is but calls factory for a new specification on every
// evaluation.
func (c *Candidate[T]) IsFrom(factory Factory[T]) *Operator[T] {
	return c.start(mustFactory(factory), ExpectingTrue)
}

// IsNotFrom is like IsNot with a specification built by factory.
func (c *Candidate[T]) IsNotFrom(factory Factory[T]) *Operator[T] {
	return c.start(mustFactory(factory), ExpectingFalse)
}

func (c *Candidate[T]) start(factory Factory[T], expecting Expecting) *Operator[T] {
	op := &Operator[T]{
		candidate: c.candidate,
		groups:    newGroups[T](),
		opts:      c.opts,
	}
	op.last = op.groups.add(factory, expecting)
	return op
}

// Operator accumulates validator entries for a single candidate.
// It is not safe for concurrent use.
type Operator[T any] struct {
	candidate T
	groups    groups[T]
	// last is the entry UseThisErrorMessageIfFails applies to; every chain
	// call replaces it.
	last *validator[T]
	opts options
}

// AndIs requires spec to hold together with the rest of the current group.
func (o *Operator[T]) AndIs(spec Specification[T]) *Operator[T] {
	return o.and(instance(mustSpecification(spec)), ExpectingTrue)
}

// AndIsNot requires spec not to hold together with the rest of the current group.
func (o *Operator[T]) AndIsNot(spec Specification[T]) *Operator[T] {
	return o.and(instance(mustSpecification(spec)), ExpectingFalse)
}

// OrIs opens an alternative group that requires spec to hold.
func (o *Operator[T]) OrIs(spec Specification[T]) *Operator[T] {
	return o.or(instance(mustSpecification(spec)), ExpectingTrue)
}

// OrIsNot opens an alternative group that requires spec not to hold.
func (o *Operator[T]) OrIsNot(spec Specification[T]) *Operator[T] {
	return o.or(instance(mustSpecification(spec)), ExpectingFalse)
}

// AndIsFrom is like AndIs with a specification built by factory.
func (o *Operator[T]) AndIsFrom(factory Factory[T]) *Operator[T] {
	return o.and(mustFactory(factory), ExpectingTrue)
}

// AndIsNotFrom is like AndIsNot with a specification built by factory.
func (o *Operator[T]) AndIsNotFrom(factory Factory[T]) *Operator[T] {
	return o.and(mustFactory(factory), ExpectingFalse)
}

// OrIsFrom is like OrIs with a specification built by factory.
func (o *Operator[T]) OrIsFrom(factory Factory[T]) *Operator[T] {
	return o.or(mustFactory(factory), ExpectingTrue)
}

// OrIsNotFrom is like OrIsNot with a specification built by factory.
func (o *Operator[T]) OrIsNotFrom(factory Factory[T]) *Operator[T] {
	return o.or(mustFactory(factory), ExpectingFalse)
}

// UseThisErrorMessageIfFails overrides the message of the most recently
// added entry. Calling it again for the same entry replaces the message.
func (o *Operator[T]) UseThisErrorMessageIfFails(message string) *Operator[T] {
	if o.last != nil {
		o.last.setMessage(message)
	}
	return o
}

// GetResult evaluates the chain. Every call runs a full evaluation and
// returns a new Result.
func (o *Operator[T]) GetResult() *Result[T] {
	return o.GetResultContext(context.Background())
}

// GetResultContext is GetResult with a context passed to the logger.
func (o *Operator[T]) GetResultContext(ctx context.Context) *Result[T] {
	res := newResult(o.candidate, o.opts.separator)
	valid, errs := o.groups.evaluate(ctx, o.candidate, o.opts.logger)
	res.valid = valid
	res.errors = errs

	if o.opts.logger.Enabled(ctx, slog.LevelDebug) {
		o.opts.logger.LogAttrs(ctx, slog.LevelDebug, "specification evaluated",
			logger.Component("specification"),
			logger.Valid(valid),
			logger.Groups(len(o.groups)),
			logger.Failures(len(errs)),
			logger.Keys(errs.keyStrings()...),
		)
	}

	return res
}

func (o *Operator[T]) and(factory Factory[T], expecting Expecting) *Operator[T] {
	o.last = o.groups.add(factory, expecting)
	return o
}

func (o *Operator[T]) or(factory Factory[T], expecting Expecting) *Operator[T] {
	o.groups.addGroup()
	o.last = o.groups.add(factory, expecting)
	return o
}
