package specification

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/specificathor/pkg/logger"
)

type joinKind uint8

const (
	joinFirst joinKind = iota
	joinAnd
	joinOr
)

// step records one chain call so it can be replayed for every candidate.
type step[T any] struct {
	join          joinKind
	expecting     Expecting
	factory       Factory[T]
	customMessage string
	hasCustom     bool
}

// Batch is the entry point of a chain applied to many candidates.
type Batch[T any] struct {
	candidates []T
	opts       options
}

// CreateAll starts a validation chain applied to each of candidates.
func CreateAll[T any](candidates []T, opts ...Option) *Batch[T] {
	return &Batch[T]{candidates: candidates, opts: newOptions(opts)}
}

// Is requires spec to hold for each candidate.
func (b *Batch[T]) Is(spec Specification[T]) *BatchOperator[T] {
	return b.start(instance(mustSpecification(spec)), ExpectingTrue)
}

// IsNot requires spec not to hold for each candidate.
func (b *Batch[T]) IsNot(spec Specification[T]) *BatchOperator[T] {
	return b.start(instance(mustSpecification(spec)), ExpectingFalse)
}

// IsFrom is like Is but builds a new specification for every candidate.
func (b *Batch[T]) IsFrom(factory Factory[T]) *BatchOperator[T] {
	return b.start(mustFactory(factory), ExpectingTrue)
}

// IsNotFrom is like IsNot but builds a new specification for every candidate.
func (b *Batch[T]) IsNotFrom(factory Factory[T]) *BatchOperator[T] {
	return b.start(mustFactory(factory), ExpectingFalse)
}

func (b *Batch[T]) start(factory Factory[T], expecting Expecting) *BatchOperator[T] {
	op := &BatchOperator[T]{candidates: b.candidates, opts: b.opts}
	return op.push(joinFirst, factory, expecting)
}

// BatchOperator records a chain and evaluates it against every candidate
// with an independent Operator.
type BatchOperator[T any] struct {
	candidates []T
	steps      []step[T]
	opts       options
}

// AndIs adds spec to the current group.
func (o *BatchOperator[T]) AndIs(spec Specification[T]) *BatchOperator[T] {
	return o.push(joinAnd, instance(mustSpecification(spec)), ExpectingTrue)
}

// AndIsNot adds the negation of spec to the current group.
func (o *BatchOperator[T]) AndIsNot(spec Specification[T]) *BatchOperator[T] {
	return o.push(joinAnd, instance(mustSpecification(spec)), ExpectingFalse)
}

// OrIs opens an alternative group that requires spec to hold.
func (o *BatchOperator[T]) OrIs(spec Specification[T]) *BatchOperator[T] {
	return o.push(joinOr, instance(mustSpecification(spec)), ExpectingTrue)
}

// OrIsNot opens an alternative group that requires spec not to hold.
func (o *BatchOperator[T]) OrIsNot(spec Specification[T]) *BatchOperator[T] {
	return o.push(joinOr, instance(mustSpecification(spec)), ExpectingFalse)
}

// AndIsFrom is like AndIs with a specification built per candidate.
func (o *BatchOperator[T]) AndIsFrom(factory Factory[T]) *BatchOperator[T] {
	return o.push(joinAnd, mustFactory(factory), ExpectingTrue)
}

// AndIsNotFrom is like AndIsNot with a specification built per candidate.
func (o *BatchOperator[T]) AndIsNotFrom(factory Factory[T]) *BatchOperator[T] {
	return o.push(joinAnd, mustFactory(factory), ExpectingFalse)
}

// OrIsFrom is like OrIs with a specification built per candidate.
func (o *BatchOperator[T]) OrIsFrom(factory Factory[T]) *BatchOperator[T] {
	return o.push(joinOr, mustFactory(factory), ExpectingTrue)
}

// OrIsNotFrom is like OrIsNot with a specification built per candidate.
func (o *BatchOperator[T]) OrIsNotFrom(factory Factory[T]) *BatchOperator[T] {
	return o.push(joinOr, mustFactory(factory), ExpectingFalse)
}

// UseThisErrorMessageIfFails overrides the message of the most recently
// recorded entry.
func (o *BatchOperator[T]) UseThisErrorMessageIfFails(message string) *BatchOperator[T] {
	if n := len(o.steps); n > 0 {
		o.steps[n-1].customMessage = message
		o.steps[n-1].hasCustom = true
	}
	return o
}

// GetResults evaluates every candidate, at most Option WithConcurrency at a
// time. It fails only when ctx ends first.
func (o *BatchOperator[T]) GetResults(ctx context.Context) (*Results[T], error) {
	results := make([]*Result[T], len(o.candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.opts.limit())

	for i, candidate := range o.candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = o.build(candidate).GetResultContext(gctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		o.opts.logger.LogAttrs(ctx, slog.LevelWarn, "batch evaluation canceled",
			logger.Component("specification"),
			logger.Candidates(len(o.candidates)),
			logger.Error(err),
		)
		return nil, errors.Join(ErrBatchCanceled, err)
	}

	return newResults(results, o.opts.separator), nil
}

func (o *BatchOperator[T]) push(join joinKind, factory Factory[T], expecting Expecting) *BatchOperator[T] {
	o.steps = append(o.steps, step[T]{join: join, factory: factory, expecting: expecting})
	return o
}

// build replays the recorded chain for one candidate.
func (o *BatchOperator[T]) build(candidate T) *Operator[T] {
	c := &Candidate[T]{candidate: candidate, opts: o.opts}

	var op *Operator[T]
	for _, s := range o.steps {
		switch s.join {
		case joinFirst:
			op = c.start(s.factory, s.expecting)
		case joinAnd:
			op.and(s.factory, s.expecting)
		case joinOr:
			op.or(s.factory, s.expecting)
		}
		if s.hasCustom {
			op.UseThisErrorMessageIfFails(s.customMessage)
		}
	}
	return op
}

func instance[T any](spec Specification[T]) Factory[T] {
	return func() Specification[T] { return spec }
}

// Results aggregates the per-candidate results of a batch, in candidate
// order.
type Results[T any] struct {
	results   []*Result[T]
	separator string
}

func newResults[T any](results []*Result[T], separator string) *Results[T] {
	return &Results[T]{results: results, separator: separator}
}

// IsValid reports whether every candidate is valid. An empty batch is valid.
func (r *Results[T]) IsValid() bool {
	for _, res := range r.results {
		if !res.IsValid() {
			return false
		}
	}
	return true
}

// ErrorMessage joins the messages of every invalid candidate.
func (r *Results[T]) ErrorMessage() string {
	var errs Errors
	for _, res := range r.results {
		errs = append(errs, res.errors...)
	}
	return errs.Join(r.separator)
}

// TotalOfErrors counts the failures across all candidates.
func (r *Results[T]) TotalOfErrors() int {
	total := 0
	for _, res := range r.results {
		total += res.TotalOfErrors()
	}
	return total
}

// HasError reports whether spec failed for any candidate.
func (r *Results[T]) HasError(spec Specification[T]) bool {
	return r.HasErrorKey(KeyOf(spec))
}

// HasErrorKey reports whether any candidate failed an entry with key.
func (r *Results[T]) HasErrorKey(key Key) bool {
	for _, res := range r.results {
		if res.HasErrorKey(key) {
			return true
		}
	}
	return false
}

// Len is the number of candidates.
func (r *Results[T]) Len() int {
	return len(r.results)
}

// Results returns a copy of the per-candidate results.
func (r *Results[T]) Results() []*Result[T] {
	out := make([]*Result[T], len(r.results))
	copy(out, r.results)
	return out
}

// ValidCandidates returns the candidates that passed, in order.
func (r *Results[T]) ValidCandidates() []T {
	return r.filter(true)
}

// InvalidCandidates returns the candidates that failed, in order.
func (r *Results[T]) InvalidCandidates() []T {
	return r.filter(false)
}

func (r *Results[T]) filter(valid bool) []T {
	var out []T
	for _, res := range r.results {
		if res.IsValid() == valid {
			out = append(out, res.Candidate())
		}
	}
	return out
}
