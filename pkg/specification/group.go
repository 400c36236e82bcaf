package specification

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/specificathor/pkg/logger"
)

// validator binds a specification factory to an expectation and an optional
// message override. The factory runs once per evaluation.
type validator[T any] struct {
	factory       Factory[T]
	expecting     Expecting
	customMessage string
	hasCustom     bool
}

func newValidator[T any](factory Factory[T], expecting Expecting) *validator[T] {
	return &validator[T]{factory: factory, expecting: expecting}
}

func (v *validator[T]) setMessage(message string) {
	v.customMessage = message
	v.hasCustom = true
}

func (v *validator[T]) message(spec Specification[T]) string {
	if v.hasCustom {
		return v.customMessage
	}
	return spec.ErrorMessage()
}

// group is a conjunction of validators.
type group[T any] struct {
	validators []*validator[T]
}

// failures evaluates every validator of the group, without stopping at the
// first failure, and returns the failing ones in insertion order.
func (g *group[T]) failures(ctx context.Context, candidate T, log *slog.Logger) Errors {
	var errs Errors
	for _, v := range g.validators {
		spec := mustSpecification(v.factory())
		if v.expecting.Matches(spec.IsSatisfiedBy(candidate)) {
			continue
		}
		key := KeyOf(spec)
		errs = append(errs, Failure{Key: key, Message: v.message(spec)})
		log.LogAttrs(ctx, slog.LevelDebug, "specification entry failed",
			logger.Specification(key.String()),
			logger.Expecting(v.expecting.String()),
		)
	}
	return errs
}

// groups is a disjunction of groups. A new list always holds one empty group
// so the first predicate has somewhere to go.
type groups[T any] []*group[T]

func newGroups[T any]() groups[T] {
	return groups[T]{&group[T]{}}
}

func (gs *groups[T]) addGroup() {
	*gs = append(*gs, &group[T]{})
}

// add appends a validator to the last group and returns it.
func (gs *groups[T]) add(factory Factory[T], expecting Expecting) *validator[T] {
	v := newValidator(factory, expecting)
	last := (*gs)[len(*gs)-1]
	last.validators = append(last.validators, v)
	return v
}

// evaluate runs the groups in order. The first group with no failures makes
// the outcome valid; otherwise the failures of the last group evaluated are
// returned.
func (gs groups[T]) evaluate(ctx context.Context, candidate T, log *slog.Logger) (bool, Errors) {
	var retained Errors
	for i, g := range gs {
		errs := g.failures(ctx, candidate, log)
		log.LogAttrs(ctx, slog.LevelDebug, "specification group evaluated",
			logger.GroupIndex(i),
			logger.Validators(len(g.validators)),
			logger.Failures(len(errs)),
		)
		if len(errs) == 0 {
			return true, nil
		}
		retained = errs
	}
	return false, retained
}
