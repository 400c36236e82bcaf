package specification

import (
	"fmt"
	"reflect"
)

// Specification is a boolean rule over a candidate value together with the
// message reported when the rule does not hold.
type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
	ErrorMessage() string
}

// Named is implemented by specifications that provide their own identity
// instead of relying on their Go type name.
type Named interface {
	SpecificationName() string
}

// Factory builds a fresh specification instance for a single validator entry.
// It is called once per entry on every evaluation.
type Factory[T any] func() Specification[T]

// Key identifies a specification kind in a result.
type Key string

func (k Key) String() string {
	return string(k)
}

// KeyOf returns the identity of spec: its SpecificationName when it implements
// Named, otherwise the import path and name of its dynamic type, for example
// "example.com/rules.isAdult".
func KeyOf[T any](spec Specification[T]) Key {
	if spec == nil {
		return ""
	}
	if n, ok := spec.(Named); ok {
		return Key(n.SpecificationName())
	}
	return typeKey(reflect.TypeOf(spec))
}

// KeyFor returns the identity of the specification type S without an instance.
// For Named types SpecificationName is called on the zero value of S, so it
// must not depend on field state.
func KeyFor[S any]() Key {
	var zero S
	if n, ok := any(zero).(Named); ok {
		return Key(n.SpecificationName())
	}
	return typeKey(reflect.TypeFor[S]())
}

// typeKey qualifies named types with their full import path so same-named
// types from different packages get distinct keys.
func typeKey(t reflect.Type) Key {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer {
		return "*" + typeKey(t.Elem())
	}
	if t.Name() != "" && t.PkgPath() != "" {
		return Key(t.PkgPath() + "." + t.Name())
	}
	return Key(t.String())
}

type funcSpecification[T any] struct {
	name    string
	message string
	check   func(T) bool
}

func (s funcSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return s.check(candidate)
}

func (s funcSpecification[T]) ErrorMessage() string {
	return s.message
}

func (s funcSpecification[T]) SpecificationName() string {
	return s.name
}

// New creates a named specification from a check function.
// The name is the specification's Key. Panics if check is nil.
func New[T any](name, message string, check func(T) bool) Specification[T] {
	if check == nil {
		panic(fmt.Errorf("%w: check function for %q", ErrNilSpecification, name))
	}
	return funcSpecification[T]{name: name, message: message, check: check}
}

func mustSpecification[T any](spec Specification[T]) Specification[T] {
	if spec == nil {
		panic(ErrNilSpecification)
	}
	return spec
}

func mustFactory[T any](factory Factory[T]) Factory[T] {
	if factory == nil {
		panic(fmt.Errorf("%w: nil factory", ErrNilSpecification))
	}
	return factory
}
