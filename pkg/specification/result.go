package specification

// Result is the verdict of one evaluation. The zero state is valid with no
// errors.
type Result[T any] struct {
	candidate T
	valid     bool
	errors    Errors
	separator string
}

func newResult[T any](candidate T, separator string) *Result[T] {
	return &Result[T]{
		candidate: candidate,
		valid:     true,
		separator: separator,
	}
}

// IsValid reports whether at least one group passed.
func (r *Result[T]) IsValid() bool {
	return r.valid
}

// ErrorMessage joins the retained failure messages with the configured
// separator. It is empty when the result is valid.
func (r *Result[T]) ErrorMessage() string {
	return r.errors.Join(r.separator)
}

// TotalOfErrors counts the retained failures.
func (r *Result[T]) TotalOfErrors() int {
	return len(r.errors)
}

// HasError reports whether a specification with the same identity as spec
// failed in the retained group.
func (r *Result[T]) HasError(spec Specification[T]) bool {
	return r.HasErrorKey(KeyOf(spec))
}

// HasErrorKey reports whether an entry with key failed in the retained group.
func (r *Result[T]) HasErrorKey(key Key) bool {
	return r.errors.Has(key)
}

// Errors returns a copy of the retained failures.
func (r *Result[T]) Errors() Errors {
	if len(r.errors) == 0 {
		return nil
	}
	out := make(Errors, len(r.errors))
	copy(out, r.errors)
	return out
}

// Err returns nil for a valid result and the retained failures otherwise.
func (r *Result[T]) Err() error {
	if r.valid {
		return nil
	}
	return r.Errors()
}

// Candidate returns the evaluated value.
func (r *Result[T]) Candidate() T {
	return r.candidate
}

// HasError reports whether the specification type S failed in r.
//
//	specification.HasError[IsAdult](res)
func HasError[S Specification[T], T any](r *Result[T]) bool {
	return r.HasErrorKey(KeyFor[S]())
}
