package specs

import (
	"fmt"

	"github.com/dmitrymomot/specificathor/pkg/specification"
)

const (
	KeyRequired specification.Key = "required"
	KeyEqual    specification.Key = "equal"
	KeyNotEmpty specification.Key = "not_empty"
	KeyMinItems specification.Key = "min_items"
	KeyMaxItems specification.Key = "max_items"
	KeyUnique   specification.Key = "unique"
)

// Required holds for any value other than the zero value of T.
func Required[T comparable]() specification.Specification[T] {
	return Func(KeyRequired, "field is required", func(v T) bool {
		var zero T
		return v != zero
	})
}

func Equal[T comparable](want T) specification.Specification[T] {
	return Func(KeyEqual, fmt.Sprintf("must be equal to %v", want), func(v T) bool {
		return v == want
	})
}

func NotEmpty[E any]() specification.Specification[[]E] {
	return Func(KeyNotEmpty, "must not be empty", func(v []E) bool {
		return len(v) > 0
	})
}

func MinItems[E any](min int) specification.Specification[[]E] {
	return Func(KeyMinItems, fmt.Sprintf("must have at least %d items", min), func(v []E) bool {
		return len(v) >= min
	})
}

func MaxItems[E any](max int) specification.Specification[[]E] {
	return Func(KeyMaxItems, fmt.Sprintf("must have at most %d items", max), func(v []E) bool {
		return len(v) <= max
	})
}

// Unique holds for slices without repeated elements.
func Unique[E comparable]() specification.Specification[[]E] {
	return Func(KeyUnique, "must not contain duplicates", func(v []E) bool {
		seen := make(map[E]struct{}, len(v))
		for _, e := range v {
			if _, ok := seen[e]; ok {
				return false
			}
			seen[e] = struct{}{}
		}
		return true
	})
}
