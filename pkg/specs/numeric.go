package specs

import (
	"fmt"

	"github.com/dmitrymomot/specificathor/pkg/specification"
)

const (
	KeyNonZero  specification.Key = "non_zero"
	KeyMin      specification.Key = "min"
	KeyMax      specification.Key = "max"
	KeyBetween  specification.Key = "between"
	KeyPositive specification.Key = "positive"
	KeyNegative specification.Key = "negative"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func NonZero[T Numeric]() specification.Specification[T] {
	return Func(KeyNonZero, "must not be zero", func(v T) bool {
		var zero T
		return v != zero
	})
}

// Min holds for values greater than or equal to min.
func Min[T Numeric](min T) specification.Specification[T] {
	return Func(KeyMin, fmt.Sprintf("must be at least %v", min), func(v T) bool {
		return v >= min
	})
}

// Max holds for values less than or equal to max.
func Max[T Numeric](max T) specification.Specification[T] {
	return Func(KeyMax, fmt.Sprintf("must be at most %v", max), func(v T) bool {
		return v <= max
	})
}

// Between holds for values in the closed range [min, max].
func Between[T Numeric](min, max T) specification.Specification[T] {
	return Func(KeyBetween, fmt.Sprintf("must be between %v and %v", min, max), func(v T) bool {
		return v >= min && v <= max
	})
}

func Positive[T Numeric]() specification.Specification[T] {
	return Func(KeyPositive, "must be positive", func(v T) bool {
		var zero T
		return v > zero
	})
}

func Negative[T Numeric]() specification.Specification[T] {
	return Func(KeyNegative, "must be negative", func(v T) bool {
		var zero T
		return v < zero
	})
}
