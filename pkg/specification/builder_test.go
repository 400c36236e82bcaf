package specification_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/specificathor/pkg/logger"
	"github.com/dmitrymomot/specificathor/pkg/specification"
)

var (
	adult   = person{Name: "Ann", Age: 30}
	minor   = person{Name: "Bob", Age: 12}
	unnamed = person{Age: 40}
	admin   = person{Name: "Root", Age: 16, Admin: true}
)

func TestIs(t *testing.T) {
	t.Parallel()

	t.Run("passing predicate is valid", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(adult).Is(isAdult{}).GetResult()

		assert.True(t, res.IsValid())
		assert.Equal(t, 0, res.TotalOfErrors())
		assert.Empty(t, res.ErrorMessage())
		assert.NoError(t, res.Err())
		assert.False(t, specification.HasError[isAdult](res))
	})

	t.Run("failing predicate reports default message", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(minor).Is(isAdult{}).GetResult()

		assert.False(t, res.IsValid())
		assert.Equal(t, 1, res.TotalOfErrors())
		assert.Equal(t, "must be an adult", res.ErrorMessage())
		assert.True(t, specification.HasError[isAdult](res))
		assert.True(t, res.HasError(isAdult{}))
	})
}

func TestIsNot(t *testing.T) {
	t.Parallel()

	t.Run("false predicate passes", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(minor).IsNot(isAdult{}).GetResult()
		assert.True(t, res.IsValid())
	})

	t.Run("true predicate fails", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(adult).IsNot(isAdult{}).GetResult()
		assert.False(t, res.IsValid())
		assert.Equal(t, "must be an adult", res.ErrorMessage())
		assert.True(t, specification.HasError[isAdult](res))
	})
}

func TestAndIs(t *testing.T) {
	t.Parallel()

	t.Run("one failing entry fails the group", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(unnamed).Is(isAdult{}).AndIs(hasName{}).GetResult()

		assert.False(t, res.IsValid())
		assert.Equal(t, 1, res.TotalOfErrors())
		assert.Equal(t, "name is required", res.ErrorMessage())
		assert.False(t, specification.HasError[isAdult](res))
		assert.True(t, specification.HasError[hasName](res))
	})

	t.Run("every failing entry is reported in order", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(person{Age: 3}).
			Is(hasName{}).
			AndIs(isAdult{}).
			AndIs(isAdmin{}).
			GetResult()

		assert.False(t, res.IsValid())
		assert.Equal(t, 3, res.TotalOfErrors())
		assert.Equal(t, "name is required\nmust be an adult\nmust be an admin", res.ErrorMessage())
	})

	t.Run("and is not", func(t *testing.T) {
		t.Parallel()
		banned := person{Name: "Eve", Age: 40, Banned: true}

		ok := specification.Create(adult).Is(isAdult{}).AndIsNot(isBanned{}).GetResult()
		assert.True(t, ok.IsValid())

		res := specification.Create(banned).Is(isAdult{}).AndIsNot(isBanned{}).GetResult()
		assert.False(t, res.IsValid())
		assert.Equal(t, "must be banned", res.ErrorMessage())
	})

	t.Run("all entries are evaluated even after a failure", func(t *testing.T) {
		t.Parallel()
		calls := 0
		res := specification.Create(minor).
			Is(isAdult{}).
			AndIs(counting{calls: &calls, result: true}).
			GetResult()

		assert.False(t, res.IsValid())
		assert.Equal(t, 1, calls)
	})

	t.Run("duplicate failures are preserved", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(minor).Is(isAdult{}).AndIs(isAdult{}).GetResult()

		assert.Equal(t, 2, res.TotalOfErrors())
		assert.Equal(t, []string{"must be an adult", "must be an adult"},
			res.Errors().Get(specification.KeyFor[isAdult]()))
	})
}

func TestOrIs(t *testing.T) {
	t.Parallel()

	t.Run("passing later group discards earlier failures", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(admin).Is(isAdult{}).OrIs(isAdmin{}).GetResult()

		assert.True(t, res.IsValid())
		assert.Equal(t, 0, res.TotalOfErrors())
		assert.Empty(t, res.ErrorMessage())
		assert.False(t, specification.HasError[isAdult](res))
	})

	t.Run("passing first group skips later groups", func(t *testing.T) {
		t.Parallel()
		calls := 0
		res := specification.Create(adult).
			Is(isAdult{}).
			OrIs(counting{calls: &calls}).
			GetResult()

		assert.True(t, res.IsValid())
		assert.Equal(t, 0, calls)
	})

	t.Run("all groups failing keeps only the last group errors", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(person{Age: 10}).
			Is(isAdult{}).
			AndIs(hasName{}).
			OrIs(isAdmin{}).
			GetResult()

		assert.False(t, res.IsValid())
		assert.Equal(t, 1, res.TotalOfErrors())
		assert.Equal(t, "must be an admin", res.ErrorMessage())
		assert.True(t, specification.HasError[isAdmin](res))
		assert.False(t, specification.HasError[isAdult](res))
		assert.False(t, specification.HasError[hasName](res))
	})

	t.Run("middle group passing stops evaluation", func(t *testing.T) {
		t.Parallel()
		calls := 0
		res := specification.Create(admin).
			Is(isAdult{}).
			OrIs(isAdmin{}).
			OrIs(counting{calls: &calls}).
			GetResult()

		assert.True(t, res.IsValid())
		assert.Equal(t, 0, calls)
	})

	t.Run("or is not", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(minor).Is(isAdult{}).OrIsNot(isBanned{}).GetResult()
		assert.True(t, res.IsValid())

		res = specification.Create(person{Age: 1, Banned: true}).Is(isAdult{}).OrIsNot(isBanned{}).GetResult()
		assert.False(t, res.IsValid())
		assert.Equal(t, "must be banned", res.ErrorMessage())
	})

	t.Run("and after or joins the new group", func(t *testing.T) {
		t.Parallel()
		// (adult) OR (admin AND named)
		res := specification.Create(person{Age: 5, Admin: true}).
			Is(isAdult{}).
			OrIs(isAdmin{}).
			AndIs(hasName{}).
			GetResult()

		assert.False(t, res.IsValid())
		assert.Equal(t, "name is required", res.ErrorMessage())
	})
}

func TestUseThisErrorMessageIfFails(t *testing.T) {
	t.Parallel()

	t.Run("replaces default message", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(minor).
			Is(isAdult{}).
			UseThisErrorMessageIfFails("custom").
			GetResult()

		assert.Equal(t, "custom", res.ErrorMessage())
		assert.True(t, specification.HasError[isAdult](res))
	})

	t.Run("applies only to the last entry", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(person{Age: 1}).
			Is(isAdult{}).
			AndIs(hasName{}).
			UseThisErrorMessageIfFails("who are you?").
			GetResult()

		assert.Equal(t, "must be an adult\nwho are you?", res.ErrorMessage())
	})

	t.Run("second call wins", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(minor).
			Is(isAdult{}).
			UseThisErrorMessageIfFails("first").
			UseThisErrorMessageIfFails("second").
			GetResult()

		assert.Equal(t, "second", res.ErrorMessage())
	})

	t.Run("message follows the entry into its group", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(person{Age: 1}).
			Is(isAdult{}).
			UseThisErrorMessageIfFails("too young").
			OrIs(isAdmin{}).
			UseThisErrorMessageIfFails("not an admin").
			GetResult()

		assert.Equal(t, "not an admin", res.ErrorMessage())
	})

	t.Run("unused when the entry passes", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(adult).
			Is(isAdult{}).
			UseThisErrorMessageIfFails("custom").
			GetResult()

		assert.True(t, res.IsValid())
		assert.Empty(t, res.ErrorMessage())
	})
}

func TestGetResultIsIdempotent(t *testing.T) {
	t.Parallel()

	op := specification.Create(person{Age: 1}).
		Is(isAdult{}).
		AndIs(hasName{}).
		OrIs(isAdmin{})

	first := op.GetResult()
	second := op.GetResult()

	assert.Equal(t, first.IsValid(), second.IsValid())
	assert.Equal(t, first.ErrorMessage(), second.ErrorMessage())
	assert.Equal(t, first.TotalOfErrors(), second.TotalOfErrors())
	assert.Equal(t, 1, second.TotalOfErrors())
}

func TestFactories(t *testing.T) {
	t.Parallel()

	built := 0
	factory := func() specification.Specification[person] {
		built++
		return isAdult{}
	}

	op := specification.Create(minor).
		IsFrom(factory).
		AndIsNotFrom(func() specification.Specification[person] { return isBanned{} }).
		OrIsFrom(factory).
		OrIsNotFrom(func() specification.Specification[person] { return hasName{} }).
		AndIsFrom(factory)
	assert.Zero(t, built)

	res := op.GetResult()
	assert.Equal(t, 3, built)
	assert.False(t, res.IsValid())
	assert.Equal(t, "name is required\nmust be an adult", res.ErrorMessage())

	res = specification.Create(minor).IsNotFrom(factory).GetResult()
	assert.True(t, res.IsValid())
}

func TestFactoriesPerEvaluation(t *testing.T) {
	t.Parallel()

	var instances []*countingAdult
	op := specification.Create(minor).
		IsFrom(func() specification.Specification[person] {
			s := &countingAdult{}
			instances = append(instances, s)
			return s
		}).
		UseThisErrorMessageIfFails("adults only")

	first := op.GetResult()
	second := op.GetResult()

	require.Len(t, instances, 2)
	assert.NotSame(t, instances[0], instances[1])
	for _, s := range instances {
		assert.Equal(t, 1, s.calls)
	}

	for _, res := range []*specification.Result[person]{first, second} {
		assert.False(t, res.IsValid())
		assert.Equal(t, "adults only", res.ErrorMessage())
		assert.True(t, res.HasErrorKey(specification.KeyFor[*countingAdult]()))
	}
}

func TestMisuse(t *testing.T) {
	t.Parallel()

	t.Run("nil specification panics", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithError(t, specification.ErrNilSpecification.Error(), func() {
			specification.Create(adult).Is(nil)
		})
		assert.PanicsWithError(t, specification.ErrNilSpecification.Error(), func() {
			specification.Create(adult).Is(isAdult{}).OrIsNot(nil)
		})
	})

	t.Run("nil factory panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			specification.Create(adult).IsFrom(nil)
		})
		op := specification.Create(adult).IsFrom(func() specification.Specification[person] { return nil })
		assert.PanicsWithError(t, specification.ErrNilSpecification.Error(), func() {
			op.GetResult()
		})
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("custom separator", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(person{}, specification.WithSeparator("; ")).
			Is(isAdult{}).
			AndIs(hasName{}).
			GetResult()

		assert.Equal(t, "must be an adult; name is required", res.ErrorMessage())
	})

	t.Run("config separator", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(person{}, specification.WithConfig(specification.Config{ErrorSeparator: ", "})).
			Is(isAdult{}).
			AndIs(hasName{}).
			GetResult()

		assert.Equal(t, "must be an adult, name is required", res.ErrorMessage())
	})

	t.Run("empty config keeps defaults", func(t *testing.T) {
		t.Parallel()
		res := specification.Create(person{}, specification.WithConfig(specification.Config{}), nil).
			Is(isAdult{}).
			AndIs(hasName{}).
			GetResult()

		assert.Equal(t, "must be an adult\nname is required", res.ErrorMessage())
	})

	t.Run("logs evaluation at debug level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithFormat(logger.FormatText),
			logger.WithLevel(slog.LevelDebug),
		)

		specification.Create(minor, specification.WithLogger(log), specification.WithLogger(nil)).
			Is(isAdult{}).
			OrIs(isAdmin{}).
			GetResult()

		out := buf.String()
		assert.Contains(t, out, "specification entry failed")
		assert.Contains(t, out, "expecting=true")
		assert.Contains(t, out, "specification group evaluated")
		assert.Contains(t, out, "group=1")
		assert.Contains(t, out, "specification evaluated")
		assert.Contains(t, out, "valid=false")
		assert.Contains(t, out, "groups=2")
	})

	t.Run("silent by default", func(t *testing.T) {
		t.Parallel()
		require.NotPanics(t, func() {
			specification.Create(minor).Is(isAdult{}).GetResult()
		})
	})
}
