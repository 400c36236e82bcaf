package specification_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrymomot/specificathor/pkg/specification"
)

func ExampleCreate() {
	res := specification.Create(person{Name: "Kid", Age: 9}).
		Is(isAdult{}).
		UseThisErrorMessageIfFails("adults only").
		OrIs(isAdmin{}).
		GetResult()

	fmt.Println(res.IsValid())
	fmt.Println(res.ErrorMessage())
	fmt.Println(specification.HasError[isAdult](res))
	// Output:
	// false
	// must be an admin
	// false
}

func ExampleCreateAll() {
	people := []person{
		{Name: "Ann", Age: 30},
		{Age: 40},
	}

	res, err := specification.CreateAll(people).
		Is(isAdult{}).
		AndIs(hasName{}).
		GetResults(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(res.IsValid(), res.TotalOfErrors())
	fmt.Println(res.ErrorMessage())
	// Output:
	// false 1
	// name is required
}

func ExampleNew() {
	even := specification.New("even", "must be even", func(n int) bool { return n%2 == 0 })

	res := specification.Create(3).Is(even).GetResult()
	fmt.Println(res.HasErrorKey("even"), res.ErrorMessage())
	// Output: true must be even
}

func BenchmarkGetResult(b *testing.B) {
	op := specification.Create(person{Name: "Ann", Age: 12}).
		Is(isAdult{}).
		AndIs(hasName{}).
		OrIs(isAdmin{}).
		OrIsNot(isBanned{})

	for b.Loop() {
		_ = op.GetResult()
	}
}

func BenchmarkCreateAll(b *testing.B) {
	people := make([]person, 256)
	for i := range people {
		people[i] = person{Name: "p", Age: i % 40}
	}
	op := specification.CreateAll(people).Is(isAdult{}).AndIs(hasName{})
	ctx := context.Background()

	for b.Loop() {
		if _, err := op.GetResults(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
