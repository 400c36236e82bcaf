// Package specification provides a fluent, type-safe way to combine reusable
// boolean predicates ("specifications") into AND groups joined by OR, evaluate
// them against a single candidate value, and collect readable error messages
// for the predicates that failed.
//
// A specification is any value implementing Specification[T]: a boolean
// IsSatisfiedBy check plus a default error message. Small ad-hoc
// specifications can be built with New, larger ones are usually declared as
// named types so they can be referenced by type in HasError.
//
// # Architecture
//
// Create wraps a candidate and returns a Candidate whose only methods are Is
// and IsNot, so every chain starts with a plain predicate. Those return an
// Operator that accumulates validator entries:
//
//   - Is / IsNot / AndIs / AndIsNot append to the current group (AND).
//   - OrIs / OrIsNot open a new group and append to it (OR).
//   - UseThisErrorMessageIfFails replaces the message of the entry that was
//     appended last.
//
// GetResult walks the groups in order. Every entry of a group is evaluated;
// an entry passes when the predicate outcome equals its expectation. The
// first group without failures makes the result valid and stops evaluation.
// A failing group replaces the errors retained from earlier groups, so an
// invalid result always reports the failures of the last group evaluated and
// never a union of all branches.
//
// CreateAll applies the same chain to a slice of candidates. Every candidate
// gets its own builder and the batch is evaluated concurrently.
//
// # Usage
//
//	res := specification.Create(user).
//	    Is(IsActive{}).
//	    AndIsNot(IsBanned{}).
//	    UseThisErrorMessageIfFails("user is banned").
//	    OrIs(IsAdmin{}).
//	    GetResult()
//
//	if !res.IsValid() {
//	    fmt.Println(res.ErrorMessage())
//	    if specification.HasError[IsBanned](res) {
//	        // ...
//	    }
//	}
//
// # Error Handling
//
// Failing predicates are never reported as Go errors by the chain itself.
// Result.Err converts an invalid result into Errors, which implements error
// and matches ErrNotSatisfied with errors.Is. Programming mistakes such as
// passing a nil specification panic with ErrNilSpecification. A factory that
// returns nil panics the same way when the chain is evaluated.
//
// # Concurrency
//
// A builder is meant for a single goroutine and a single chain. Builders share
// no state, so validating many candidates concurrently only requires one
// builder per candidate, which is what CreateAll does.
package specification
