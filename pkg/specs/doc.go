// Package specs is a catalog of ready-made specifications for common value
// checks: strings, numbers, comparable values, slices and UUIDs.
//
// Every constructor returns a specification.Specification[T] with a stable
// Key (exported as a Key* constant) and a default English message, so the
// results of a chain can be inspected with Result.HasErrorKey:
//
//	res := specification.Create(username).
//	    Is(specs.NotBlank()).
//	    AndIs(specs.MinLen(3)).
//	    AndIs(specs.Alphanumeric()).
//	    GetResult()
//
//	if res.HasErrorKey(specs.KeyMinLength) {
//	    // ...
//	}
//
// Parameterised constructors (MinLen(3), MinLen(5)) share a key: the key
// names the kind of rule, not its arguments. Use UseThisErrorMessageIfFails
// or Func when a chain needs a distinct message or identity.
//
// All specifications in this package are immutable and safe to share across
// goroutines.
package specs
