package specification

// Expecting tells whether a predicate must hold or must not hold for its entry
// to pass.
type Expecting uint8

const (
	ExpectingTrue Expecting = iota
	ExpectingFalse
)

func (e Expecting) String() string {
	if e == ExpectingFalse {
		return "false"
	}
	return "true"
}

// Matches reports whether a predicate outcome satisfies the expectation.
func (e Expecting) Matches(outcome bool) bool {
	return outcome == (e == ExpectingTrue)
}
