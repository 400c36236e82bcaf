package specification_test

type person struct {
	Name   string
	Age    int
	Banned bool
	Admin  bool
}

type isAdult struct{}

func (isAdult) IsSatisfiedBy(p person) bool { return p.Age >= 18 }
func (isAdult) ErrorMessage() string        { return "must be an adult" }

type hasName struct{}

func (hasName) IsSatisfiedBy(p person) bool { return p.Name != "" }
func (hasName) ErrorMessage() string        { return "name is required" }

type isBanned struct{}

func (isBanned) IsSatisfiedBy(p person) bool { return p.Banned }
func (isBanned) ErrorMessage() string        { return "must be banned" }

type isAdmin struct{}

func (isAdmin) IsSatisfiedBy(p person) bool { return p.Admin }
func (isAdmin) ErrorMessage() string        { return "must be an admin" }

// isVIP has its own identity.
type isVIP struct{}

func (isVIP) IsSatisfiedBy(p person) bool { return p.Age >= 21 && p.Admin }
func (isVIP) ErrorMessage() string        { return "must be a VIP" }
func (isVIP) SpecificationName() string   { return "vip" }

// counting records how many times it was evaluated.
type counting struct {
	calls  *int
	result bool
}

func (c counting) IsSatisfiedBy(person) bool {
	*c.calls++
	return c.result
}

func (c counting) ErrorMessage() string { return "counting failed" }

// countingAdult is stateful so shared instances would be visible.
type countingAdult struct{ calls int }

func (s *countingAdult) IsSatisfiedBy(p person) bool {
	s.calls++
	return p.Age >= 18
}

func (s *countingAdult) ErrorMessage() string { return "must be an adult" }
