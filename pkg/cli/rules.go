package cli

import (
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/dmitrymomot/specificathor/pkg/specification"
	"github.com/dmitrymomot/specificathor/pkg/specs"
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// RuleSet is a named, compiled chain applied to every checked value.
type RuleSet struct {
	Name        string
	Description string
	apply       func(*specification.Batch[string]) *specification.BatchOperator[string]
}

var ruleSets = []RuleSet{
	{
		Name:        "username",
		Description: "3-32 lowercase letters, digits or underscores; reserved names rejected",
		apply: func(b *specification.Batch[string]) *specification.BatchOperator[string] {
			return b.Is(specs.NotBlank()).
				AndIs(specs.MinLen(3)).
				AndIs(specs.MaxLen(32)).
				AndIs(specs.Matches(usernamePattern, "lowercase letters, digits or underscores")).
				AndIsNot(specs.OneOfFold("admin", "root", "system")).
				UseThisErrorMessageIfFails("is a reserved name")
		},
	},
	{
		Name:        "uuid",
		Description: "canonical UUID string other than the nil UUID",
		apply: func(b *specification.Batch[string]) *specification.BatchOperator[string] {
			return b.Is(specs.ValidUUID()).
				AndIsNot(specs.Equal(uuid.Nil.String())).
				UseThisErrorMessageIfFails("must not be the nil UUID")
		},
	},
	{
		Name:        "email",
		Description: "plain email address up to 254 characters",
		apply: func(b *specification.Batch[string]) *specification.BatchOperator[string] {
			return b.Is(specs.Email()).AndIs(specs.MaxLen(254))
		},
	},
}

// RuleSets returns the built-in rule sets sorted by name.
func RuleSets() []RuleSet {
	out := slices.Clone(ruleSets)
	slices.SortFunc(out, func(a, b RuleSet) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// LookupRuleSet finds a rule set by name, ignoring case.
func LookupRuleSet(name string) (RuleSet, error) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(name))
	for _, rs := range ruleSets {
		if fold.String(rs.Name) == want {
			return rs, nil
		}
	}
	return RuleSet{}, ErrUnknownRuleSet
}

// Check applies the rule set to values.
func (rs RuleSet) Check(values []string, opts ...specification.Option) *specification.BatchOperator[string] {
	return rs.apply(specification.CreateAll(values, opts...))
}

func ruleSetNames() []string {
	names := make([]string, 0, len(ruleSets))
	for _, rs := range RuleSets() {
		names = append(names, rs.Name)
	}
	return names
}
