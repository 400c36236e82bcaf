package specs

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/dmitrymomot/specificathor/pkg/specification"
)

const (
	KeyNotBlank     specification.Key = "not_blank"
	KeyMinLength    specification.Key = "min_length"
	KeyMaxLength    specification.Key = "max_length"
	KeyExactLength  specification.Key = "exact_length"
	KeyPattern      specification.Key = "pattern"
	KeyEmail        specification.Key = "email"
	KeyAlphanumeric specification.Key = "alphanumeric"
	KeyOneOf        specification.Key = "one_of"
	KeyOneOfFold    specification.Key = "one_of_fold"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Func builds a named specification from a check function.
func Func[T any](key specification.Key, message string, check func(T) bool) specification.Specification[T] {
	return specification.New(string(key), message, check)
}

// NotBlank holds for strings with at least one non-whitespace character.
func NotBlank() specification.Specification[string] {
	return Func(KeyNotBlank, "must not be blank", func(v string) bool {
		return strings.TrimSpace(v) != ""
	})
}

// MinLen holds for strings of at least min characters (runes).
func MinLen(min int) specification.Specification[string] {
	return Func(KeyMinLength, fmt.Sprintf("must be at least %d characters long", min), func(v string) bool {
		return utf8.RuneCountInString(v) >= min
	})
}

// MaxLen holds for strings of at most max characters (runes).
func MaxLen(max int) specification.Specification[string] {
	return Func(KeyMaxLength, fmt.Sprintf("must be at most %d characters long", max), func(v string) bool {
		return utf8.RuneCountInString(v) <= max
	})
}

// Len holds for strings of exactly n characters (runes).
func Len(n int) specification.Specification[string] {
	return Func(KeyExactLength, fmt.Sprintf("must be exactly %d characters long", n), func(v string) bool {
		return utf8.RuneCountInString(v) == n
	})
}

// Matches holds for strings matched by re. description is used in the
// message, e.g. "a slug".
func Matches(re *regexp.Regexp, description string) specification.Specification[string] {
	return Func(KeyPattern, fmt.Sprintf("must be %s", description), func(v string) bool {
		return re.MatchString(v)
	})
}

// Email holds for plain addresses (no display name) whose domain has at
// least two non-empty labels.
func Email() specification.Specification[string] {
	return Func(KeyEmail, "must be a valid email address", func(v string) bool {
		if strings.TrimSpace(v) == "" {
			return false
		}

		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v {
			return false
		}

		local, domain, ok := strings.Cut(addr.Address, "@")
		if !ok || local == "" || !strings.Contains(domain, ".") {
			return false
		}
		for part := range strings.SplitSeq(domain, ".") {
			if part == "" {
				return false
			}
		}
		return true
	})
}

// Alphanumeric holds for non-empty ASCII letters and digits only.
func Alphanumeric() specification.Specification[string] {
	return Func(KeyAlphanumeric, "must contain only letters and numbers", func(v string) bool {
		return alphanumericRegex.MatchString(v)
	})
}

// OneOf holds for strings equal to one of options.
func OneOf(options ...string) specification.Specification[string] {
	allowed := make(map[string]struct{}, len(options))
	for _, o := range options {
		allowed[o] = struct{}{}
	}
	return Func(KeyOneOf, fmt.Sprintf("must be one of: %s", strings.Join(options, ", ")), func(v string) bool {
		_, ok := allowed[v]
		return ok
	})
}

// OneOfFold is OneOf with Unicode case folding.
func OneOfFold(options ...string) specification.Specification[string] {
	fold := cases.Fold()
	allowed := make(map[string]struct{}, len(options))
	for _, o := range options {
		allowed[fold.String(o)] = struct{}{}
	}
	message := fmt.Sprintf("must be one of (case-insensitive): %s", strings.Join(options, ", "))
	return Func(KeyOneOfFold, message, func(v string) bool {
		// Casers are not shared between calls.
		_, ok := allowed[cases.Fold().String(v)]
		return ok
	})
}
