package specs

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/specificathor/pkg/specification"
)

const (
	KeyUUID        specification.Key = "uuid"
	KeyUUIDNotNil  specification.Key = "uuid_not_nil"
	KeyUUIDVersion specification.Key = "uuid_version"
)

// ValidUUID holds for strings in the canonical 36 character UUID form.
func ValidUUID() specification.Specification[string] {
	return Func(KeyUUID, "must be a valid UUID", func(v string) bool {
		_, ok := parseCanonicalUUID(v)
		return ok
	})
}

func NonNilUUID() specification.Specification[uuid.UUID] {
	return Func(KeyUUIDNotNil, "UUID cannot be nil", func(v uuid.UUID) bool {
		return v != uuid.Nil
	})
}

// UUIDVersion holds for canonical UUID strings of version v.
func UUIDVersion(v uuid.Version) specification.Specification[string] {
	return Func(KeyUUIDVersion, fmt.Sprintf("must be a version %d UUID", v), func(s string) bool {
		id, ok := parseCanonicalUUID(s)
		return ok && id.Version() == v
	})
}

// parseCanonicalUUID rejects the braced, URN and hyphen-less forms that
// uuid.Parse also accepts.
func parseCanonicalUUID(s string) (uuid.UUID, bool) {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
