package spec

import (
	"fmt"

	"github.com/google/uuid"
)

// SpecificationID identifies one top-level annotated assertion. IDs are
// never reused across unrelated assertions; uuid generation guarantees
// that without coordination between pipeline stages.
type SpecificationID string

// NewSpecificationID mints a fresh specification identifier
func NewSpecificationID() SpecificationID {
	return SpecificationID(uuid.NewString())
}

// ParseSpecificationID validates a wire-carried specification identifier
func ParseSpecificationID(s string) (SpecificationID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return "", fmt.Errorf("invalid specification id %q: %w", s, err)
	}
	return SpecificationID(s), nil
}

// ExpressionID identifies one leaf sub-expression within its owning
// specification. Uniqueness holds per SpecificationID, not globally.
type ExpressionID uint64
