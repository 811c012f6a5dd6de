package domain

import (
	"fmt"
	"strconv"
	"strings"

	dErrors "landscape/pkg/domain-errors"
)

// EntityReference identifies any domain entity by kind and id. It is a
// comparable value: two references are equal when kind and id are equal.
type EntityReference struct {
	Kind EntityKind `json:"kind"`
	ID   int64      `json:"id"`
}

// MkRef builds a reference without validation. Use it for values that are
// already trusted (store rows, constants).
func MkRef(kind EntityKind, id int64) EntityReference {
	return EntityReference{Kind: kind, ID: id}
}

// ParseEntityReference builds a reference from untrusted path segments.
func ParseEntityReference(kind, id string) (EntityReference, error) {
	k, err := ParseEntityKind(kind)
	if err != nil {
		return EntityReference{}, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil {
		return EntityReference{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid entity id: %q", id)
	}
	ref := EntityReference{Kind: k, ID: n}
	if err := ref.Validate(); err != nil {
		return EntityReference{}, err
	}
	return ref, nil
}

// Validate checks the kind is known and the id is positive.
func (r EntityReference) Validate() error {
	if !r.Kind.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "unknown entity kind: %q", r.Kind)
	}
	if r.ID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "entity id must be positive")
	}
	return nil
}

// IsZero reports whether the reference is unset.
func (r EntityReference) IsZero() bool {
	return r == EntityReference{}
}

func (r EntityReference) String() string {
	return fmt.Sprintf("%s/%d", r.Kind, r.ID)
}
