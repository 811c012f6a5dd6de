package domain

import (
	"strings"

	dErrors "landscape/pkg/domain-errors"
)

// EntityKind names the type of a domain entity.
// Invariant: the value must be one of the supported kinds.
//
// Usage: construct via ParseEntityKind at trust boundaries; direct casting
// bypasses validation.
type EntityKind string

const (
	KindApplication        EntityKind = "APPLICATION"
	KindAppGroup           EntityKind = "APP_GROUP"
	KindChangeInitiative   EntityKind = "CHANGE_INITIATIVE"
	KindOrgUnit            EntityKind = "ORG_UNIT"
	KindPerson             EntityKind = "PERSON"
	KindMeasurable         EntityKind = "MEASURABLE"
	KindMeasurableCategory EntityKind = "MEASURABLE_CATEGORY"
	KindMeasurableRating   EntityKind = "MEASURABLE_RATING"
	KindInvolvementKind    EntityKind = "INVOLVEMENT_KIND"
)

var validEntityKinds = map[EntityKind]bool{
	KindApplication:        true,
	KindAppGroup:           true,
	KindChangeInitiative:   true,
	KindOrgUnit:            true,
	KindPerson:             true,
	KindMeasurable:         true,
	KindMeasurableCategory: true,
	KindMeasurableRating:   true,
	KindInvolvementKind:    true,
}

// ParseEntityKind accepts kinds case-insensitively and with either '-' or '_'
// separators, matching how kinds appear in URL paths.
func ParseEntityKind(s string) (EntityKind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "entity kind cannot be empty")
	}
	k := EntityKind(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
	if !k.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown entity kind: %s", s)
	}
	return k, nil
}

// IsValid checks if the kind is one of the supported enum values.
func (k EntityKind) IsValid() bool {
	return validEntityKinds[k]
}

func (k EntityKind) String() string {
	return string(k)
}
