// Package selector compiles a selection scope (a root entity plus a
// traversal breadth) into an id filter that services reuse across queries.
package selector

import (
	"strings"

	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// ScopeKind is the traversal breadth of a selection.
type ScopeKind string

const (
	ScopeExact              ScopeKind = "EXACT"
	ScopeChildren           ScopeKind = "CHILDREN"
	ScopeParents            ScopeKind = "PARENTS"
	ScopeParentsAndChildren ScopeKind = "PARENTS_AND_CHILDREN"
)

// ParseScopeKind validates a scope name. Matching is case-insensitive.
func ParseScopeKind(s string) (ScopeKind, error) {
	k := ScopeKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", dErrors.Newf(dErrors.CodeValidation, "unknown scope: %q", s)
	}
	return k, nil
}

func (k ScopeKind) IsValid() bool {
	switch k {
	case ScopeExact, ScopeChildren, ScopeParents, ScopeParentsAndChildren:
		return true
	}
	return false
}

// selectableKinds are the entity kinds backed by a table with a plain id.
var selectableKinds = map[id.EntityKind]bool{
	id.KindApplication:        true,
	id.KindAppGroup:           true,
	id.KindChangeInitiative:   true,
	id.KindOrgUnit:            true,
	id.KindPerson:             true,
	id.KindMeasurable:         true,
	id.KindMeasurableCategory: true,
	id.KindInvolvementKind:    true,
}

// SelectionScope names the root entity and how far to traverse from it.
type SelectionScope struct {
	Root    id.EntityReference `json:"entity_reference"`
	Breadth ScopeKind          `json:"scope"`
}

// Exact is shorthand for a scope covering only ref.
func Exact(ref id.EntityReference) SelectionScope {
	return SelectionScope{Root: ref, Breadth: ScopeExact}
}

// Validate checks the scope before any store access.
func (s SelectionScope) Validate() error {
	if err := s.Root.Validate(); err != nil {
		return err
	}
	if !selectableKinds[s.Root.Kind] {
		return dErrors.Newf(dErrors.CodeValidation, "%s cannot be used as a selection root", s.Root.Kind)
	}
	if !s.Breadth.IsValid() {
		return dErrors.Newf(dErrors.CodeValidation, "unknown scope: %q", s.Breadth)
	}
	return nil
}

func (s SelectionScope) String() string {
	return string(s.Breadth) + "(" + s.Root.String() + ")"
}
