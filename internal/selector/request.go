package selector

import (
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// ScopeRequest is the JSON form of a selection scope accepted by handlers.
//
//	{"entity_reference": {"kind": "ORG_UNIT", "id": 10}, "scope": "CHILDREN"}
type ScopeRequest struct {
	EntityReference struct {
		Kind string `json:"kind"`
		ID   int64  `json:"id"`
	} `json:"entity_reference"`
	Scope string `json:"scope"`

	parsed SelectionScope
}

// Validate normalizes the kind and breadth. A missing scope means EXACT.
func (r *ScopeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	kind, err := id.ParseEntityKind(r.EntityReference.Kind)
	if err != nil {
		return err
	}
	breadth := ScopeExact
	if r.Scope != "" {
		if breadth, err = ParseScopeKind(r.Scope); err != nil {
			return err
		}
	}
	scope := SelectionScope{Root: id.MkRef(kind, r.EntityReference.ID), Breadth: breadth}
	if err := scope.Validate(); err != nil {
		return err
	}
	r.parsed = scope
	return nil
}

// SelectionScope returns the scope parsed by Validate.
func (r *ScopeRequest) SelectionScope() SelectionScope {
	return r.parsed
}
