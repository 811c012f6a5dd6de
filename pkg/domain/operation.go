package domain

import (
	"slices"
	"strings"

	dErrors "landscape/pkg/domain-errors"
)

// Operation is a mutation a caller may be permitted to perform.
type Operation string

const (
	OperationAdd    Operation = "ADD"
	OperationUpdate Operation = "UPDATE"
	OperationRemove Operation = "REMOVE"
	OperationAttest Operation = "ATTEST"
)

// ParseOperation validates an operation name.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToUpper(strings.TrimSpace(s)))
	switch op {
	case OperationAdd, OperationUpdate, OperationRemove, OperationAttest:
		return op, nil
	}
	return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown operation: %q", s)
}

// OperationSet is an unordered set of operations.
type OperationSet map[Operation]struct{}

// NewOperationSet builds a set from the given operations.
func NewOperationSet(ops ...Operation) OperationSet {
	set := make(OperationSet, len(ops))
	for _, op := range ops {
		set[op] = struct{}{}
	}
	return set
}

func (s OperationSet) Contains(op Operation) bool {
	_, ok := s[op]
	return ok
}

// Add inserts ops into the set. The set must be non-nil.
func (s OperationSet) Add(ops ...Operation) {
	for _, op := range ops {
		s[op] = struct{}{}
	}
}

// Intersects reports whether the two sets share at least one operation.
// An empty set never intersects.
func (s OperationSet) Intersects(other OperationSet) bool {
	for op := range s {
		if other.Contains(op) {
			return true
		}
	}
	return false
}

// Sorted returns the operations in lexical order.
func (s OperationSet) Sorted() []Operation {
	out := make([]Operation, 0, len(s))
	for op := range s {
		out = append(out, op)
	}
	slices.Sort(out)
	return out
}
