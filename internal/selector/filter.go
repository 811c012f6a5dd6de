package selector

import (
	"slices"

	id "landscape/pkg/domain"
)

// Filter is an immutable set of ids over one entity kind. The zero value is
// an empty filter. An empty filter is a valid compile result.
type Filter struct {
	kind id.EntityKind
	ids  []int64 // sorted, unique
}

// NewFilter builds a filter from ids, dropping duplicates.
func NewFilter(kind id.EntityKind, ids ...int64) Filter {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	return Filter{kind: kind, ids: slices.Compact(sorted)}
}

func (f Filter) Kind() id.EntityKind {
	return f.kind
}

func (f Filter) Contains(v int64) bool {
	_, found := slices.BinarySearch(f.ids, v)
	return found
}

// IDs returns a sorted copy of the ids.
func (f Filter) IDs() []int64 {
	return slices.Clone(f.ids)
}

func (f Filter) Len() int {
	return len(f.ids)
}

func (f Filter) IsEmpty() bool {
	return len(f.ids) == 0
}
