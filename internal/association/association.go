// Package association is the generic repository over many-to-many group
// membership tables. It owns the read-only guard: no other write path
// deletes association rows.
package association

import (
	"time"

	appstore "landscape/internal/application/store"
	id "landscape/pkg/domain"
)

// Definition parameterises one association table. MemberActive is a SQL
// predicate over the member table aliased as m.
type Definition struct {
	Table        string
	GroupColumn  string
	MemberColumn string
	MemberKind   id.EntityKind
	MemberTable  string
	MemberActive string
}

// ApplicationEntries links application groups to applications.
var ApplicationEntries = Definition{
	Table:        "application_group_entry",
	GroupColumn:  "group_id",
	MemberColumn: "application_id",
	MemberKind:   id.KindApplication,
	MemberTable:  "application",
	MemberActive: appstore.IsActive("m"),
}

// ChangeInitiativeEntries links application groups to change initiatives.
var ChangeInitiativeEntries = Definition{
	Table:        "application_group_ci_entry",
	GroupColumn:  "group_id",
	MemberColumn: "change_initiative_id",
	MemberKind:   id.KindChangeInitiative,
	MemberTable:  "change_initiative",
	MemberActive: "m.entity_lifecycle_status = 'ACTIVE'",
}

// Entry is one edge of an association.
type Entry struct {
	GroupID    int64              `json:"group_id"`
	Member     id.EntityReference `json:"entity_reference"`
	Name       string             `json:"name"`
	IsReadOnly bool               `json:"is_readonly"`
	Provenance string             `json:"provenance"`
	CreatedAt  time.Time          `json:"created_at"`
}

// AddOutcome reports one member of a batch add. Inserted is 1 when a row was
// created and 0 when the pair already existed.
type AddOutcome struct {
	MemberID int64 `json:"member_id"`
	Inserted int   `json:"inserted"`
	Err      error `json:"-"`
}

// Inserted sums the rows created by a batch.
func Inserted(outcomes []AddOutcome) int {
	n := 0
	for _, o := range outcomes {
		n += o.Inserted
	}
	return n
}
