// Package store implements the selector's hierarchy traversal and
// application resolution over SQL.
package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	appstore "landscape/internal/application/store"
	id "landscape/pkg/domain"
	"landscape/pkg/platform/tx"
)

// hierarchy names the table and parent pointer column of a hierarchical kind.
type hierarchy struct {
	table        string
	parentColumn string
}

var hierarchies = map[id.EntityKind]hierarchy{
	id.KindOrgUnit:          {table: "organisational_unit", parentColumn: "parent_id"},
	id.KindMeasurable:       {table: "measurable", parentColumn: "parent_id"},
	id.KindPerson:           {table: "person", parentColumn: "manager_id"},
	id.KindChangeInitiative: {table: "change_initiative", parentColumn: "parent_id"},
}

var tables = map[id.EntityKind]string{
	id.KindApplication:        "application",
	id.KindAppGroup:           "application_group",
	id.KindChangeInitiative:   "change_initiative",
	id.KindOrgUnit:            "organisational_unit",
	id.KindPerson:             "person",
	id.KindMeasurable:         "measurable",
	id.KindMeasurableCategory: "measurable_category",
	id.KindInvolvementKind:    "involvement_kind",
}

// SQLStore implements selector.HierarchyStore and selector.ApplicationResolver.
type SQLStore struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

// Exists reports whether ref names a row. Kinds without a table never exist.
func (s *SQLStore) Exists(ctx context.Context, ref id.EntityReference) (bool, error) {
	table, ok := tables[ref.Kind]
	if !ok {
		return false, nil
	}
	var n int
	query := s.db.Rebind(fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE id = ?", table))
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &n, query, ref.ID); err != nil {
		return false, fmt.Errorf("check %s exists: %w", ref.Kind, err)
	}
	return n > 0, nil
}

// ChildIDs returns the direct children of parentIDs.
func (s *SQLStore) ChildIDs(ctx context.Context, kind id.EntityKind, parentIDs []int64) ([]int64, error) {
	h, ok := hierarchies[kind]
	if !ok {
		return nil, nil
	}
	return s.selectIDs(ctx,
		fmt.Sprintf("SELECT id FROM %s WHERE %s IN (?)", h.table, h.parentColumn),
		parentIDs)
}

// ParentIDs returns the direct parents of childIDs.
func (s *SQLStore) ParentIDs(ctx context.Context, kind id.EntityKind, childIDs []int64) ([]int64, error) {
	h, ok := hierarchies[kind]
	if !ok {
		return nil, nil
	}
	return s.selectIDs(ctx,
		fmt.Sprintf("SELECT DISTINCT %[2]s FROM %[1]s WHERE id IN (?) AND %[2]s IS NOT NULL", h.table, h.parentColumn),
		childIDs)
}

func (s *SQLStore) ActiveApplicationIDs(ctx context.Context, appIDs []int64) ([]int64, error) {
	return s.selectIDs(ctx,
		"SELECT a.id FROM application a WHERE a.id IN (?) AND "+appstore.IsActive("a"),
		appIDs)
}

func (s *SQLStore) ApplicationIDsForGroups(ctx context.Context, groupIDs []int64) ([]int64, error) {
	return s.selectIDs(ctx, `SELECT DISTINCT a.id
		FROM application_group_entry e
		JOIN application a ON a.id = e.application_id
		WHERE e.group_id IN (?) AND `+appstore.IsActive("a"),
		groupIDs)
}

func (s *SQLStore) ApplicationIDsForOrgUnits(ctx context.Context, orgUnitIDs []int64) ([]int64, error) {
	return s.selectIDs(ctx,
		"SELECT a.id FROM application a WHERE a.organisational_unit_id IN (?) AND "+appstore.IsActive("a"),
		orgUnitIDs)
}

func (s *SQLStore) ApplicationIDsForPeople(ctx context.Context, personIDs []int64) ([]int64, error) {
	return s.selectIDs(ctx, `SELECT DISTINCT a.id
		FROM involvement i
		JOIN application a ON a.id = i.entity_id
		WHERE i.entity_kind = 'APPLICATION' AND i.person_id IN (?) AND `+appstore.IsActive("a"),
		personIDs)
}

func (s *SQLStore) ApplicationIDsForMeasurables(ctx context.Context, measurableIDs []int64) ([]int64, error) {
	return s.selectIDs(ctx, `SELECT DISTINCT a.id
		FROM measurable_rating r
		JOIN application a ON a.id = r.entity_id
		WHERE r.entity_kind = 'APPLICATION' AND r.measurable_id IN (?) AND `+appstore.IsActive("a"),
		measurableIDs)
}

// selectIDs expands the single IN (?) placeholder in query with ids.
func (s *SQLStore) selectIDs(ctx context.Context, query string, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q, args, err := sqlx.In(query, ids)
	if err != nil {
		return nil, fmt.Errorf("build id query: %w", err)
	}
	var out []int64
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &out, s.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("select ids: %w", err)
	}
	return out, nil
}
