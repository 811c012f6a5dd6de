package association

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	id "landscape/pkg/domain"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/platform/tx"
	"landscape/pkg/requestcontext"
)

type entryRow struct {
	GroupID    int64     `db:"group_id"`
	MemberID   int64     `db:"member_id"`
	Name       string    `db:"name"`
	IsReadOnly bool      `db:"is_readonly"`
	Provenance string    `db:"provenance"`
	CreatedAt  time.Time `db:"created_at"`
}

// Store runs insert-ignore, guarded delete and active-join reads over one
// association table.
type Store struct {
	db  *sqlx.DB
	def Definition

	selectSQL     string
	memberSQL     string
	insertSQL     string
	removeSQL     string
	removeManySQL string
}

// NewStore prepares the statements for def.
func NewStore(db *sqlx.DB, def Definition) *Store {
	s := &Store{db: db, def: def}
	s.selectSQL = db.Rebind(fmt.Sprintf(`SELECT e.%[2]s AS group_id, e.%[3]s AS member_id, m.name,
			e.is_readonly, e.provenance, e.created_at
		FROM %[1]s e
		JOIN %[4]s m ON m.id = e.%[3]s
		WHERE e.%[2]s = ? AND %[5]s
		ORDER BY m.name, m.id`,
		def.Table, def.GroupColumn, def.MemberColumn, def.MemberTable, def.MemberActive))
	s.memberSQL = db.Rebind(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE id = ?`, def.MemberTable))
	s.insertSQL = db.Rebind(fmt.Sprintf(`INSERT INTO %s (%s, %s, is_readonly, provenance, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING`,
		def.Table, def.GroupColumn, def.MemberColumn))
	s.removeSQL = db.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND %s = ? AND is_readonly = FALSE`,
		def.Table, def.GroupColumn, def.MemberColumn))
	// expanded by sqlx.In per call, rebound after expansion
	s.removeManySQL = fmt.Sprintf(`DELETE FROM %s WHERE %s = ? AND %s IN (?) AND is_readonly = FALSE`,
		def.Table, def.GroupColumn, def.MemberColumn)
	return s
}

// FindEntriesForGroup lists entries whose member is active, ordered by
// member name.
func (s *Store) FindEntriesForGroup(ctx context.Context, groupID int64) ([]Entry, error) {
	var rows []entryRow
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &rows, s.selectSQL, groupID); err != nil {
		return nil, fmt.Errorf("find %s entries: %w", s.def.Table, err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			GroupID:    r.GroupID,
			Member:     id.MkRef(s.def.MemberKind, r.MemberID),
			Name:       r.Name,
			IsReadOnly: r.IsReadOnly,
			Provenance: r.Provenance,
			CreatedAt:  r.CreatedAt,
		})
	}
	return entries, nil
}

// AddEntry inserts a locally owned entry. It returns 1 when created and 0
// when the pair already existed. A member that does not exist yields
// sentinel.ErrNotFound.
func (s *Store) AddEntry(ctx context.Context, groupID, memberID int64) (int, error) {
	return s.insert(ctx, groupID, memberID, id.LocalProvenance)
}

// AddExternalEntry inserts an entry on behalf of another system. Entries
// whose provenance is not local are read-only from creation on.
func (s *Store) AddExternalEntry(ctx context.Context, groupID, memberID int64, provenance string) (int, error) {
	return s.insert(ctx, groupID, memberID, provenance)
}

// AddEntries inserts each member independently. One member failing does not
// stop the others; every outcome is reported.
func (s *Store) AddEntries(ctx context.Context, groupID int64, memberIDs []int64) []AddOutcome {
	outcomes := make([]AddOutcome, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		n, err := s.insert(ctx, groupID, memberID, id.LocalProvenance)
		outcomes = append(outcomes, AddOutcome{MemberID: memberID, Inserted: n, Err: err})
	}
	return outcomes
}

// RemoveEntry deletes a writable entry. Read-only or absent entries leave
// the table unchanged and return 0.
func (s *Store) RemoveEntry(ctx context.Context, groupID, memberID int64) (int, error) {
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, s.removeSQL, groupID, memberID)
	if err != nil {
		return 0, fmt.Errorf("remove %s entry: %w", s.def.Table, err)
	}
	return affected(res)
}

// RemoveEntries deletes the writable entries among memberIDs in one
// statement. Read-only entries are skipped.
func (s *Store) RemoveEntries(ctx context.Context, groupID int64, memberIDs []int64) (int, error) {
	if len(memberIDs) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In(s.removeManySQL, groupID, memberIDs)
	if err != nil {
		return 0, fmt.Errorf("build remove %s query: %w", s.def.Table, err)
	}
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("remove %s entries: %w", s.def.Table, err)
	}
	return affected(res)
}

func (s *Store) insert(ctx context.Context, groupID, memberID int64, provenance string) (int, error) {
	if err := s.requireMember(ctx, memberID); err != nil {
		return 0, err
	}
	readOnly := provenance != id.LocalProvenance
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, s.insertSQL,
		groupID, memberID, readOnly, provenance, requestcontext.Now(ctx).UTC())
	if err != nil {
		return 0, fmt.Errorf("add %s entry: %w", s.def.Table, err)
	}
	return affected(res)
}

func (s *Store) requireMember(ctx context.Context, memberID int64) error {
	var n int
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &n, s.memberSQL, memberID); err != nil {
		return fmt.Errorf("check %s %d: %w", s.def.MemberTable, memberID, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", s.def.MemberTable, memberID, sentinel.ErrNotFound)
	}
	return nil
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func affected(res rowsAffecter) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
