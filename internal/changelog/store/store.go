package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"landscape/internal/changelog/models"
	id "landscape/pkg/domain"
	"landscape/pkg/platform/tx"
)

// DefaultLimit caps FindByParent when the caller passes a non-positive limit.
const DefaultLimit = 100

type entryRow struct {
	ID         string    `db:"id"`
	ParentKind string    `db:"parent_kind"`
	ParentID   int64     `db:"parent_id"`
	Message    string    `db:"message"`
	UserID     string    `db:"user_id"`
	Severity   string    `db:"severity"`
	Operation  string    `db:"operation"`
	ChildKind  string    `db:"child_kind"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r entryRow) toModel() (models.Entry, error) {
	entryID, err := uuid.Parse(r.ID)
	if err != nil {
		return models.Entry{}, fmt.Errorf("parse change log id %q: %w", r.ID, err)
	}
	return models.Entry{
		ID:        entryID,
		Parent:    id.MkRef(id.EntityKind(r.ParentKind), r.ParentID),
		Message:   r.Message,
		UserID:    r.UserID,
		Severity:  models.Severity(r.Severity),
		Operation: id.Operation(r.Operation),
		ChildKind: id.EntityKind(r.ChildKind),
		CreatedAt: r.CreatedAt,
	}, nil
}

// Store persists change log entries.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, e models.Entry) error {
	query := s.db.Rebind(`INSERT INTO change_log
		(id, parent_kind, parent_id, message, user_id, severity, operation, child_kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := tx.Execer(ctx, s.db).ExecContext(ctx, query,
		e.ID.String(), string(e.Parent.Kind), e.Parent.ID, e.Message, e.UserID,
		string(e.Severity), string(e.Operation), string(e.ChildKind), e.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("append change log: %w", err)
	}
	return nil
}

// FindByParent returns the newest entries for parent first.
func (s *Store) FindByParent(ctx context.Context, parent id.EntityReference, limit int) ([]models.Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	query := s.db.Rebind(`SELECT id, parent_kind, parent_id, message, user_id, severity, operation,
			child_kind, created_at
		FROM change_log
		WHERE parent_kind = ? AND parent_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?`)
	var rows []entryRow
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &rows, query, string(parent.Kind), parent.ID, limit); err != nil {
		return nil, fmt.Errorf("find change log: %w", err)
	}
	entries := make([]models.Entry, 0, len(rows))
	for _, r := range rows {
		e, err := r.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
