package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"landscape/internal/involvement/models"
	id "landscape/pkg/domain"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/platform/tx"
)

type involvementRow struct {
	EntityKind string `db:"entity_kind"`
	EntityID   int64  `db:"entity_id"`
	PersonID   int64  `db:"person_id"`
	KindID     int64  `db:"kind_id"`
	IsReadOnly bool   `db:"is_readonly"`
	Provenance string `db:"provenance"`
}

// Store persists involvement kinds, involvements and the operations
// involvements grant.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindKinds(ctx context.Context) ([]models.Kind, error) {
	kinds := []models.Kind{}
	query := `SELECT id, name, description, external_id FROM involvement_kind ORDER BY name`
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &kinds, query); err != nil {
		return nil, fmt.Errorf("find involvement kinds: %w", err)
	}
	return kinds, nil
}

func (s *Store) FindKind(ctx context.Context, kindID int64) (*models.Kind, error) {
	var k models.Kind
	query := s.db.Rebind(`SELECT id, name, description, external_id FROM involvement_kind WHERE id = ?`)
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &k, query, kindID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find involvement kind: %w", err)
	}
	return &k, nil
}

// CreateKind returns sentinel.ErrConflict when the name is taken.
func (s *Store) CreateKind(ctx context.Context, cmd models.CreateKindCommand) (int64, error) {
	var newID int64
	query := s.db.Rebind(`INSERT INTO involvement_kind (name, description, external_id)
		VALUES (?, ?, ?)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`)
	err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &newID, query, cmd.Name, cmd.Description, cmd.ExternalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, sentinel.ErrConflict
		}
		return 0, fmt.Errorf("create involvement kind: %w", err)
	}
	return newID, nil
}

func (s *Store) FindByEntity(ctx context.Context, ref id.EntityReference) ([]models.Involvement, error) {
	var rows []involvementRow
	query := s.db.Rebind(`SELECT entity_kind, entity_id, person_id, kind_id, is_readonly, provenance
		FROM involvement
		WHERE entity_kind = ? AND entity_id = ?
		ORDER BY kind_id, person_id`)
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &rows, query, string(ref.Kind), ref.ID); err != nil {
		return nil, fmt.Errorf("find involvements: %w", err)
	}
	out := make([]models.Involvement, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.Involvement{
			Entity:     id.MkRef(id.EntityKind(r.EntityKind), r.EntityID),
			PersonID:   r.PersonID,
			KindID:     r.KindID,
			IsReadOnly: r.IsReadOnly,
			Provenance: r.Provenance,
		})
	}
	return out, nil
}

// Add is insert-ignore: it returns 0 when the involvement already exists.
func (s *Store) Add(ctx context.Context, ref id.EntityReference, personID, kindID int64) (int, error) {
	query := s.db.Rebind(`INSERT INTO involvement (entity_kind, entity_id, person_id, kind_id, is_readonly, provenance)
		VALUES (?, ?, ?, ?, FALSE, ?)
		ON CONFLICT DO NOTHING`)
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, query,
		string(ref.Kind), ref.ID, personID, kindID, id.LocalProvenance)
	if err != nil {
		return 0, fmt.Errorf("add involvement: %w", err)
	}
	return affected(res)
}

// Remove never deletes read-only involvements.
func (s *Store) Remove(ctx context.Context, ref id.EntityReference, personID, kindID int64) (int, error) {
	query := s.db.Rebind(`DELETE FROM involvement
		WHERE entity_kind = ? AND entity_id = ? AND person_id = ? AND kind_id = ?
		  AND is_readonly = FALSE`)
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, query, string(ref.Kind), ref.ID, personID, kindID)
	if err != nil {
		return 0, fmt.Errorf("remove involvement: %w", err)
	}
	return affected(res)
}

// FindPermittedOperations lists the operations on subject kind granted to
// username through their involvements with parent. A permission without a
// qualifier applies to every qualifier.
func (s *Store) FindPermittedOperations(ctx context.Context, username string, parent id.EntityReference, subject id.EntityKind, qualifierID int64) ([]id.Operation, error) {
	var ops []string
	query := s.db.Rebind(`SELECT DISTINCT p.operation
		FROM involvement_permission p
		JOIN involvement i ON i.kind_id = p.involvement_kind_id
		JOIN person per ON per.id = i.person_id
		WHERE per.user_name = ? AND per.is_removed = FALSE
		  AND i.entity_kind = ? AND i.entity_id = ?
		  AND p.parent_kind = i.entity_kind
		  AND p.subject_kind = ?
		  AND (p.qualifier_id IS NULL OR p.qualifier_id = ?)
		ORDER BY p.operation`)
	err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &ops, query,
		username, string(parent.Kind), parent.ID, string(subject), qualifierID)
	if err != nil {
		return nil, fmt.Errorf("find permitted operations: %w", err)
	}
	out := make([]id.Operation, 0, len(ops))
	for _, op := range ops {
		out = append(out, id.Operation(op))
	}
	return out, nil
}

func affected(res sql.Result) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
