package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"landscape/internal/appgroup/models"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/platform/tx"
)

// Store reads application groups and their members.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// FindByID returns sentinel.ErrNotFound for missing and removed groups.
func (s *Store) FindByID(ctx context.Context, groupID int64) (*models.AppGroup, error) {
	var g models.AppGroup
	query := s.db.Rebind(`SELECT id, name, description, kind, is_removed
		FROM application_group
		WHERE id = ? AND is_removed = FALSE`)
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &g, query, groupID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application group: %w", err)
	}
	return &g, nil
}

// IsOwner reports whether username holds the owner role on the group.
func (s *Store) IsOwner(ctx context.Context, groupID int64, username string) (bool, error) {
	var n int
	query := s.db.Rebind(`SELECT COUNT(*) FROM application_group_member
		WHERE group_id = ? AND user_name = ? AND role = ?`)
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &n, query, groupID, username, models.RoleOwner); err != nil {
		return false, fmt.Errorf("check application group owner: %w", err)
	}
	return n > 0, nil
}
