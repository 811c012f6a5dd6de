// Package userrole reads the roles granted to users.
package userrole

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"landscape/pkg/platform/tx"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// HasRole reports whether username holds role. The empty role is never held.
func (s *Store) HasRole(ctx context.Context, username, role string) (bool, error) {
	if strings.TrimSpace(role) == "" || username == "" {
		return false, nil
	}
	var n int
	query := s.db.Rebind(`SELECT COUNT(*) FROM user_role WHERE user_name = ? AND role = ?`)
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &n, query, username, role); err != nil {
		return false, fmt.Errorf("check user role: %w", err)
	}
	return n > 0, nil
}

// FindRoles lists the roles of username in name order.
func (s *Store) FindRoles(ctx context.Context, username string) ([]string, error) {
	roles := []string{}
	query := s.db.Rebind(`SELECT role FROM user_role WHERE user_name = ? ORDER BY role`)
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &roles, query, username); err != nil {
		return nil, fmt.Errorf("find user roles: %w", err)
	}
	return roles, nil
}
