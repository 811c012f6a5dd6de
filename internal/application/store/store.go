package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"landscape/internal/application/models"
	id "landscape/pkg/domain"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/platform/tx"
)

// IsActive is the activity predicate for an application table alias. Every
// read joining applications ANDs it in.
func IsActive(alias string) string {
	return alias + ".is_removed = FALSE AND " + alias + ".entity_lifecycle_status = 'ACTIVE'"
}

const selectColumns = `a.id, a.name, a.asset_code, a.organisational_unit_id, a.lifecycle_phase,
	a.entity_lifecycle_status, a.is_removed`

type applicationRow struct {
	ID                    int64         `db:"id"`
	Name                  string        `db:"name"`
	AssetCode             string        `db:"asset_code"`
	OrganisationalUnitID  sql.NullInt64 `db:"organisational_unit_id"`
	LifecyclePhase        string        `db:"lifecycle_phase"`
	EntityLifecycleStatus string        `db:"entity_lifecycle_status"`
	IsRemoved             bool          `db:"is_removed"`
}

func (r applicationRow) toModel() models.Application {
	return models.Application{
		ID:                    r.ID,
		Name:                  r.Name,
		AssetCode:             r.AssetCode,
		OrganisationalUnitID:  r.OrganisationalUnitID.Int64,
		LifecyclePhase:        r.LifecyclePhase,
		EntityLifecycleStatus: id.EntityLifecycleStatus(r.EntityLifecycleStatus),
		IsRemoved:             r.IsRemoved,
	}
}

// Store reads applications.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// GetByID returns the application whether or not it is active.
func (s *Store) GetByID(ctx context.Context, appID int64) (*models.Application, error) {
	var row applicationRow
	query := s.db.Rebind(`SELECT ` + selectColumns + ` FROM application a WHERE a.id = ?`)
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &row, query, appID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application by id: %w", err)
	}
	app := row.toModel()
	return &app, nil
}

// FindByIDs returns the active applications among appIDs, ordered by name.
func (s *Store) FindByIDs(ctx context.Context, appIDs []int64) ([]models.Application, error) {
	if len(appIDs) == 0 {
		return []models.Application{}, nil
	}
	query, args, err := sqlx.In(`SELECT `+selectColumns+` FROM application a
		WHERE a.id IN (?) AND `+IsActive("a")+`
		ORDER BY a.name, a.id`, appIDs)
	if err != nil {
		return nil, fmt.Errorf("build find applications query: %w", err)
	}
	var rows []applicationRow
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find applications by ids: %w", err)
	}
	apps := make([]models.Application, 0, len(rows))
	for _, r := range rows {
		apps = append(apps, r.toModel())
	}
	return apps, nil
}
