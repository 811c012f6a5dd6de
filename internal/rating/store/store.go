package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"landscape/internal/platform/db"
	"landscape/internal/rating/models"
	id "landscape/pkg/domain"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/platform/tx"
	"landscape/pkg/requestcontext"
)

const ratingColumns = `r.entity_kind, r.entity_id, r.measurable_id, r.rating, r.description, r.is_primary,
	r.is_readonly, r.provenance, r.last_updated_at, r.last_updated_by`

type ratingRow struct {
	EntityKind    string    `db:"entity_kind"`
	EntityID      int64     `db:"entity_id"`
	MeasurableID  int64     `db:"measurable_id"`
	Rating        string    `db:"rating"`
	Description   string    `db:"description"`
	IsPrimary     bool      `db:"is_primary"`
	IsReadOnly    bool      `db:"is_readonly"`
	Provenance    string    `db:"provenance"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

func (r ratingRow) toModel() models.MeasurableRating {
	return models.MeasurableRating{
		Entity:        id.MkRef(id.EntityKind(r.EntityKind), r.EntityID),
		MeasurableID:  r.MeasurableID,
		Rating:        r.Rating,
		Description:   r.Description,
		IsPrimary:     r.IsPrimary,
		IsReadOnly:    r.IsReadOnly,
		Provenance:    r.Provenance,
		LastUpdatedAt: r.LastUpdatedAt,
		LastUpdatedBy: r.LastUpdatedBy,
	}
}

type measurableRow struct {
	ID                    int64         `db:"id"`
	ParentID              sql.NullInt64 `db:"parent_id"`
	CategoryID            int64         `db:"measurable_category_id"`
	Name                  string        `db:"name"`
	ExternalID            string        `db:"external_id"`
	Concrete              bool          `db:"concrete"`
	EntityLifecycleStatus string        `db:"entity_lifecycle_status"`
}

func (r measurableRow) toModel() models.Measurable {
	return models.Measurable{
		ID:                    r.ID,
		ParentID:              r.ParentID.Int64,
		CategoryID:            r.CategoryID,
		Name:                  r.Name,
		ExternalID:            r.ExternalID,
		Concrete:              r.Concrete,
		EntityLifecycleStatus: id.EntityLifecycleStatus(r.EntityLifecycleStatus),
	}
}

const measurableColumns = `m.id, m.parent_id, m.measurable_category_id, m.name, m.external_id, m.concrete,
	m.entity_lifecycle_status`

// Store reads and writes measurable ratings. Writes never touch rows marked
// read-only.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) selectRatings(ctx context.Context, query string, args ...any) ([]models.MeasurableRating, error) {
	var rows []ratingRow
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find measurable ratings: %w", err)
	}
	ratings := make([]models.MeasurableRating, 0, len(rows))
	for _, r := range rows {
		ratings = append(ratings, r.toModel())
	}
	return ratings, nil
}

func (s *Store) FindForEntity(ctx context.Context, ref id.EntityReference) ([]models.MeasurableRating, error) {
	return s.selectRatings(ctx, `SELECT `+ratingColumns+` FROM measurable_rating r
		WHERE r.entity_kind = ? AND r.entity_id = ?
		ORDER BY r.measurable_id`, string(ref.Kind), ref.ID)
}

func (s *Store) FindByMeasurableIDs(ctx context.Context, measurableIDs []int64) ([]models.MeasurableRating, error) {
	if len(measurableIDs) == 0 {
		return []models.MeasurableRating{}, nil
	}
	query, args, err := sqlx.In(`SELECT `+ratingColumns+` FROM measurable_rating r
		WHERE r.measurable_id IN (?)
		ORDER BY r.measurable_id, r.entity_kind, r.entity_id`, measurableIDs)
	if err != nil {
		return nil, fmt.Errorf("build ratings by measurable query: %w", err)
	}
	return s.selectRatings(ctx, query, args...)
}

func (s *Store) FindByApplicationIDs(ctx context.Context, appIDs []int64) ([]models.MeasurableRating, error) {
	if len(appIDs) == 0 {
		return []models.MeasurableRating{}, nil
	}
	query, args, err := sqlx.In(`SELECT `+ratingColumns+` FROM measurable_rating r
		WHERE r.entity_kind = 'APPLICATION' AND r.entity_id IN (?)
		ORDER BY r.entity_id, r.measurable_id`, appIDs)
	if err != nil {
		return nil, fmt.Errorf("build ratings by application query: %w", err)
	}
	return s.selectRatings(ctx, query, args...)
}

func (s *Store) FindByCategory(ctx context.Context, categoryID int64) ([]models.MeasurableRating, error) {
	return s.selectRatings(ctx, `SELECT `+ratingColumns+` FROM measurable_rating r
		JOIN measurable m ON m.id = r.measurable_id
		WHERE m.measurable_category_id = ?
		ORDER BY r.measurable_id, r.entity_kind, r.entity_id`, categoryID)
}

// TallyByMeasurableCategory counts ratings per measurable of the category.
func (s *Store) TallyByMeasurableCategory(ctx context.Context, categoryID int64) ([]models.Tally, error) {
	tallies := []models.Tally{}
	query := s.db.Rebind(`SELECT r.measurable_id AS id, COUNT(*) AS count
		FROM measurable_rating r
		JOIN measurable m ON m.id = r.measurable_id
		WHERE m.measurable_category_id = ?
		GROUP BY r.measurable_id
		ORDER BY r.measurable_id`)
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &tallies, query, categoryID); err != nil {
		return nil, fmt.Errorf("tally ratings by category: %w", err)
	}
	return tallies, nil
}

// StatsByApplicationIDs counts application ratings per measurable and code.
func (s *Store) StatsByApplicationIDs(ctx context.Context, appIDs []int64) ([]models.RatingTally, error) {
	tallies := []models.RatingTally{}
	if len(appIDs) == 0 {
		return tallies, nil
	}
	query, args, err := sqlx.In(`SELECT r.measurable_id, r.rating, COUNT(*) AS count
		FROM measurable_rating r
		WHERE r.entity_kind = 'APPLICATION' AND r.entity_id IN (?)
		GROUP BY r.measurable_id, r.rating
		ORDER BY r.measurable_id, r.rating`, appIDs)
	if err != nil {
		return nil, fmt.Errorf("build rating stats query: %w", err)
	}
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &tallies, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("rating stats: %w", err)
	}
	return tallies, nil
}

func (s *Store) FindMeasurable(ctx context.Context, measurableID int64) (*models.Measurable, error) {
	var row measurableRow
	query := s.db.Rebind(`SELECT ` + measurableColumns + ` FROM measurable m WHERE m.id = ?`)
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &row, query, measurableID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find measurable: %w", err)
	}
	m := row.toModel()
	return &m, nil
}

func (s *Store) FindMeasurablesByIDs(ctx context.Context, measurableIDs []int64) ([]models.Measurable, error) {
	if len(measurableIDs) == 0 {
		return []models.Measurable{}, nil
	}
	query, args, err := sqlx.In(`SELECT `+measurableColumns+` FROM measurable m
		WHERE m.id IN (?) ORDER BY m.name, m.id`, measurableIDs)
	if err != nil {
		return nil, fmt.Errorf("build measurables query: %w", err)
	}
	var rows []measurableRow
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find measurables: %w", err)
	}
	out := make([]models.Measurable, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out, nil
}

func (s *Store) FindCategory(ctx context.Context, categoryID int64) (*models.MeasurableCategory, error) {
	var c models.MeasurableCategory
	query := s.db.Rebind(`SELECT id, name, rating_scheme_id, rating_editor_role, editable
		FROM measurable_category WHERE id = ?`)
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &c, query, categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find measurable category: %w", err)
	}
	return &c, nil
}

// FindCategoriesForMeasurables returns the distinct categories of the
// given measurables.
func (s *Store) FindCategoriesForMeasurables(ctx context.Context, measurableIDs []int64) ([]models.MeasurableCategory, error) {
	categories := []models.MeasurableCategory{}
	if len(measurableIDs) == 0 {
		return categories, nil
	}
	query, args, err := sqlx.In(`SELECT c.id, c.name, c.rating_scheme_id, c.rating_editor_role, c.editable
		FROM measurable_category c
		WHERE c.id IN (SELECT m.measurable_category_id FROM measurable m WHERE m.id IN (?))
		ORDER BY c.name, c.id`, measurableIDs)
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &categories, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find measurable categories: %w", err)
	}
	return categories, nil
}

// FindRatingSchemeItemsForMeasurables returns the items of every rating
// scheme used by the categories of the given measurables.
func (s *Store) FindRatingSchemeItemsForMeasurables(ctx context.Context, measurableIDs []int64) ([]models.RatingSchemeItem, error) {
	items := []models.RatingSchemeItem{}
	if len(measurableIDs) == 0 {
		return items, nil
	}
	query, args, err := sqlx.In(`SELECT i.id, i.scheme_id, i.code, i.name, i.color, i.position
		FROM rating_scheme_item i
		WHERE i.scheme_id IN (
			SELECT c.rating_scheme_id FROM measurable_category c
			JOIN measurable m ON m.measurable_category_id = c.id
			WHERE m.id IN (?))
		ORDER BY i.scheme_id, i.position, i.code`, measurableIDs)
	if err != nil {
		return nil, fmt.Errorf("build rating scheme query: %w", err)
	}
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &items, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find rating scheme items: %w", err)
	}
	return items, nil
}

// IsValidRating reports whether code belongs to the rating scheme of the
// measurable's category.
func (s *Store) IsValidRating(ctx context.Context, measurableID int64, code string) (bool, error) {
	var n int
	query := s.db.Rebind(`SELECT COUNT(*) FROM rating_scheme_item i
		JOIN measurable_category c ON c.rating_scheme_id = i.scheme_id
		JOIN measurable m ON m.measurable_category_id = c.id
		WHERE m.id = ? AND i.code = ?`)
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &n, query, measurableID, code); err != nil {
		return false, fmt.Errorf("validate rating code: %w", err)
	}
	return n > 0, nil
}

// SaveRating inserts or updates a locally owned rating. It returns 0 when
// the existing rating is read-only.
func (s *Store) SaveRating(ctx context.Context, cmd models.SaveRatingCommand) (int, error) {
	query := s.db.Rebind(`INSERT INTO measurable_rating
			(entity_kind, entity_id, measurable_id, rating, provenance, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (entity_kind, entity_id, measurable_id) DO UPDATE
		SET rating = excluded.rating,
			last_updated_at = excluded.last_updated_at,
			last_updated_by = excluded.last_updated_by
		WHERE measurable_rating.is_readonly = FALSE`)
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, query,
		string(cmd.Entity.Kind), cmd.Entity.ID, cmd.MeasurableID, cmd.Rating,
		id.LocalProvenance, requestcontext.Now(ctx).UTC(), cmd.Username)
	if err != nil {
		return 0, fmt.Errorf("save measurable rating: %w", err)
	}
	return affected(res)
}

// SaveDescription returns 0 when the rating is absent or read-only.
func (s *Store) SaveDescription(ctx context.Context, ref id.EntityReference, measurableID int64, description, username string) (int, error) {
	query := s.db.Rebind(`UPDATE measurable_rating
		SET description = ?, last_updated_at = ?, last_updated_by = ?
		WHERE entity_kind = ? AND entity_id = ? AND measurable_id = ? AND is_readonly = FALSE`)
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, query,
		description, requestcontext.Now(ctx).UTC(), username, string(ref.Kind), ref.ID, measurableID)
	if err != nil {
		return 0, fmt.Errorf("save rating description: %w", err)
	}
	return affected(res)
}

// SetPrimary marks one rating primary, clearing any other primary rating the
// entity holds in the same category, in one transaction. It returns 0 when
// the rating is absent or read-only, leaving the others untouched.
func (s *Store) SetPrimary(ctx context.Context, ref id.EntityReference, measurableID int64, isPrimary bool, username string) (int, error) {
	n := 0
	err := db.RunInTx(ctx, s.db, func(ctx context.Context) error {
		exec := tx.Execer(ctx, s.db)
		now := requestcontext.Now(ctx).UTC()
		res, err := exec.ExecContext(ctx, s.db.Rebind(`UPDATE measurable_rating
			SET is_primary = ?, last_updated_at = ?, last_updated_by = ?
			WHERE entity_kind = ? AND entity_id = ? AND measurable_id = ? AND is_readonly = FALSE`),
			isPrimary, now, username, string(ref.Kind), ref.ID, measurableID)
		if err != nil {
			return fmt.Errorf("set primary rating: %w", err)
		}
		if n, err = affected(res); err != nil || n == 0 || !isPrimary {
			return err
		}
		_, err = exec.ExecContext(ctx, s.db.Rebind(`UPDATE measurable_rating
			SET is_primary = FALSE
			WHERE entity_kind = ? AND entity_id = ? AND measurable_id <> ? AND is_primary = TRUE
			  AND measurable_id IN (
				SELECT o.id FROM measurable o
				JOIN measurable t ON t.measurable_category_id = o.measurable_category_id
				WHERE t.id = ?)`),
			string(ref.Kind), ref.ID, measurableID, measurableID)
		if err != nil {
			return fmt.Errorf("clear other primary ratings: %w", err)
		}
		return nil
	})
	return n, err
}

// Remove deletes a writable rating. Read-only or absent ratings return 0.
func (s *Store) Remove(ctx context.Context, ref id.EntityReference, measurableID int64) (int, error) {
	query := s.db.Rebind(`DELETE FROM measurable_rating
		WHERE entity_kind = ? AND entity_id = ? AND measurable_id = ? AND is_readonly = FALSE`)
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, query, string(ref.Kind), ref.ID, measurableID)
	if err != nil {
		return 0, fmt.Errorf("remove measurable rating: %w", err)
	}
	return affected(res)
}

// RemoveForCategory deletes the entity's writable ratings in a category.
func (s *Store) RemoveForCategory(ctx context.Context, ref id.EntityReference, categoryID int64) (int, error) {
	query := s.db.Rebind(`DELETE FROM measurable_rating
		WHERE entity_kind = ? AND entity_id = ? AND is_readonly = FALSE
		  AND measurable_id IN (SELECT id FROM measurable WHERE measurable_category_id = ?)`)
	res, err := tx.Execer(ctx, s.db).ExecContext(ctx, query, string(ref.Kind), ref.ID, categoryID)
	if err != nil {
		return 0, fmt.Errorf("remove ratings for category: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) (int, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return int(n), nil
}
