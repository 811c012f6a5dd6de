package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	appstore "landscape/internal/application/store"
	"landscape/internal/cost/models"
	id "landscape/pkg/domain"
	"landscape/pkg/platform/tx"
)

// appCostJoin restricts cost rows to active applications in the id list.
// The first placeholder is the year, the second the IN list.
var appCostJoin = `FROM asset_cost c
	JOIN application a ON a.asset_code = c.asset_code
	WHERE c.year = ? AND a.id IN (?) AND a.asset_code <> '' AND ` + appstore.IsActive("a")

type assetCostRow struct {
	AssetCode string  `db:"asset_code"`
	Year      int     `db:"year"`
	Kind      string  `db:"kind"`
	Amount    float64 `db:"amount"`
}

func (r assetCostRow) toModel() models.AssetCost {
	return models.AssetCost{
		AssetCode: r.AssetCode,
		Cost:      models.Cost{Year: r.Year, Amount: r.Amount, Kind: r.Kind},
	}
}

type appCostRow struct {
	ApplicationID int64   `db:"application_id"`
	Name          string  `db:"name"`
	AssetCode     string  `db:"asset_code"`
	Year          int     `db:"year"`
	Kind          string  `db:"kind"`
	Amount        float64 `db:"amount"`
}

func (r appCostRow) toModel() models.ApplicationCost {
	return models.ApplicationCost{
		Application: id.MkRef(id.KindApplication, r.ApplicationID),
		Name:        r.Name,
		AssetCode:   r.AssetCode,
		Cost:        models.Cost{Year: r.Year, Amount: r.Amount, Kind: r.Kind},
	}
}

// Store reads asset costs. Every per-selection query takes an explicit year
// so callers can pin several queries to one resolved year.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// LatestYear returns the maximum reporting year, and false when there are
// no costs at all.
func (s *Store) LatestYear(ctx context.Context) (int, bool, error) {
	var year sql.NullInt64
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &year, `SELECT MAX(year) FROM asset_cost`); err != nil {
		return 0, false, fmt.Errorf("find latest cost year: %w", err)
	}
	if !year.Valid {
		return 0, false, nil
	}
	return int(year.Int64), true, nil
}

func (s *Store) FindByAssetCode(ctx context.Context, assetCode string) ([]models.AssetCost, error) {
	query := s.db.Rebind(`SELECT asset_code, year, kind, amount FROM asset_cost
		WHERE asset_code = ?
		ORDER BY year DESC, kind`)
	return s.assetCosts(ctx, query, assetCode)
}

func (s *Store) FindByApplicationID(ctx context.Context, appID int64) ([]models.AssetCost, error) {
	query := s.db.Rebind(`SELECT c.asset_code, c.year, c.kind, c.amount FROM asset_cost c
		JOIN application a ON a.asset_code = c.asset_code
		WHERE a.id = ? AND a.asset_code <> ''
		ORDER BY c.year DESC, c.kind`)
	return s.assetCosts(ctx, query, appID)
}

func (s *Store) assetCosts(ctx context.Context, query string, arg any) ([]models.AssetCost, error) {
	var rows []assetCostRow
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &rows, query, arg); err != nil {
		return nil, fmt.Errorf("find asset costs: %w", err)
	}
	costs := make([]models.AssetCost, 0, len(rows))
	for _, r := range rows {
		costs = append(costs, r.toModel())
	}
	return costs, nil
}

// FindAppCosts lists every cost row of the selected applications for year.
func (s *Store) FindAppCosts(ctx context.Context, year int, appIDs []int64) ([]models.ApplicationCost, error) {
	return s.appCosts(ctx, `ORDER BY a.name, a.id, c.kind`, year, appIDs)
}

// FindTopAppCosts lists the largest cost rows for year, at most limit.
func (s *Store) FindTopAppCosts(ctx context.Context, year int, appIDs []int64, limit int) ([]models.ApplicationCost, error) {
	if limit <= 0 {
		return []models.ApplicationCost{}, nil
	}
	return s.appCosts(ctx, `ORDER BY c.amount DESC, a.name, a.id, c.kind LIMIT ?`, year, appIDs, limit)
}

func (s *Store) appCosts(ctx context.Context, tail string, year int, appIDs []int64, extra ...any) ([]models.ApplicationCost, error) {
	if len(appIDs) == 0 {
		return []models.ApplicationCost{}, nil
	}
	args := append([]any{year, appIDs}, extra...)
	query, args, err := sqlx.In(`SELECT a.id AS application_id, a.name, a.asset_code, c.year, c.kind, c.amount `+
		appCostJoin+` `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("build app cost query: %w", err)
	}
	var rows []appCostRow
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find app costs: %w", err)
	}
	costs := make([]models.ApplicationCost, 0, len(rows))
	for _, r := range rows {
		costs = append(costs, r.toModel())
	}
	return costs, nil
}

// CalculateCombinedAmounts sums each selected application's costs for year.
func (s *Store) CalculateCombinedAmounts(ctx context.Context, year int, appIDs []int64) ([]models.ApplicationAmount, error) {
	if len(appIDs) == 0 {
		return []models.ApplicationAmount{}, nil
	}
	query, args, err := sqlx.In(`SELECT a.id AS application_id, SUM(c.amount) AS amount `+
		appCostJoin+` GROUP BY a.id ORDER BY a.id`, year, appIDs)
	if err != nil {
		return nil, fmt.Errorf("build combined amount query: %w", err)
	}
	var amounts []models.ApplicationAmount
	if err := sqlx.SelectContext(ctx, tx.Execer(ctx, s.db), &amounts, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("calculate combined amounts: %w", err)
	}
	if amounts == nil {
		amounts = []models.ApplicationAmount{}
	}
	return amounts, nil
}

// CalculateCostBandStatistics counts applications per cost band using their
// combined amount for year. Every band is reported, empty ones with zero.
func (s *Store) CalculateCostBandStatistics(ctx context.Context, year int, appIDs []int64) ([]models.Tally[models.CostBand], error) {
	amounts, err := s.CalculateCombinedAmounts(ctx, year, appIDs)
	if err != nil {
		return nil, err
	}
	counts := make([]int, len(models.CostBands))
	for _, a := range amounts {
		counts[models.BandFor(a.Amount)]++
	}
	tallies := make([]models.Tally[models.CostBand], len(models.CostBands))
	for i, b := range models.CostBands {
		tallies[i] = models.Tally[models.CostBand]{ID: b, Count: counts[i]}
	}
	return tallies, nil
}

// CalculateTotalCost sums every cost of the selected applications for year.
func (s *Store) CalculateTotalCost(ctx context.Context, year int, appIDs []int64) (models.Cost, error) {
	total := models.Cost{Year: year, Kind: models.KindTotal}
	if len(appIDs) == 0 {
		return total, nil
	}
	query, args, err := sqlx.In(`SELECT COALESCE(SUM(c.amount), 0) `+appCostJoin, year, appIDs)
	if err != nil {
		return models.Cost{}, fmt.Errorf("build total cost query: %w", err)
	}
	if err := sqlx.GetContext(ctx, tx.Execer(ctx, s.db), &total.Amount, s.db.Rebind(query), args...); err != nil {
		return models.Cost{}, fmt.Errorf("calculate total cost: %w", err)
	}
	return total, nil
}
