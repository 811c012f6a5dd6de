package service

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"landscape/internal/cost/export"
	"landscape/internal/cost/models"
	"landscape/internal/selector"
	dErrors "landscape/pkg/domain-errors"
)

var tracer = otel.Tracer("landscape/cost")

type Store interface {
	LatestYear(ctx context.Context) (int, bool, error)
	FindByAssetCode(ctx context.Context, assetCode string) ([]models.AssetCost, error)
	FindByApplicationID(ctx context.Context, appID int64) ([]models.AssetCost, error)
	FindAppCosts(ctx context.Context, year int, appIDs []int64) ([]models.ApplicationCost, error)
	FindTopAppCosts(ctx context.Context, year int, appIDs []int64, limit int) ([]models.ApplicationCost, error)
	CalculateCombinedAmounts(ctx context.Context, year int, appIDs []int64) ([]models.ApplicationAmount, error)
	CalculateCostBandStatistics(ctx context.Context, year int, appIDs []int64) ([]models.Tally[models.CostBand], error)
	CalculateTotalCost(ctx context.Context, year int, appIDs []int64) (models.Cost, error)
}

type Selector interface {
	Select(ctx context.Context, scope selector.SelectionScope) (selector.Filter, error)
}

// Service answers cost questions for a selection of applications. Each call
// resolves the latest reporting year once and pins every query to it.
type Service struct {
	store    Store
	selector Selector
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(store Store, sel Selector, opts ...Option) *Service {
	s := &Service{store: store, selector: sel, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) FindByAssetCode(ctx context.Context, assetCode string) ([]models.AssetCost, error) {
	assetCode = strings.TrimSpace(assetCode)
	if assetCode == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "asset code is required")
	}
	costs, err := s.store.FindByAssetCode(ctx, assetCode)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load asset costs")
	}
	return costs, nil
}

func (s *Service) FindByApplicationID(ctx context.Context, appID int64) ([]models.AssetCost, error) {
	if appID <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "application id must be positive")
	}
	costs, err := s.store.FindByApplicationID(ctx, appID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application costs")
	}
	return costs, nil
}

// FindAppCostsForSelection returns an empty list when there is no cost data.
func (s *Service) FindAppCostsForSelection(ctx context.Context, scope selector.SelectionScope) ([]models.ApplicationCost, error) {
	appIDs, year, ok, err := s.resolve(ctx, scope)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.ApplicationCost{}, nil
	}
	costs, err := s.store.FindAppCosts(ctx, year, appIDs)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application costs")
	}
	return costs, nil
}

func (s *Service) FindTopAppCostsForSelection(ctx context.Context, scope selector.SelectionScope, limit int) ([]models.ApplicationCost, error) {
	if limit <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "limit must be positive")
	}
	appIDs, year, ok, err := s.resolve(ctx, scope)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.ApplicationCost{}, nil
	}
	costs, err := s.store.FindTopAppCosts(ctx, year, appIDs, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load top application costs")
	}
	return costs, nil
}

func (s *Service) CalculateCombinedAmountsForSelection(ctx context.Context, scope selector.SelectionScope) ([]models.ApplicationAmount, error) {
	appIDs, year, ok, err := s.resolve(ctx, scope)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.ApplicationAmount{}, nil
	}
	amounts, err := s.store.CalculateCombinedAmounts(ctx, year, appIDs)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to calculate combined amounts")
	}
	return amounts, nil
}

// CalculateStatistics returns nil, without error, when no cost data exists.
// The band histogram and the total run concurrently against the same year
// and the same application ids.
func (s *Service) CalculateStatistics(ctx context.Context, scope selector.SelectionScope) (*models.AssetCostStatistics, error) {
	ctx, span := tracer.Start(ctx, "cost.CalculateStatistics")
	defer span.End()

	appIDs, year, ok, err := s.resolve(ctx, scope)
	if err != nil || !ok {
		return nil, err
	}
	span.SetAttributes(attribute.Int("year", year), attribute.Int("applications", len(appIDs)))

	stats := &models.AssetCostStatistics{Year: year}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bands, err := s.store.CalculateCostBandStatistics(gctx, year, appIDs)
		if err != nil {
			return err
		}
		stats.CostBandCounts = bands
		return nil
	})
	g.Go(func() error {
		total, err := s.store.CalculateTotalCost(gctx, year, appIDs)
		if err != nil {
			return err
		}
		stats.TotalCost = total
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to calculate cost statistics")
	}
	return stats, nil
}

// ExportAppCosts writes the selection's costs as an xlsx workbook.
func (s *Service) ExportAppCosts(ctx context.Context, scope selector.SelectionScope, w io.Writer) error {
	costs, err := s.FindAppCostsForSelection(ctx, scope)
	if err != nil {
		return err
	}
	if err := export.WriteApplicationCosts(w, costs); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to export application costs")
	}
	return nil
}

// resolve selects the application ids and the latest year. ok is false when
// there are no costs for any year.
func (s *Service) resolve(ctx context.Context, scope selector.SelectionScope) ([]int64, int, bool, error) {
	filter, err := s.selector.Select(ctx, scope)
	if err != nil {
		return nil, 0, false, err
	}
	year, ok, err := s.store.LatestYear(ctx)
	if err != nil {
		return nil, 0, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve latest cost year")
	}
	if !ok {
		s.logger.DebugContext(ctx, "no cost data", "scope", scope.String())
	}
	return filter.IDs(), year, ok, nil
}
