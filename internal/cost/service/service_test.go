package service

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks Store,Selector

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"landscape/internal/cost/models"
	"landscape/internal/cost/service/mocks"
	"landscape/internal/selector"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// =============================================================================
// Cost Service Test Suite
// =============================================================================
// The service owns year resolution: one lookup per call, the same year for
// every dependent query, and absence rather than failure when there is no data.

type ServiceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	selector *mocks.MockSelector
	service  *Service
	ctx      context.Context
	scope    selector.SelectionScope
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.selector = mocks.NewMockSelector(s.ctrl)
	s.service = New(s.store, s.selector)
	s.ctx = context.Background()
	s.scope = selector.SelectionScope{Root: id.MkRef(id.KindOrgUnit, 1), Breadth: selector.ScopeChildren}
}

func (s *ServiceSuite) expectSelection(appIDs ...int64) {
	s.selector.EXPECT().Select(gomock.Any(), s.scope).Return(selector.NewFilter(id.KindApplication, appIDs...), nil)
}

func (s *ServiceSuite) TestNoCostDataIsAbsence() {
	s.Run("app costs are empty", func() {
		s.expectSelection(1, 2)
		s.store.EXPECT().LatestYear(gomock.Any()).Return(0, false, nil)

		costs, err := s.service.FindAppCostsForSelection(s.ctx, s.scope)
		s.Require().NoError(err)
		s.NotNil(costs)
		s.Empty(costs)
	})

	s.Run("statistics are nil", func() {
		s.expectSelection(1, 2)
		s.store.EXPECT().LatestYear(gomock.Any()).Return(0, false, nil)

		stats, err := s.service.CalculateStatistics(s.ctx, s.scope)
		s.Require().NoError(err)
		s.Nil(stats)
	})
}

func (s *ServiceSuite) TestStatisticsUseOneYear() {
	s.expectSelection(1, 2)
	s.store.EXPECT().LatestYear(gomock.Any()).Return(2025, true, nil).Times(1)
	bands := []models.Tally[models.CostBand]{{ID: models.CostBands[0], Count: 2}}
	s.store.EXPECT().CalculateCostBandStatistics(gomock.Any(), 2025, []int64{1, 2}).Return(bands, nil)
	s.store.EXPECT().CalculateTotalCost(gomock.Any(), 2025, []int64{1, 2}).
		Return(models.Cost{Year: 2025, Amount: 300, Kind: models.KindTotal}, nil)

	stats, err := s.service.CalculateStatistics(s.ctx, s.scope)
	s.Require().NoError(err)
	s.Equal(2025, stats.Year)
	s.Equal(2025, stats.TotalCost.Year)
	s.Equal(300.0, stats.TotalCost.Amount)
	s.Equal(bands, stats.CostBandCounts)
}

func (s *ServiceSuite) TestStatisticsFailWhenEitherQueryFails() {
	s.expectSelection(1)
	s.store.EXPECT().LatestYear(gomock.Any()).Return(2025, true, nil)
	s.store.EXPECT().CalculateCostBandStatistics(gomock.Any(), 2025, []int64{1}).Return(nil, errors.New("timeout"))
	s.store.EXPECT().CalculateTotalCost(gomock.Any(), 2025, []int64{1}).Return(models.Cost{}, nil).AnyTimes()

	stats, err := s.service.CalculateStatistics(s.ctx, s.scope)
	s.Nil(stats)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestSelectionErrorsStopBeforeYearLookup() {
	s.selector.EXPECT().Select(gomock.Any(), s.scope).Return(selector.Filter{}, dErrors.New(dErrors.CodeNotFound, "root missing"))

	_, err := s.service.FindAppCostsForSelection(s.ctx, s.scope)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestTopCosts() {
	s.Run("limit must be positive", func() {
		_, err := s.service.FindTopAppCostsForSelection(s.ctx, s.scope, 0)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("passes year and limit", func() {
		s.expectSelection(3)
		s.store.EXPECT().LatestYear(gomock.Any()).Return(2024, true, nil)
		s.store.EXPECT().FindTopAppCosts(gomock.Any(), 2024, []int64{3}, 5).Return([]models.ApplicationCost{{Name: "Alpha"}}, nil)

		costs, err := s.service.FindTopAppCostsForSelection(s.ctx, s.scope, 5)
		s.Require().NoError(err)
		s.Len(costs, 1)
	})
}

func (s *ServiceSuite) TestCombinedAmounts() {
	s.expectSelection(1, 2)
	s.store.EXPECT().LatestYear(gomock.Any()).Return(2025, true, nil)
	s.store.EXPECT().CalculateCombinedAmounts(gomock.Any(), 2025, []int64{1, 2}).
		Return([]models.ApplicationAmount{{ApplicationID: 1, Amount: 10}}, nil)

	amounts, err := s.service.CalculateCombinedAmountsForSelection(s.ctx, s.scope)
	s.Require().NoError(err)
	s.Len(amounts, 1)
}

func (s *ServiceSuite) TestFindByAssetCodeRequiresCode() {
	_, err := s.service.FindByAssetCode(s.ctx, "  ")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestExport() {
	s.expectSelection(1)
	s.store.EXPECT().LatestYear(gomock.Any()).Return(2025, true, nil)
	s.store.EXPECT().FindAppCosts(gomock.Any(), 2025, []int64{1}).Return([]models.ApplicationCost{
		{Application: id.MkRef(id.KindApplication, 1), Name: "Alpha", Cost: models.Cost{Year: 2025, Amount: 5, Kind: "OPEX"}},
	}, nil)

	var buf bytes.Buffer
	s.Require().NoError(s.service.ExportAppCosts(s.ctx, s.scope, &buf))
	s.Equal("PK", buf.String()[:2], "xlsx is a zip archive")
}
