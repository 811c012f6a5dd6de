package service

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks Store,MeasurableCompiler,AppSelector,ChangeLogWriter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clmodels "landscape/internal/changelog/models"
	"landscape/internal/rating/metrics"
	"landscape/internal/rating/models"
	"landscape/internal/rating/service/mocks"
	"landscape/internal/selector"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// =============================================================================
// Measurable Rating Service Test Suite
// =============================================================================
// Authorization happens before these calls; the suite covers validation,
// read-only handling and change log emission.

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	compiler  *mocks.MockMeasurableCompiler
	apps      *mocks.MockAppSelector
	changeLog *mocks.MockChangeLogWriter
	metrics   *metrics.Metrics
	service   *Service
	ctx       context.Context
	app       id.EntityReference
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.compiler = mocks.NewMockMeasurableCompiler(s.ctrl)
	s.apps = mocks.NewMockAppSelector(s.ctrl)
	s.changeLog = mocks.NewMockChangeLogWriter(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.store, s.compiler, s.apps,
		WithChangeLog(s.changeLog),
		WithMetrics(s.metrics),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.ctx = context.Background()
	s.app = id.MkRef(id.KindApplication, 10)
}

// =============================================================================
// SaveRating
// =============================================================================

func (s *ServiceSuite) TestSaveRating() {
	cmd := models.SaveRatingCommand{Entity: s.app, MeasurableID: 100, Rating: " G ", Username: "alice"}

	s.Run("valid code is saved and logged", func() {
		s.store.EXPECT().IsValidRating(gomock.Any(), int64(100), "G").Return(true, nil)
		s.store.EXPECT().SaveRating(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c models.SaveRatingCommand) (int, error) {
				s.Equal("G", c.Rating)
				return 1, nil
			})
		s.changeLog.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e clmodels.Entry) error {
			s.Equal(s.app, e.Parent)
			s.Equal(id.KindMeasurable, e.ChildKind)
			s.Equal("Set rating for measurable 100 to G", e.Message)
			return nil
		})

		s.NoError(s.service.SaveRating(s.ctx, cmd))
	})

	s.Run("code outside the scheme is rejected before writing", func() {
		s.store.EXPECT().IsValidRating(gomock.Any(), int64(100), "G").Return(false, nil)

		err := s.service.SaveRating(s.ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("read-only rating is a conflict", func() {
		s.store.EXPECT().IsValidRating(gomock.Any(), int64(100), "G").Return(true, nil)
		s.store.EXPECT().SaveRating(gomock.Any(), gomock.Any()).Return(0, nil)

		err := s.service.SaveRating(s.ctx, cmd)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("blank code is invalid", func() {
		bad := cmd
		bad.Rating = " "
		err := s.service.SaveRating(s.ctx, bad)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Equal(1.0, testutil.ToFloat64(s.metrics.RatingsChanged.WithLabelValues("UPDATE")))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.NoOpWrites.WithLabelValues("UPDATE")))
}

// =============================================================================
// Description, primary and removal
// =============================================================================

func (s *ServiceSuite) TestSaveDescriptionOnMissingRating() {
	s.store.EXPECT().SaveDescription(gomock.Any(), s.app, int64(100), "core", "alice").Return(0, nil)

	err := s.service.SaveDescription(s.ctx, "alice", s.app, 100, " core ")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestSetPrimary() {
	s.store.EXPECT().SetPrimary(gomock.Any(), s.app, int64(100), true, "alice").Return(1, nil)
	s.changeLog.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

	s.NoError(s.service.SetPrimary(s.ctx, "alice", s.app, 100, true))
}

func (s *ServiceSuite) TestRemove() {
	s.Run("removal is logged", func() {
		s.store.EXPECT().Remove(gomock.Any(), s.app, int64(100)).Return(1, nil)
		s.changeLog.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)

		n, err := s.service.Remove(s.ctx, "alice", s.app, 100)
		s.Require().NoError(err)
		s.Equal(1, n)
	})

	s.Run("read-only removal is a silent no-op", func() {
		s.store.EXPECT().Remove(gomock.Any(), s.app, int64(101)).Return(0, nil)

		n, err := s.service.Remove(s.ctx, "alice", s.app, 101)
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("anonymous caller never reaches the store", func() {
		_, err := s.service.Remove(s.ctx, "", s.app, 100)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *ServiceSuite) TestRemoveForCategory() {
	s.store.EXPECT().RemoveForCategory(gomock.Any(), s.app, int64(3)).Return(2, nil)
	s.changeLog.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e clmodels.Entry) error {
		s.Equal("Removed 2 ratings in category 3", e.Message)
		return nil
	})

	n, err := s.service.RemoveForCategory(s.ctx, "alice", s.app, 3)
	s.Require().NoError(err)
	s.Equal(2, n)
}

// =============================================================================
// Reads
// =============================================================================

func (s *ServiceSuite) TestFindByMeasurableSelector() {
	s.Run("compiled measurables are queried", func() {
		scope := selector.SelectionScope{Root: id.MkRef(id.KindMeasurable, 1), Breadth: selector.ScopeChildren}
		s.compiler.EXPECT().Compile(gomock.Any(), scope).Return(selector.NewFilter(id.KindMeasurable, 2, 3), nil)
		s.store.EXPECT().FindByMeasurableIDs(gomock.Any(), gomock.Len(2)).
			Return([]models.MeasurableRating{{MeasurableID: 2}}, nil)

		ratings, err := s.service.FindByMeasurableSelector(s.ctx, scope)
		s.Require().NoError(err)
		s.Len(ratings, 1)
	})

	s.Run("other root kinds are rejected", func() {
		_, err := s.service.FindByMeasurableSelector(s.ctx, selector.Exact(s.app))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestStatsByAppSelector() {
	scope := selector.Exact(id.MkRef(id.KindAppGroup, 4))
	s.apps.EXPECT().Select(gomock.Any(), scope).Return(selector.NewFilter(id.KindApplication, 10), nil)
	s.store.EXPECT().StatsByApplicationIDs(gomock.Any(), []int64{10}).
		Return([]models.RatingTally{{MeasurableID: 100, Rating: "G", Count: 1}}, nil)

	stats, err := s.service.StatsByAppSelector(s.ctx, scope)
	s.Require().NoError(err)
	s.Equal(1, stats[0].Count)
}

func (s *ServiceSuite) TestGetRatingsView() {
	s.Run("fans out over the rated measurables", func() {
		s.store.EXPECT().FindForEntity(gomock.Any(), s.app).
			Return([]models.MeasurableRating{{Entity: s.app, MeasurableID: 100, Rating: "G"}}, nil)
		s.store.EXPECT().FindMeasurablesByIDs(gomock.Any(), []int64{100}).
			Return([]models.Measurable{{ID: 100, CategoryID: 3}}, nil)
		s.store.EXPECT().FindCategoriesForMeasurables(gomock.Any(), []int64{100}).
			Return([]models.MeasurableCategory{{ID: 3, RatingSchemeID: 1}}, nil)
		s.store.EXPECT().FindRatingSchemeItemsForMeasurables(gomock.Any(), []int64{100}).
			Return([]models.RatingSchemeItem{{SchemeID: 1, Code: "G"}}, nil)

		view, err := s.service.GetRatingsView(s.ctx, s.app)
		s.Require().NoError(err)
		s.Len(view.Ratings, 1)
		s.Len(view.Measurables, 1)
		s.Len(view.Categories, 1)
		s.Len(view.RatingSchemeItems, 1)
	})

	s.Run("any failed lookup fails the view", func() {
		s.store.EXPECT().FindForEntity(gomock.Any(), s.app).Return([]models.MeasurableRating{}, nil)
		s.store.EXPECT().FindMeasurablesByIDs(gomock.Any(), gomock.Any()).Return([]models.Measurable{}, nil).AnyTimes()
		s.store.EXPECT().FindCategoriesForMeasurables(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom")).AnyTimes()
		s.store.EXPECT().FindRatingSchemeItemsForMeasurables(gomock.Any(), gomock.Any()).
			Return([]models.RatingSchemeItem{}, nil).AnyTimes()

		_, err := s.service.GetRatingsView(s.ctx, s.app)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
