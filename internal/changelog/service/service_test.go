package service

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks Store,Publisher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"landscape/internal/changelog/metrics"
	"landscape/internal/changelog/models"
	"landscape/internal/changelog/service/mocks"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	metrics   *metrics.Metrics
	service   *Service
	ctx       context.Context
	now       time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.store,
		WithPublisher(s.publisher),
		WithMetrics(s.metrics),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.now = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *ServiceSuite) entry() models.Entry {
	e, err := models.NewEntry(id.MkRef(id.KindAppGroup, 7), id.OperationAdd, id.KindApplication, "alice", "Added application Alpha")
	s.Require().NoError(err)
	return e
}

func (s *ServiceSuite) TestWriteStampsTimeAndPublishes() {
	e := s.entry()
	var stored models.Entry
	s.store.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got models.Entry) error {
		stored = got
		return nil
	})
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	s.Require().NoError(s.service.Write(s.ctx, e))
	s.Equal(s.now, stored.CreatedAt)
	s.Equal(e.ID, stored.ID)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.EntriesWritten.WithLabelValues("APP_GROUP")))
}

func (s *ServiceSuite) TestPublishFailureIsNotSurfaced() {
	s.store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	s.NoError(s.service.Write(s.ctx, s.entry()))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.PublishFailures))
}

func (s *ServiceSuite) TestStoreFailureSkipsPublish() {
	s.store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := s.service.Write(s.ctx, s.entry())
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestWriteWithoutPublisher() {
	svc := New(s.store)
	s.store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	s.NoError(svc.Write(s.ctx, s.entry()))
}

func (s *ServiceSuite) TestFindByParent() {
	s.Run("invalid parent fails before store", func() {
		_, err := s.service.FindByParent(s.ctx, id.EntityReference{Kind: id.KindAppGroup}, 10)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("delegates to store", func() {
		parent := id.MkRef(id.KindAppGroup, 7)
		want := []models.Entry{s.entry()}
		s.store.EXPECT().FindByParent(gomock.Any(), parent, 5).Return(want, nil)

		got, err := s.service.FindByParent(s.ctx, parent, 5)
		s.Require().NoError(err)
		s.Equal(want, got)
	})
}

func TestNewEntry(t *testing.T) {
	parent := id.MkRef(id.KindAppGroup, 1)

	_, err := models.NewEntry(parent, id.OperationAdd, "", "alice", "   ")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = models.NewEntry(parent, id.OperationAdd, "", "", "msg")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	e, err := models.NewEntry(parent, id.OperationRemove, id.KindApplication, "alice", " msg ")
	require.NoError(t, err)
	assert.Equal(t, "msg", e.Message)
	assert.Equal(t, models.SeverityInformation, e.Severity)
}
