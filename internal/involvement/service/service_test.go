package service

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks Store,ChangeLogWriter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clmodels "landscape/internal/changelog/models"
	"landscape/internal/involvement/models"
	"landscape/internal/involvement/service/mocks"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/sentinel"
)

// =============================================================================
// Involvement Service Test Suite
// =============================================================================

type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	changeLog *mocks.MockChangeLogWriter
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
	s.changeLog = mocks.NewMockChangeLogWriter(s.ctrl)
	s.service = New(s.store,
		WithChangeLog(s.changeLog),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.ctx = context.Background()
	s.app = id.MkRef(id.KindApplication, 10)
}

// =============================================================================
// Kinds
// =============================================================================

func (s *ServiceSuite) TestCreateKind() {
	s.Run("trims and stores the kind", func() {
		s.store.EXPECT().CreateKind(gomock.Any(), models.CreateKindCommand{Name: "Architect"}).Return(int64(7), nil)
		s.changeLog.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e clmodels.Entry) error {
			s.Equal(id.MkRef(id.KindInvolvementKind, 7), e.Parent)
			return nil
		})

		kind, err := s.service.CreateKind(s.ctx, "alice", models.CreateKindCommand{Name: "  Architect "})
		s.Require().NoError(err)
		s.Equal(int64(7), kind.ID)
		s.Equal("Architect", kind.Name)
	})

	s.Run("duplicate name is a conflict", func() {
		s.store.EXPECT().CreateKind(gomock.Any(), gomock.Any()).Return(int64(0), sentinel.ErrConflict)

		_, err := s.service.CreateKind(s.ctx, "alice", models.CreateKindCommand{Name: "Architect"})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("blank name is rejected before the store", func() {
		_, err := s.service.CreateKind(s.ctx, "alice", models.CreateKindCommand{Name: " "})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("anonymous callers are rejected", func() {
		_, err := s.service.CreateKind(s.ctx, "", models.CreateKindCommand{Name: "Architect"})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

// =============================================================================
// Entity involvements
// =============================================================================

func (s *ServiceSuite) TestChangeEntityInvolvement() {
	owner := &models.Kind{ID: 5, Name: "Owner"}

	s.Run("add records a change", func() {
		s.store.EXPECT().FindKind(gomock.Any(), int64(5)).Return(owner, nil)
		s.store.EXPECT().Add(gomock.Any(), s.app, int64(1), int64(5)).Return(1, nil)
		s.changeLog.EXPECT().Write(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e clmodels.Entry) error {
			s.Equal(s.app, e.Parent)
			s.Equal(id.OperationAdd, e.Operation)
			s.Equal(id.KindPerson, e.ChildKind)
			s.Equal("Added involvement Owner for person 1", e.Message)
			return nil
		})

		changed, err := s.service.ChangeEntityInvolvement(s.ctx, "alice", s.app,
			models.ChangeCommand{Operation: "add", PersonID: 1, KindID: 5})
		s.Require().NoError(err)
		s.True(changed)
	})

	s.Run("removing a read-only involvement is a no-op", func() {
		s.store.EXPECT().FindKind(gomock.Any(), int64(5)).Return(owner, nil)
		s.store.EXPECT().Remove(gomock.Any(), s.app, int64(2), int64(5)).Return(0, nil)

		changed, err := s.service.ChangeEntityInvolvement(s.ctx, "alice", s.app,
			models.ChangeCommand{Operation: "REMOVE", PersonID: 2, KindID: 5})
		s.Require().NoError(err)
		s.False(changed)
	})

	s.Run("unknown kind is not found", func() {
		s.store.EXPECT().FindKind(gomock.Any(), int64(9)).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.ChangeEntityInvolvement(s.ctx, "alice", s.app,
			models.ChangeCommand{Operation: "ADD", PersonID: 1, KindID: 9})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("update is not an involvement operation", func() {
		_, err := s.service.ChangeEntityInvolvement(s.ctx, "alice", s.app,
			models.ChangeCommand{Operation: "UPDATE", PersonID: 1, KindID: 5})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("change log failure does not fail the change", func() {
		s.store.EXPECT().FindKind(gomock.Any(), int64(5)).Return(owner, nil)
		s.store.EXPECT().Add(gomock.Any(), s.app, int64(3), int64(5)).Return(1, nil)
		s.changeLog.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		changed, err := s.service.ChangeEntityInvolvement(s.ctx, "alice", s.app,
			models.ChangeCommand{Operation: "ADD", PersonID: 3, KindID: 5})
		s.Require().NoError(err)
		s.True(changed)
	})
}

func (s *ServiceSuite) TestFindByEntity() {
	s.Run("invalid reference never reaches the store", func() {
		_, err := s.service.FindByEntity(s.ctx, id.MkRef(id.KindApplication, 0))
		s.Error(err)
	})

	s.Run("store failure is internal", func() {
		s.store.EXPECT().FindByEntity(gomock.Any(), s.app).Return(nil, errors.New("boom"))

		_, err := s.service.FindByEntity(s.ctx, s.app)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}
