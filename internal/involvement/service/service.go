package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	clmodels "landscape/internal/changelog/models"
	"landscape/internal/involvement/models"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/requestcontext"
)

type Store interface {
	FindKinds(ctx context.Context) ([]models.Kind, error)
	FindKind(ctx context.Context, kindID int64) (*models.Kind, error)
	CreateKind(ctx context.Context, cmd models.CreateKindCommand) (int64, error)
	FindByEntity(ctx context.Context, ref id.EntityReference) ([]models.Involvement, error)
	Add(ctx context.Context, ref id.EntityReference, personID, kindID int64) (int, error)
	Remove(ctx context.Context, ref id.EntityReference, personID, kindID int64) (int, error)
}

type ChangeLogWriter interface {
	Write(ctx context.Context, e clmodels.Entry) error
}

type Service struct {
	store     Store
	changeLog ChangeLogWriter
	logger    *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithChangeLog(w ChangeLogWriter) Option {
	return func(s *Service) {
		s.changeLog = w
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) FindKinds(ctx context.Context) ([]models.Kind, error) {
	kinds, err := s.store.FindKinds(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load involvement kinds")
	}
	return kinds, nil
}

// CreateKind registers a new involvement kind. Names are unique.
func (s *Service) CreateKind(ctx context.Context, username string, cmd models.CreateKindCommand) (*models.Kind, error) {
	if username == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	kindID, err := s.store.CreateKind(ctx, cmd)
	if err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict, "involvement kind %q already exists", cmd.Name)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create involvement kind")
	}
	s.recordChange(ctx, username, id.MkRef(id.KindInvolvementKind, kindID), id.OperationAdd, "",
		fmt.Sprintf("Created involvement kind %s", cmd.Name))
	return &models.Kind{ID: kindID, Name: cmd.Name, Description: cmd.Description, ExternalID: cmd.ExternalID}, nil
}

func (s *Service) FindByEntity(ctx context.Context, ref id.EntityReference) ([]models.Involvement, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	involvements, err := s.store.FindByEntity(ctx, ref)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load involvements")
	}
	return involvements, nil
}

// ChangeEntityInvolvement applies cmd and reports whether anything changed.
// Adding an existing involvement or removing a read-only one is a no-op.
func (s *Service) ChangeEntityInvolvement(ctx context.Context, username string, ref id.EntityReference, cmd models.ChangeCommand) (bool, error) {
	if username == "" {
		return false, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if err := ref.Validate(); err != nil {
		return false, err
	}
	if err := cmd.Validate(); err != nil {
		return false, err
	}
	kind, err := s.store.FindKind(ctx, cmd.KindID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, dErrors.Newf(dErrors.CodeNotFound, "involvement kind %d not found", cmd.KindID)
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load involvement kind")
	}

	var n int
	var verb string
	switch cmd.ParsedOperation() {
	case id.OperationAdd:
		n, err = s.store.Add(ctx, ref, cmd.PersonID, cmd.KindID)
		verb = "Added"
	default:
		n, err = s.store.Remove(ctx, ref, cmd.PersonID, cmd.KindID)
		verb = "Removed"
	}
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to change involvement")
	}
	if n == 0 {
		return false, nil
	}
	s.recordChange(ctx, username, ref, cmd.ParsedOperation(), id.KindPerson,
		fmt.Sprintf("%s involvement %s for person %d", verb, kind.Name, cmd.PersonID))
	return true, nil
}

func (s *Service) recordChange(ctx context.Context, username string, parent id.EntityReference, op id.Operation, child id.EntityKind, message string) {
	s.logger.InfoContext(ctx, "involvement changed",
		"request_id", requestcontext.RequestID(ctx),
		"user", username,
		"event", "involvement."+string(op),
		"parent", parent.String(),
	)
	if s.changeLog == nil {
		return
	}
	entry, err := clmodels.NewEntry(parent, op, child, username, message)
	if err == nil {
		err = s.changeLog.Write(ctx, entry)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to record involvement change",
			"request_id", requestcontext.RequestID(ctx),
			"parent", parent.String(),
			"error", err,
		)
	}
}
