package service

import (
	"context"
	"errors"
	"log/slog"

	"landscape/internal/application/models"
	"landscape/internal/selector"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/sentinel"
)

type Store interface {
	GetByID(ctx context.Context, appID int64) (*models.Application, error)
	FindByIDs(ctx context.Context, appIDs []int64) ([]models.Application, error)
}

// Selector resolves a scope to active application ids.
type Selector interface {
	Select(ctx context.Context, scope selector.SelectionScope) (selector.Filter, error)
}

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

// GetByID returns the application including removed ones, matching a
// direct lookup by id.
func (s *Service) GetByID(ctx context.Context, appID int64) (*models.Application, error) {
	if appID <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "application id must be positive")
	}
	app, err := s.store.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "application %d not found", appID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	return app, nil
}

// FindBySelector lists the active applications in scope, ordered by name.
func (s *Service) FindBySelector(ctx context.Context, scope selector.SelectionScope) ([]models.Application, error) {
	filter, err := s.selector.Select(ctx, scope)
	if err != nil {
		return nil, err
	}
	if filter.IsEmpty() {
		return []models.Application{}, nil
	}
	apps, err := s.store.FindByIDs(ctx, filter.IDs())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load applications")
	}
	return apps, nil
}
