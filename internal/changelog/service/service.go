package service

import (
	"context"
	"log/slog"

	"landscape/internal/changelog/metrics"
	"landscape/internal/changelog/models"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/requestcontext"
)

type Store interface {
	Append(ctx context.Context, e models.Entry) error
	FindByParent(ctx context.Context, parent id.EntityReference, limit int) ([]models.Entry, error)
}

// Publisher forwards written entries downstream.
type Publisher interface {
	Publish(ctx context.Context, e models.Entry) error
}

// Service writes and reads the change log.
type Service struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write appends e and then publishes it. Publish failures are logged and
// counted but never returned: the entry is already durable.
func (s *Service) Write(ctx context.Context, e models.Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = requestcontext.Now(ctx)
	}
	if err := s.store.Append(ctx, e); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to write change log")
	}
	s.metrics.IncrementWritten(string(e.Parent.Kind))

	if s.publisher == nil {
		return nil
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.metrics.IncrementPublishFailures()
		s.logger.WarnContext(ctx, "change log publish failed",
			"request_id", requestcontext.RequestID(ctx),
			"entry_id", e.ID,
			"parent", e.Parent.String(),
			"error", err,
		)
	}
	return nil
}

// FindByParent lists the newest entries for parent.
func (s *Service) FindByParent(ctx context.Context, parent id.EntityReference, limit int) ([]models.Entry, error) {
	if err := parent.Validate(); err != nil {
		return nil, err
	}
	entries, err := s.store.FindByParent(ctx, parent, limit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load change log")
	}
	return entries, nil
}
