package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	clmodels "landscape/internal/changelog/models"
	"landscape/internal/rating/metrics"
	"landscape/internal/rating/models"
	"landscape/internal/selector"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/requestcontext"
)

var tracer = otel.Tracer("landscape/rating")

type Store interface {
	FindForEntity(ctx context.Context, ref id.EntityReference) ([]models.MeasurableRating, error)
	FindByMeasurableIDs(ctx context.Context, measurableIDs []int64) ([]models.MeasurableRating, error)
	FindByApplicationIDs(ctx context.Context, appIDs []int64) ([]models.MeasurableRating, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]models.MeasurableRating, error)
	TallyByMeasurableCategory(ctx context.Context, categoryID int64) ([]models.Tally, error)
	StatsByApplicationIDs(ctx context.Context, appIDs []int64) ([]models.RatingTally, error)
	FindMeasurablesByIDs(ctx context.Context, measurableIDs []int64) ([]models.Measurable, error)
	FindCategoriesForMeasurables(ctx context.Context, measurableIDs []int64) ([]models.MeasurableCategory, error)
	FindRatingSchemeItemsForMeasurables(ctx context.Context, measurableIDs []int64) ([]models.RatingSchemeItem, error)
	IsValidRating(ctx context.Context, measurableID int64, code string) (bool, error)
	SaveRating(ctx context.Context, cmd models.SaveRatingCommand) (int, error)
	SaveDescription(ctx context.Context, ref id.EntityReference, measurableID int64, description, username string) (int, error)
	SetPrimary(ctx context.Context, ref id.EntityReference, measurableID int64, isPrimary bool, username string) (int, error)
	Remove(ctx context.Context, ref id.EntityReference, measurableID int64) (int, error)
	RemoveForCategory(ctx context.Context, ref id.EntityReference, categoryID int64) (int, error)
}

// MeasurableCompiler compiles measurable scopes. selector.Compiler satisfies it.
type MeasurableCompiler interface {
	Compile(ctx context.Context, scope selector.SelectionScope) (selector.Filter, error)
}

type AppSelector interface {
	Select(ctx context.Context, scope selector.SelectionScope) (selector.Filter, error)
}

type ChangeLogWriter interface {
	Write(ctx context.Context, e clmodels.Entry) error
}

// Service reads and writes measurable ratings. It does not authorize:
// handlers consult the permission checker before calling a mutation.
type Service struct {
	store     Store
	compiler  MeasurableCompiler
	apps      AppSelector
	changeLog ChangeLogWriter
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

func WithChangeLog(w ChangeLogWriter) Option {
	return func(s *Service) {
		s.changeLog = w
	}
}

func New(store Store, compiler MeasurableCompiler, apps AppSelector, opts ...Option) *Service {
	s := &Service{store: store, compiler: compiler, apps: apps, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) FindForEntity(ctx context.Context, ref id.EntityReference) ([]models.MeasurableRating, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	ratings, err := s.store.FindForEntity(ctx, ref)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load ratings")
	}
	return ratings, nil
}

// FindByMeasurableSelector returns every rating against the measurables in
// scope. The scope must be rooted at a measurable.
func (s *Service) FindByMeasurableSelector(ctx context.Context, scope selector.SelectionScope) ([]models.MeasurableRating, error) {
	if scope.Root.Kind != id.KindMeasurable {
		return nil, dErrors.Newf(dErrors.CodeValidation, "measurable selector cannot start from %s", scope.Root.Kind)
	}
	filter, err := s.compiler.Compile(ctx, scope)
	if err != nil {
		return nil, err
	}
	ratings, err := s.store.FindByMeasurableIDs(ctx, filter.IDs())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load ratings for measurables")
	}
	return ratings, nil
}

func (s *Service) FindByAppSelector(ctx context.Context, scope selector.SelectionScope) ([]models.MeasurableRating, error) {
	filter, err := s.apps.Select(ctx, scope)
	if err != nil {
		return nil, err
	}
	ratings, err := s.store.FindByApplicationIDs(ctx, filter.IDs())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load ratings for applications")
	}
	return ratings, nil
}

func (s *Service) FindByCategory(ctx context.Context, categoryID int64) ([]models.MeasurableRating, error) {
	if categoryID <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "category id must be positive")
	}
	ratings, err := s.store.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load ratings for category")
	}
	return ratings, nil
}

func (s *Service) TallyByMeasurableCategory(ctx context.Context, categoryID int64) ([]models.Tally, error) {
	if categoryID <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "category id must be positive")
	}
	tallies, err := s.store.TallyByMeasurableCategory(ctx, categoryID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to tally ratings")
	}
	return tallies, nil
}

func (s *Service) StatsByAppSelector(ctx context.Context, scope selector.SelectionScope) ([]models.RatingTally, error) {
	filter, err := s.apps.Select(ctx, scope)
	if err != nil {
		return nil, err
	}
	stats, err := s.store.StatsByApplicationIDs(ctx, filter.IDs())
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to compute rating stats")
	}
	return stats, nil
}

// GetRatingsView bundles an entity's ratings with the measurables,
// categories and rating scheme items needed to display them.
func (s *Service) GetRatingsView(ctx context.Context, ref id.EntityReference) (*models.RatingsView, error) {
	ratings, err := s.FindForEntity(ctx, ref)
	if err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "rating.GetRatingsView")
	span.SetAttributes(attribute.String("entity", ref.String()), attribute.Int("ratings", len(ratings)))
	defer span.End()

	measurableIDs := make([]int64, 0, len(ratings))
	for _, r := range ratings {
		measurableIDs = append(measurableIDs, r.MeasurableID)
	}

	view := &models.RatingsView{Ratings: ratings}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		view.Measurables, err = s.store.FindMeasurablesByIDs(gctx, measurableIDs)
		return err
	})
	g.Go(func() (err error) {
		view.Categories, err = s.store.FindCategoriesForMeasurables(gctx, measurableIDs)
		return err
	})
	g.Go(func() (err error) {
		view.RatingSchemeItems, err = s.store.FindRatingSchemeItemsForMeasurables(gctx, measurableIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load rating view")
	}
	return view, nil
}

// SaveRating writes the rating code. The code must belong to the rating
// scheme of the measurable's category; read-only ratings are a conflict.
func (s *Service) SaveRating(ctx context.Context, cmd models.SaveRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	ok, err := s.store.IsValidRating(ctx, cmd.MeasurableID, cmd.Rating)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to validate rating code")
	}
	if !ok {
		return dErrors.Newf(dErrors.CodeValidation, "rating %q is not valid for measurable %d", cmd.Rating, cmd.MeasurableID)
	}
	n, err := s.store.SaveRating(ctx, cmd)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save rating")
	}
	s.metrics.AddChanged(string(id.OperationUpdate), n)
	if n == 0 {
		return dErrors.Newf(dErrors.CodeConflict, "rating for measurable %d is read-only", cmd.MeasurableID)
	}
	s.recordChange(ctx, cmd.Username, cmd.Entity, id.OperationUpdate,
		fmt.Sprintf("Set rating for measurable %d to %s", cmd.MeasurableID, cmd.Rating))
	return nil
}

func (s *Service) SaveDescription(ctx context.Context, username string, ref id.EntityReference, measurableID int64, description string) error {
	if err := validateTarget(username, ref, measurableID); err != nil {
		return err
	}
	description = strings.TrimSpace(description)
	n, err := s.store.SaveDescription(ctx, ref, measurableID, description, username)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save rating description")
	}
	s.metrics.AddChanged(string(id.OperationUpdate), n)
	if n == 0 {
		return dErrors.Newf(dErrors.CodeNotFound, "no editable rating for measurable %d", measurableID)
	}
	s.recordChange(ctx, username, ref, id.OperationUpdate,
		fmt.Sprintf("Updated description of rating for measurable %d", measurableID))
	return nil
}

// SetPrimary marks the rating primary within its category. Any other
// primary rating the entity holds in that category is cleared.
func (s *Service) SetPrimary(ctx context.Context, username string, ref id.EntityReference, measurableID int64, isPrimary bool) error {
	if err := validateTarget(username, ref, measurableID); err != nil {
		return err
	}
	n, err := s.store.SetPrimary(ctx, ref, measurableID, isPrimary, username)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to set primary rating")
	}
	s.metrics.AddChanged(string(id.OperationUpdate), n)
	if n == 0 {
		return dErrors.Newf(dErrors.CodeNotFound, "no editable rating for measurable %d", measurableID)
	}
	s.recordChange(ctx, username, ref, id.OperationUpdate,
		fmt.Sprintf("Set primary flag of rating for measurable %d to %t", measurableID, isPrimary))
	return nil
}

// Remove deletes a writable rating. Absent or read-only ratings are left
// alone and reported as zero removed.
func (s *Service) Remove(ctx context.Context, username string, ref id.EntityReference, measurableID int64) (int, error) {
	if err := validateTarget(username, ref, measurableID); err != nil {
		return 0, err
	}
	n, err := s.store.Remove(ctx, ref, measurableID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove rating")
	}
	s.metrics.AddChanged(string(id.OperationRemove), n)
	if n > 0 {
		s.recordChange(ctx, username, ref, id.OperationRemove,
			fmt.Sprintf("Removed rating for measurable %d", measurableID))
	}
	return n, nil
}

func (s *Service) RemoveForCategory(ctx context.Context, username string, ref id.EntityReference, categoryID int64) (int, error) {
	if categoryID <= 0 {
		return 0, dErrors.New(dErrors.CodeValidation, "category id must be positive")
	}
	if err := validateTarget(username, ref, categoryID); err != nil {
		return 0, err
	}
	n, err := s.store.RemoveForCategory(ctx, ref, categoryID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove ratings for category")
	}
	s.metrics.AddChanged(string(id.OperationRemove), n)
	if n > 0 {
		s.recordChange(ctx, username, ref, id.OperationRemove,
			fmt.Sprintf("Removed %d ratings in category %d", n, categoryID))
	}
	return n, nil
}

func validateTarget(username string, ref id.EntityReference, measurableID int64) error {
	if username == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if err := ref.Validate(); err != nil {
		return err
	}
	if measurableID <= 0 {
		return dErrors.New(dErrors.CodeValidation, "measurable id must be positive")
	}
	return nil
}

// recordChange writes a change log entry against the rated entity. The
// rating is already written, so failures are only logged.
func (s *Service) recordChange(ctx context.Context, username string, ref id.EntityReference, op id.Operation, message string) {
	s.logger.InfoContext(ctx, "measurable rating changed",
		"request_id", requestcontext.RequestID(ctx),
		"user", username,
		"event", "measurable_rating."+string(op),
		"entity", ref.String(),
		"message", message,
	)
	if s.changeLog == nil {
		return
	}
	entry, err := clmodels.NewEntry(ref, op, id.KindMeasurable, username, message)
	if err == nil {
		err = s.changeLog.Write(ctx, entry)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to record rating change",
			"request_id", requestcontext.RequestID(ctx),
			"entity", ref.String(),
			"error", err,
		)
	}
}
