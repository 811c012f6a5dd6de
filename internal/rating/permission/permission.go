// Package permission decides which rating operations a user may perform on
// an entity.
package permission

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"landscape/internal/rating/metrics"
	"landscape/internal/rating/models"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/requestcontext"
)

type MeasurableStore interface {
	FindMeasurable(ctx context.Context, measurableID int64) (*models.Measurable, error)
	FindCategory(ctx context.Context, categoryID int64) (*models.MeasurableCategory, error)
}

type RoleStore interface {
	HasRole(ctx context.Context, username, role string) (bool, error)
}

// GrantStore lists operations granted through involvements with an entity.
type GrantStore interface {
	FindPermittedOperations(ctx context.Context, username string, parent id.EntityReference, subject id.EntityKind, qualifierID int64) ([]id.Operation, error)
}

// editorOperations are granted in full to holders of a category's editor role.
var editorOperations = []id.Operation{id.OperationAdd, id.OperationUpdate, id.OperationRemove}

type Checker struct {
	measurables MeasurableStore
	roles       RoleStore
	grants      GrantStore
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type Option func(*Checker)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Checker) {
		c.metrics = m
	}
}

func New(measurables MeasurableStore, roles RoleStore, grants GrantStore, opts ...Option) *Checker {
	c := &Checker{measurables: measurables, roles: roles, grants: grants, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindMeasurableRatingPermissions returns the operations username may perform
// on parent's rating for the measurable. Ratings in categories that are not
// editable grant nothing.
func (c *Checker) FindMeasurableRatingPermissions(ctx context.Context, parent id.EntityReference, measurableID int64, username string) (id.OperationSet, error) {
	if err := parent.Validate(); err != nil {
		return nil, err
	}
	category, err := c.categoryOf(ctx, measurableID)
	if err != nil {
		return nil, err
	}
	granted := id.NewOperationSet()
	if !category.Editable || username == "" {
		return granted, nil
	}

	editor, err := c.roles.HasRole(ctx, username, category.RatingEditorRole)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to check rating editor role")
	}
	if editor {
		granted.Add(editorOperations...)
		return granted, nil
	}

	ops, err := c.grants.FindPermittedOperations(ctx, username, parent, id.KindMeasurableRating, category.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load involvement permissions")
	}
	granted.Add(ops...)
	return granted, nil
}

// Verify fails with forbidden unless username holds at least one of required.
func (c *Checker) Verify(ctx context.Context, parent id.EntityReference, measurableID int64, username string, required id.OperationSet) error {
	granted, err := c.FindMeasurableRatingPermissions(ctx, parent, measurableID, username)
	if err != nil {
		return err
	}
	err = VerifyAnyPerms(required, granted, id.KindMeasurableRating, username)
	c.metrics.IncrementPermissionCheck(err == nil)
	if err != nil {
		c.logger.InfoContext(ctx, "rating permission denied",
			"request_id", requestcontext.RequestID(ctx),
			"user", username,
			"parent", parent.String(),
			"measurable_id", measurableID,
		)
	}
	return err
}

// VerifyCategoryEditor fails with forbidden unless username holds the
// category's editor role and the category is editable.
func (c *Checker) VerifyCategoryEditor(ctx context.Context, categoryID int64, username string) error {
	if username == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	category, err := c.measurables.FindCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "measurable category %d not found", categoryID)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load measurable category")
	}
	editor := false
	if category.Editable {
		editor, err = c.roles.HasRole(ctx, username, category.RatingEditorRole)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check rating editor role")
		}
	}
	c.metrics.IncrementPermissionCheck(editor)
	if !editor {
		return dErrors.Newf(dErrors.CodeForbidden, "user %s cannot edit ratings in category %d", username, categoryID)
	}
	return nil
}

// VerifyAnyPerms fails with forbidden when granted shares no operation with
// required.
func VerifyAnyPerms(required, granted id.OperationSet, kind id.EntityKind, username string) error {
	if required.Intersects(granted) {
		return nil
	}
	names := make([]string, 0, len(required))
	for _, op := range required.Sorted() {
		names = append(names, string(op))
	}
	return dErrors.Newf(dErrors.CodeForbidden, "user %s lacks any of [%s] on %s",
		username, strings.Join(names, ", "), kind)
}

func (c *Checker) categoryOf(ctx context.Context, measurableID int64) (*models.MeasurableCategory, error) {
	if measurableID <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "measurable id must be positive")
	}
	m, err := c.measurables.FindMeasurable(ctx, measurableID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "measurable %d not found", measurableID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load measurable")
	}
	category, err := c.measurables.FindCategory(ctx, m.CategoryID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "measurable category %d not found", m.CategoryID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load measurable category")
	}
	return category, nil
}
