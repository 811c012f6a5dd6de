package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"landscape/internal/appgroup/metrics"
	"landscape/internal/appgroup/models"
	"landscape/internal/association"
	clmodels "landscape/internal/changelog/models"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/ids"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/requestcontext"
)

var tracer = otel.Tracer("landscape/appgroup")

type GroupStore interface {
	FindByID(ctx context.Context, groupID int64) (*models.AppGroup, error)
	IsOwner(ctx context.Context, groupID int64, username string) (bool, error)
}

// EntryStore is one association table. association.Store satisfies it.
type EntryStore interface {
	FindEntriesForGroup(ctx context.Context, groupID int64) ([]association.Entry, error)
	AddEntry(ctx context.Context, groupID, memberID int64) (int, error)
	AddEntries(ctx context.Context, groupID int64, memberIDs []int64) []association.AddOutcome
	RemoveEntry(ctx context.Context, groupID, memberID int64) (int, error)
	RemoveEntries(ctx context.Context, groupID int64, memberIDs []int64) (int, error)
}

type ChangeLogWriter interface {
	Write(ctx context.Context, e clmodels.Entry) error
}

type membership struct {
	kind  id.EntityKind
	label string
	store EntryStore
}

// Service manages the applications and change initiatives of a group.
// Authorization is the caller's job: handlers call VerifyCanEdit first.
type Service struct {
	groups       GroupStore
	applications membership
	initiatives  membership
	changeLog    ChangeLogWriter
	logger       *slog.Logger
	metrics      *metrics.Metrics
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

func New(groups GroupStore, applications, initiatives EntryStore, opts ...Option) *Service {
	s := &Service{
		groups:       groups,
		applications: membership{kind: id.KindApplication, label: "application", store: applications},
		initiatives:  membership{kind: id.KindChangeInitiative, label: "change initiative", store: initiatives},
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetGroup returns a live group or a not-found error.
func (s *Service) GetGroup(ctx context.Context, groupID int64) (*models.AppGroup, error) {
	if groupID <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "group id must be positive")
	}
	g, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "application group %d not found", groupID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application group")
	}
	return g, nil
}

// VerifyCanEdit fails with forbidden unless username owns the group.
func (s *Service) VerifyCanEdit(ctx context.Context, groupID int64, username string) error {
	if username == "" {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return err
	}
	owner, err := s.groups.IsOwner(ctx, groupID, username)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to check group ownership")
	}
	if !owner {
		return dErrors.Newf(dErrors.CodeForbidden, "user %s cannot edit application group %d", username, groupID)
	}
	return nil
}

func (s *Service) FindApplications(ctx context.Context, groupID int64) ([]association.Entry, error) {
	return s.find(ctx, s.applications, groupID)
}

func (s *Service) AddApplication(ctx context.Context, username string, groupID, appID int64) ([]association.Entry, error) {
	return s.add(ctx, s.applications, username, groupID, appID)
}

func (s *Service) AddApplications(ctx context.Context, username string, groupID int64, appIDs []int64) (*models.BatchAddResult, error) {
	return s.addMany(ctx, s.applications, username, groupID, appIDs)
}

func (s *Service) RemoveApplication(ctx context.Context, username string, groupID, appID int64) ([]association.Entry, error) {
	return s.remove(ctx, s.applications, username, groupID, appID)
}

func (s *Service) RemoveApplications(ctx context.Context, username string, groupID int64, appIDs []int64) ([]association.Entry, error) {
	return s.removeMany(ctx, s.applications, username, groupID, appIDs)
}

func (s *Service) FindChangeInitiatives(ctx context.Context, groupID int64) ([]association.Entry, error) {
	return s.find(ctx, s.initiatives, groupID)
}

func (s *Service) AddChangeInitiative(ctx context.Context, username string, groupID, ciID int64) ([]association.Entry, error) {
	return s.add(ctx, s.initiatives, username, groupID, ciID)
}

func (s *Service) AddChangeInitiatives(ctx context.Context, username string, groupID int64, ciIDs []int64) (*models.BatchAddResult, error) {
	return s.addMany(ctx, s.initiatives, username, groupID, ciIDs)
}

func (s *Service) RemoveChangeInitiative(ctx context.Context, username string, groupID, ciID int64) ([]association.Entry, error) {
	return s.remove(ctx, s.initiatives, username, groupID, ciID)
}

func (s *Service) RemoveChangeInitiatives(ctx context.Context, username string, groupID int64, ciIDs []int64) ([]association.Entry, error) {
	return s.removeMany(ctx, s.initiatives, username, groupID, ciIDs)
}

func (s *Service) find(ctx context.Context, m membership, groupID int64) ([]association.Entry, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.list(ctx, m, groupID)
}

func (s *Service) list(ctx context.Context, m membership, groupID int64) ([]association.Entry, error) {
	entries, err := m.store.FindEntriesForGroup(ctx, groupID)
	if err != nil {
		return nil, dErrors.Wrapf(err, dErrors.CodeInternal, "failed to load %s entries", m.label)
	}
	return entries, nil
}

func (s *Service) add(ctx context.Context, m membership, username string, groupID, memberID int64) ([]association.Entry, error) {
	if memberID <= 0 {
		return nil, dErrors.Newf(dErrors.CodeValidation, "%s id must be positive", m.label)
	}
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "appgroup.Add")
	span.SetAttributes(attribute.String("member_kind", string(m.kind)), attribute.Int64("group_id", groupID))
	defer span.End()

	n, err := m.store.AddEntry(ctx, groupID, memberID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "%s %d not found", m.label, memberID)
		}
		return nil, dErrors.Wrapf(err, dErrors.CodeInternal, "failed to add %s", m.label)
	}
	if n > 0 {
		s.metrics.AddChanged(string(m.kind), string(id.OperationAdd), n)
		s.recordChange(ctx, username, groupID, m, id.OperationAdd, fmt.Sprintf("Added %s %d", m.label, memberID))
	}
	return s.list(ctx, m, groupID)
}

func (s *Service) addMany(ctx context.Context, m membership, username string, groupID int64, memberIDs []int64) (*models.BatchAddResult, error) {
	if err := validateIDs(m, memberIDs); err != nil {
		return nil, err
	}
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	ctx, span := tracer.Start(ctx, "appgroup.AddMany")
	span.SetAttributes(attribute.String("member_kind", string(m.kind)), attribute.Int("requested", len(memberIDs)))
	defer span.End()

	result := &models.BatchAddResult{Failed: []models.FailedMember{}}
	for _, o := range m.store.AddEntries(ctx, groupID, ids.Dedupe(memberIDs)) {
		switch {
		case o.Err != nil:
			code := dErrors.CodeInternal
			if errors.Is(o.Err, sentinel.ErrNotFound) {
				code = dErrors.CodeNotFound
			}
			result.Failed = append(result.Failed, models.FailedMember{MemberID: o.MemberID, Code: code})
			s.metrics.IncrementAddFailures(string(m.kind))
			s.logger.WarnContext(ctx, "group entry add failed",
				"request_id", requestcontext.RequestID(ctx),
				"group_id", groupID,
				"member_kind", m.kind,
				"member_id", o.MemberID,
				"error", o.Err,
			)
		case o.Inserted > 0:
			s.metrics.AddChanged(string(m.kind), string(id.OperationAdd), o.Inserted)
			s.recordChange(ctx, username, groupID, m, id.OperationAdd, fmt.Sprintf("Added %s %d", m.label, o.MemberID))
		}
	}
	entries, err := s.list(ctx, m, groupID)
	if err != nil {
		return nil, err
	}
	result.Entries = entries
	return result, nil
}

func (s *Service) remove(ctx context.Context, m membership, username string, groupID, memberID int64) ([]association.Entry, error) {
	if memberID <= 0 {
		return nil, dErrors.Newf(dErrors.CodeValidation, "%s id must be positive", m.label)
	}
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	n, err := m.store.RemoveEntry(ctx, groupID, memberID)
	if err != nil {
		return nil, dErrors.Wrapf(err, dErrors.CodeInternal, "failed to remove %s", m.label)
	}
	if n == 0 {
		s.metrics.AddRemovalsSkipped(string(m.kind), 1)
	} else {
		s.metrics.AddChanged(string(m.kind), string(id.OperationRemove), n)
		s.recordChange(ctx, username, groupID, m, id.OperationRemove, fmt.Sprintf("Removed %s %d", m.label, memberID))
	}
	return s.list(ctx, m, groupID)
}

func (s *Service) removeMany(ctx context.Context, m membership, username string, groupID int64, memberIDs []int64) ([]association.Entry, error) {
	if err := validateIDs(m, memberIDs); err != nil {
		return nil, err
	}
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	requested := ids.Dedupe(memberIDs)
	n, err := m.store.RemoveEntries(ctx, groupID, requested)
	if err != nil {
		return nil, dErrors.Wrapf(err, dErrors.CodeInternal, "failed to remove %s entries", m.label)
	}
	s.metrics.AddRemovalsSkipped(string(m.kind), len(requested)-n)
	if n > 0 {
		s.metrics.AddChanged(string(m.kind), string(id.OperationRemove), n)
		s.recordChange(ctx, username, groupID, m, id.OperationRemove,
			fmt.Sprintf("Removed %d of %d requested %s entries", n, len(requested), m.label))
	}
	return s.list(ctx, m, groupID)
}

// validateIDs rejects a batch holding any non-positive id.
func validateIDs(m membership, memberIDs []int64) error {
	var invalid []int64
	for _, v := range memberIDs {
		if v <= 0 {
			invalid = append(invalid, v)
		}
	}
	if len(invalid) > 0 {
		return dErrors.Newf(dErrors.CodeValidation, "%s ids must be positive: %v", m.label, invalid)
	}
	return nil
}

// recordChange writes a change log entry. The mutation has already happened,
// so failures are logged and swallowed.
func (s *Service) recordChange(ctx context.Context, username string, groupID int64, m membership, op id.Operation, message string) {
	s.logger.InfoContext(ctx, "application group changed",
		"request_id", requestcontext.RequestID(ctx),
		"user", username,
		"event", "app_group."+string(op),
		"group_id", groupID,
		"member_kind", m.kind,
		"message", message,
	)
	if s.changeLog == nil {
		return
	}
	entry, err := clmodels.NewEntry(id.MkRef(id.KindAppGroup, groupID), op, m.kind, username, message)
	if err == nil {
		err = s.changeLog.Write(ctx, entry)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to record group change",
			"request_id", requestcontext.RequestID(ctx),
			"group_id", groupID,
			"error", err,
		)
	}
}
