package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"landscape/internal/rating/models"
	"landscape/internal/selector"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/requestcontext"
)

type Service interface {
	FindForEntity(ctx context.Context, ref id.EntityReference) ([]models.MeasurableRating, error)
	GetRatingsView(ctx context.Context, ref id.EntityReference) (*models.RatingsView, error)
	FindByMeasurableSelector(ctx context.Context, scope selector.SelectionScope) ([]models.MeasurableRating, error)
	FindByAppSelector(ctx context.Context, scope selector.SelectionScope) ([]models.MeasurableRating, error)
	FindByCategory(ctx context.Context, categoryID int64) ([]models.MeasurableRating, error)
	TallyByMeasurableCategory(ctx context.Context, categoryID int64) ([]models.Tally, error)
	StatsByAppSelector(ctx context.Context, scope selector.SelectionScope) ([]models.RatingTally, error)
	SaveRating(ctx context.Context, cmd models.SaveRatingCommand) error
	SaveDescription(ctx context.Context, username string, ref id.EntityReference, measurableID int64, description string) error
	SetPrimary(ctx context.Context, username string, ref id.EntityReference, measurableID int64, isPrimary bool) error
	Remove(ctx context.Context, username string, ref id.EntityReference, measurableID int64) (int, error)
	RemoveForCategory(ctx context.Context, username string, ref id.EntityReference, categoryID int64) (int, error)
}

// Authorizer is the rating permission checker.
type Authorizer interface {
	FindMeasurableRatingPermissions(ctx context.Context, parent id.EntityReference, measurableID int64, username string) (id.OperationSet, error)
	Verify(ctx context.Context, parent id.EntityReference, measurableID int64, username string, required id.OperationSet) error
	VerifyCategoryEditor(ctx context.Context, categoryID int64, username string) error
}

var (
	saveRatingOps = id.NewOperationSet(id.OperationAdd, id.OperationUpdate)
	updateOps     = id.NewOperationSet(id.OperationUpdate)
	removeOps     = id.NewOperationSet(id.OperationRemove)
)

// Handler exposes measurable rating endpoints. Mutations are authorized
// before any write and answer with the entity's refreshed ratings.
type Handler struct {
	service    Service
	authorizer Authorizer
	logger     *slog.Logger
}

func New(service Service, authorizer Authorizer, logger *slog.Logger) *Handler {
	return &Handler{service: service, authorizer: authorizer, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api/measurable-rating", func(r chi.Router) {
		r.Get("/entity/{kind}/{id}", h.HandleFindForEntity)
		r.Get("/entity/{kind}/{id}/view", h.HandleGetRatingsView)
		r.Get("/entity/{kind}/{id}/measurable/{measurableId}/permissions", h.HandleFindPermissions)
		r.Post("/entity/{kind}/{id}/measurable/{measurableId}/rating", h.HandleSaveRating)
		r.Post("/entity/{kind}/{id}/measurable/{measurableId}/description", h.HandleSaveDescription)
		r.Post("/entity/{kind}/{id}/measurable/{measurableId}/is-primary", h.HandleSetPrimary)
		r.Delete("/entity/{kind}/{id}/measurable/{measurableId}", h.HandleRemove)
		r.Delete("/entity/{kind}/{id}/category/{categoryId}", h.HandleRemoveForCategory)

		r.Post("/measurable-selector", h.HandleFindByMeasurableSelector)
		r.Post("/app-selector", h.HandleFindByAppSelector)
		r.Get("/category/{categoryId}", h.HandleFindByCategory)
		r.Get("/count-by/measurable/category/{categoryId}", h.HandleTallyByCategory)
		r.Post("/stats-by/app-selector", h.HandleStatsByAppSelector)
	})
}

func (h *Handler) HandleFindForEntity(w http.ResponseWriter, r *http.Request) {
	ref, err := entityRef(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ratings, err := h.service.FindForEntity(r.Context(), ref)
	h.respond(w, r, ratings, err)
}

func (h *Handler) HandleGetRatingsView(w http.ResponseWriter, r *http.Request) {
	ref, err := entityRef(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	view, err := h.service.GetRatingsView(r.Context(), ref)
	h.respond(w, r, view, err)
}

// HandleFindPermissions answers with the sorted operations the caller may
// perform on the rating.
func (h *Handler) HandleFindPermissions(w http.ResponseWriter, r *http.Request) {
	ref, measurableID, ok := h.target(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	granted, err := h.authorizer.FindMeasurableRatingPermissions(ctx, ref, measurableID, requestcontext.Username(ctx))
	if err != nil {
		h.respond(w, r, nil, err)
		return
	}
	h.respond(w, r, granted.Sorted(), nil)
}

func (h *Handler) HandleSaveRating(w http.ResponseWriter, r *http.Request) {
	ref, measurableID, ok := h.target(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SaveRatingRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	username := requestcontext.Username(ctx)
	h.mutate(w, r, ref, h.verify(ref, measurableID, saveRatingOps), func(ctx context.Context) error {
		return h.service.SaveRating(ctx, models.SaveRatingCommand{
			Entity:       ref,
			MeasurableID: measurableID,
			Rating:       req.Rating,
			Username:     username,
		})
	})
}

func (h *Handler) HandleSaveDescription(w http.ResponseWriter, r *http.Request) {
	ref, measurableID, ok := h.target(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SaveDescriptionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	username := requestcontext.Username(ctx)
	h.mutate(w, r, ref, h.verify(ref, measurableID, updateOps), func(ctx context.Context) error {
		return h.service.SaveDescription(ctx, username, ref, measurableID, req.Description)
	})
}

func (h *Handler) HandleSetPrimary(w http.ResponseWriter, r *http.Request) {
	ref, measurableID, ok := h.target(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SetPrimaryRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	username := requestcontext.Username(ctx)
	h.mutate(w, r, ref, h.verify(ref, measurableID, updateOps), func(ctx context.Context) error {
		return h.service.SetPrimary(ctx, username, ref, measurableID, *req.IsPrimary)
	})
}

func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ref, measurableID, ok := h.target(w, r)
	if !ok {
		return
	}
	username := requestcontext.Username(r.Context())
	h.mutate(w, r, ref, h.verify(ref, measurableID, removeOps), func(ctx context.Context) error {
		_, err := h.service.Remove(ctx, username, ref, measurableID)
		return err
	})
}

func (h *Handler) HandleRemoveForCategory(w http.ResponseWriter, r *http.Request) {
	if !h.authenticated(w, r) {
		return
	}
	ref, err := entityRef(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	categoryID, err := httputil.PathInt64(r, "categoryId")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	username := requestcontext.Username(r.Context())
	authorize := func(ctx context.Context) error {
		return h.authorizer.VerifyCategoryEditor(ctx, categoryID, username)
	}
	h.mutate(w, r, ref, authorize, func(ctx context.Context) error {
		_, err := h.service.RemoveForCategory(ctx, username, ref, categoryID)
		return err
	})
}

func (h *Handler) HandleFindByMeasurableSelector(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.decodeScope(w, r)
	if !ok {
		return
	}
	ratings, err := h.service.FindByMeasurableSelector(r.Context(), scope)
	h.respond(w, r, ratings, err)
}

func (h *Handler) HandleFindByAppSelector(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.decodeScope(w, r)
	if !ok {
		return
	}
	ratings, err := h.service.FindByAppSelector(r.Context(), scope)
	h.respond(w, r, ratings, err)
}

func (h *Handler) HandleFindByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := httputil.PathInt64(r, "categoryId")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ratings, err := h.service.FindByCategory(r.Context(), categoryID)
	h.respond(w, r, ratings, err)
}

func (h *Handler) HandleTallyByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := httputil.PathInt64(r, "categoryId")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	tallies, err := h.service.TallyByMeasurableCategory(r.Context(), categoryID)
	h.respond(w, r, tallies, err)
}

func (h *Handler) HandleStatsByAppSelector(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.decodeScope(w, r)
	if !ok {
		return
	}
	stats, err := h.service.StatsByAppSelector(r.Context(), scope)
	h.respond(w, r, stats, err)
}

// mutate drives one mutation through its states. A denial answers before
// apply runs; a successful apply answers with the re-read ratings.
func (h *Handler) mutate(w http.ResponseWriter, r *http.Request, ref id.EntityReference, authorize, apply func(ctx context.Context) error) {
	ctx := r.Context()
	m := newMutation(authorize, apply)
	if err := m.run(ctx); err != nil {
		h.logger.Log(ctx, levelFor(err), "rating mutation failed",
			"request_id", requestcontext.RequestID(ctx),
			"user", requestcontext.Username(ctx),
			"entity", ref.String(),
			"state", m.state.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	ratings, err := h.service.FindForEntity(ctx, ref)
	h.respond(w, r, ratings, err)
}

func (h *Handler) verify(ref id.EntityReference, measurableID int64, required id.OperationSet) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return h.authorizer.Verify(ctx, ref, measurableID, requestcontext.Username(ctx), required)
	}
}

// target reads the entity and measurable of a rating path and requires an
// authenticated caller for anything but GET.
func (h *Handler) target(w http.ResponseWriter, r *http.Request) (id.EntityReference, int64, bool) {
	if r.Method != http.MethodGet && !h.authenticated(w, r) {
		return id.EntityReference{}, 0, false
	}
	ref, err := entityRef(r)
	if err != nil {
		httputil.WriteError(w, err)
		return id.EntityReference{}, 0, false
	}
	measurableID, err := httputil.PathInt64(r, "measurableId")
	if err != nil {
		httputil.WriteError(w, err)
		return id.EntityReference{}, 0, false
	}
	return ref, measurableID, true
}

func (h *Handler) authenticated(w http.ResponseWriter, r *http.Request) bool {
	if requestcontext.Username(r.Context()) == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return false
	}
	return true
}

func (h *Handler) decodeScope(w http.ResponseWriter, r *http.Request) (selector.SelectionScope, bool) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[selector.ScopeRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return selector.SelectionScope{}, false
	}
	return req.SelectionScope(), true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		ctx := r.Context()
		h.logger.Log(ctx, levelFor(err), "measurable rating request failed",
			"request_id", requestcontext.RequestID(ctx),
			"path", r.URL.Path,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}

func entityRef(r *http.Request) (id.EntityReference, error) {
	return id.ParseEntityReference(chi.URLParam(r, "kind"), chi.URLParam(r, "id"))
}

func levelFor(err error) slog.Level {
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		return slog.LevelError
	}
	return slog.LevelWarn
}
