package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"landscape/internal/appgroup/models"
	"landscape/internal/association"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/requestcontext"
)

type Service interface {
	GetGroup(ctx context.Context, groupID int64) (*models.AppGroup, error)
	VerifyCanEdit(ctx context.Context, groupID int64, username string) error
	FindApplications(ctx context.Context, groupID int64) ([]association.Entry, error)
	AddApplication(ctx context.Context, username string, groupID, appID int64) ([]association.Entry, error)
	AddApplications(ctx context.Context, username string, groupID int64, appIDs []int64) (*models.BatchAddResult, error)
	RemoveApplication(ctx context.Context, username string, groupID, appID int64) ([]association.Entry, error)
	RemoveApplications(ctx context.Context, username string, groupID int64, appIDs []int64) ([]association.Entry, error)
	FindChangeInitiatives(ctx context.Context, groupID int64) ([]association.Entry, error)
	AddChangeInitiative(ctx context.Context, username string, groupID, ciID int64) ([]association.Entry, error)
	AddChangeInitiatives(ctx context.Context, username string, groupID int64, ciIDs []int64) (*models.BatchAddResult, error)
	RemoveChangeInitiative(ctx context.Context, username string, groupID, ciID int64) ([]association.Entry, error)
	RemoveChangeInitiatives(ctx context.Context, username string, groupID int64, ciIDs []int64) ([]association.Entry, error)
}

type (
	findFunc   func(ctx context.Context, groupID int64) ([]association.Entry, error)
	mutateOne  func(ctx context.Context, username string, groupID, memberID int64) ([]association.Entry, error)
	mutateMany func(ctx context.Context, username string, groupID int64, memberIDs []int64) ([]association.Entry, error)
	batchAdd   func(ctx context.Context, username string, groupID int64, memberIDs []int64) (*models.BatchAddResult, error)
)

// Handler exposes group membership endpoints. Every mutation checks group
// ownership before touching the association tables and answers with the
// refreshed entry list. Batch adds also name the members that failed.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api/app-group/{id}", func(r chi.Router) {
		r.Get("/", h.HandleGetGroup)

		r.Get("/applications", h.find(h.service.FindApplications))
		r.Post("/applications/list", h.addMany(h.service.AddApplications))
		r.Post("/applications/list/remove", h.many(h.service.RemoveApplications))
		r.Post("/applications/{memberId}", h.one(h.service.AddApplication))
		r.Delete("/applications/{memberId}", h.one(h.service.RemoveApplication))

		r.Get("/change-initiatives", h.find(h.service.FindChangeInitiatives))
		r.Post("/change-initiatives/list", h.addMany(h.service.AddChangeInitiatives))
		r.Post("/change-initiatives/list/remove", h.many(h.service.RemoveChangeInitiatives))
		r.Post("/change-initiatives/{memberId}", h.one(h.service.AddChangeInitiative))
		r.Delete("/change-initiatives/{memberId}", h.one(h.service.RemoveChangeInitiative))
	})
}

// HandleGetGroup handles GET /api/app-group/{id}.
func (h *Handler) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, err := httputil.PathInt64(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	g, err := h.service.GetGroup(r.Context(), groupID)
	if err != nil {
		h.fail(w, r, "load group", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, g)
}

func (h *Handler) find(fn findFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, err := httputil.PathInt64(r, "id")
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		entries, err := fn(r.Context(), groupID)
		if err != nil {
			h.fail(w, r, "list group entries", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, entries)
	}
}

func (h *Handler) one(fn mutateOne) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, username, ok := h.authorize(w, r)
		if !ok {
			return
		}
		memberID, err := httputil.PathInt64(r, "memberId")
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		entries, err := fn(r.Context(), username, groupID, memberID)
		if err != nil {
			h.fail(w, r, "change group entry", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, entries)
	}
}

func (h *Handler) many(fn mutateMany) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, username, ok := h.authorize(w, r)
		if !ok {
			return
		}
		memberIDs, err := httputil.DecodeIDs(r)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		entries, err := fn(r.Context(), username, groupID, memberIDs)
		if err != nil {
			h.fail(w, r, "change group entries", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, entries)
	}
}

func (h *Handler) addMany(fn batchAdd) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID, username, ok := h.authorize(w, r)
		if !ok {
			return
		}
		memberIDs, err := httputil.DecodeIDs(r)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		result, err := fn(r.Context(), username, groupID, memberIDs)
		if err != nil {
			h.fail(w, r, "add group entries", err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, result)
	}
}

func (h *Handler) authorize(w http.ResponseWriter, r *http.Request) (int64, string, bool) {
	ctx := r.Context()
	username := requestcontext.Username(ctx)
	if username == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return 0, "", false
	}
	groupID, err := httputil.PathInt64(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return 0, "", false
	}
	if err := h.service.VerifyCanEdit(ctx, groupID, username); err != nil {
		h.fail(w, r, "verify group edit", err)
		return 0, "", false
	}
	return groupID, username, true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	ctx := r.Context()
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, action+" failed",
		"request_id", requestcontext.RequestID(ctx),
		"user", requestcontext.Username(ctx),
		"path", r.URL.Path,
		"error", err,
	)
	httputil.WriteError(w, err)
}
