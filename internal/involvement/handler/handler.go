package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"landscape/internal/involvement/models"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/requestcontext"
)

type Service interface {
	FindKinds(ctx context.Context) ([]models.Kind, error)
	CreateKind(ctx context.Context, username string, cmd models.CreateKindCommand) (*models.Kind, error)
	FindByEntity(ctx context.Context, ref id.EntityReference) ([]models.Involvement, error)
	ChangeEntityInvolvement(ctx context.Context, username string, ref id.EntityReference, cmd models.ChangeCommand) (bool, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/involvement-kind", h.HandleFindKinds)
	r.Post("/api/involvement-kind", h.HandleCreateKind)
	r.Get("/api/involvement/entity/{kind}/{id}", h.HandleFindByEntity)
	r.Post("/api/involvement/entity/{kind}/{id}", h.HandleChangeEntityInvolvement)
}

func (h *Handler) HandleFindKinds(w http.ResponseWriter, r *http.Request) {
	kinds, err := h.service.FindKinds(r.Context())
	if err != nil {
		h.fail(w, r, "list involvement kinds", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, kinds)
}

func (h *Handler) HandleCreateKind(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := requestcontext.Username(ctx)
	if username == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	cmd, ok := httputil.DecodeAndPrepare[models.CreateKindCommand](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	kind, err := h.service.CreateKind(ctx, username, *cmd)
	if err != nil {
		h.fail(w, r, "create involvement kind", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, kind)
}

func (h *Handler) HandleFindByEntity(w http.ResponseWriter, r *http.Request) {
	ref, err := id.ParseEntityReference(chi.URLParam(r, "kind"), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	involvements, err := h.service.FindByEntity(r.Context(), ref)
	if err != nil {
		h.fail(w, r, "list involvements", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, involvements)
}

// HandleChangeEntityInvolvement answers with whether the involvement changed.
func (h *Handler) HandleChangeEntityInvolvement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := requestcontext.Username(ctx)
	if username == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}
	ref, err := id.ParseEntityReference(chi.URLParam(r, "kind"), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cmd, ok := httputil.DecodeAndPrepare[models.ChangeCommand](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	changed, err := h.service.ChangeEntityInvolvement(ctx, username, ref, *cmd)
	if err != nil {
		h.fail(w, r, "change involvement", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, changed)
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
		"error", err,
	)
	httputil.WriteError(w, err)
}
