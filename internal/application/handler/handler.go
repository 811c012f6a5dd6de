package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"landscape/internal/application/models"
	"landscape/internal/selector"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/requestcontext"
)

type Service interface {
	GetByID(ctx context.Context, appID int64) (*models.Application, error)
	FindBySelector(ctx context.Context, scope selector.SelectionScope) ([]models.Application, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/app/id/{id}", h.HandleGetByID)
	r.Post("/api/app/selector", h.HandleFindBySelector)
}

// HandleGetByID handles GET /api/app/id/{id}.
func (h *Handler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	appID, err := httputil.PathInt64(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	app, err := h.service.GetByID(r.Context(), appID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, app)
}

// HandleFindBySelector handles POST /api/app/selector.
func (h *Handler) HandleFindBySelector(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[selector.ScopeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	apps, err := h.service.FindBySelector(ctx, req.SelectionScope())
	if err != nil {
		h.logger.WarnContext(ctx, "application selection failed",
			"request_id", requestID,
			"scope", req.SelectionScope().String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, apps)
}
