package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"landscape/internal/changelog/models"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/requestcontext"
)

type Service interface {
	FindByParent(ctx context.Context, parent id.EntityReference, limit int) ([]models.Entry, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/change-log/{kind}/{id}", h.HandleFindByParent)
}

// HandleFindByParent handles GET /api/change-log/{kind}/{id}?limit=n.
func (h *Handler) HandleFindByParent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	parent, err := id.ParseEntityReference(chi.URLParam(r, "kind"), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "limit must be a non-negative integer"))
			return
		}
	}

	entries, err := h.service.FindByParent(ctx, parent, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "change log lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"parent", parent.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, entries)
}
