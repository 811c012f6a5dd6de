package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"landscape/internal/cost/models"
	"landscape/internal/selector"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/platform/httputil"
	"landscape/pkg/requestcontext"
)

const (
	defaultTopLimit = 10
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Service interface {
	FindByAssetCode(ctx context.Context, assetCode string) ([]models.AssetCost, error)
	FindByApplicationID(ctx context.Context, appID int64) ([]models.AssetCost, error)
	FindAppCostsForSelection(ctx context.Context, scope selector.SelectionScope) ([]models.ApplicationCost, error)
	FindTopAppCostsForSelection(ctx context.Context, scope selector.SelectionScope, limit int) ([]models.ApplicationCost, error)
	CalculateCombinedAmountsForSelection(ctx context.Context, scope selector.SelectionScope) ([]models.ApplicationAmount, error)
	CalculateStatistics(ctx context.Context, scope selector.SelectionScope) (*models.AssetCostStatistics, error)
	ExportAppCosts(ctx context.Context, scope selector.SelectionScope, w io.Writer) error
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Route("/api/asset-cost", func(r chi.Router) {
		r.Get("/code/{code}", h.HandleFindByAssetCode)
		r.Get("/app-id/{id}", h.HandleFindByApplicationID)
		r.Post("/app-cost/apps", h.HandleFindAppCosts)
		r.Post("/app-cost/top-apps", h.HandleFindTopAppCosts)
		r.Post("/app-cost/apps/export", h.HandleExportAppCosts)
		r.Post("/amount/app-selector", h.HandleCombinedAmounts)
		r.Post("/stats/apps", h.HandleStatistics)
	})
}

func (h *Handler) HandleFindByAssetCode(w http.ResponseWriter, r *http.Request) {
	costs, err := h.service.FindByAssetCode(r.Context(), chi.URLParam(r, "code"))
	h.respond(w, r, costs, err)
}

func (h *Handler) HandleFindByApplicationID(w http.ResponseWriter, r *http.Request) {
	appID, err := httputil.PathInt64(r, "id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	costs, err := h.service.FindByApplicationID(r.Context(), appID)
	h.respond(w, r, costs, err)
}

func (h *Handler) HandleFindAppCosts(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.decodeScope(w, r)
	if !ok {
		return
	}
	costs, err := h.service.FindAppCostsForSelection(r.Context(), scope)
	h.respond(w, r, costs, err)
}

// HandleFindTopAppCosts handles POST /api/asset-cost/app-cost/top-apps?limit=n.
func (h *Handler) HandleFindTopAppCosts(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "limit must be an integer"))
			return
		}
		limit = n
	}
	scope, ok := h.decodeScope(w, r)
	if !ok {
		return
	}
	costs, err := h.service.FindTopAppCostsForSelection(r.Context(), scope, limit)
	h.respond(w, r, costs, err)
}

func (h *Handler) HandleCombinedAmounts(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.decodeScope(w, r)
	if !ok {
		return
	}
	amounts, err := h.service.CalculateCombinedAmountsForSelection(r.Context(), scope)
	h.respond(w, r, amounts, err)
}

// HandleStatistics answers with JSON null when there is no cost data.
func (h *Handler) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.decodeScope(w, r)
	if !ok {
		return
	}
	stats, err := h.service.CalculateStatistics(r.Context(), scope)
	h.respond(w, r, stats, err)
}

func (h *Handler) HandleExportAppCosts(w http.ResponseWriter, r *http.Request) {
	scope, ok := h.decodeScope(w, r)
	if !ok {
		return
	}
	// buffered so a failure can still become a JSON error
	var buf bytes.Buffer
	if err := h.service.ExportAppCosts(r.Context(), scope, &buf); err != nil {
		h.respond(w, r, nil, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="application-costs.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
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
		h.logger.WarnContext(ctx, "asset cost request failed",
			"request_id", requestcontext.RequestID(ctx),
			"path", r.URL.Path,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, v)
}
