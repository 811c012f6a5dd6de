package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscape/internal/application/models"
	"landscape/internal/selector"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
	"landscape/pkg/testutil"
)

type fakeService struct {
	scope selector.SelectionScope
}

func (f *fakeService) GetByID(_ context.Context, appID int64) (*models.Application, error) {
	if appID == 404 {
		return nil, dErrors.New(dErrors.CodeNotFound, "missing")
	}
	return &models.Application{ID: appID, Name: "Alpha"}, nil
}

func (f *fakeService) FindBySelector(_ context.Context, scope selector.SelectionScope) ([]models.Application, error) {
	f.scope = scope
	return []models.Application{{ID: 1, Name: "Alpha"}}, nil
}

func setup() (*fakeService, chi.Router) {
	svc := &fakeService{}
	r := chi.NewRouter()
	New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return svc, r
}

func TestHandleGetByID(t *testing.T) {
	_, r := setup()

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/app/id/7"))
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "name", "Alpha")

	rr = testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/app/id/404"))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestHandleFindBySelector(t *testing.T) {
	svc, r := setup()

	body := `{"entity_reference": {"kind": "ORG_UNIT", "id": 3}, "scope": "CHILDREN"}`
	rr := testutil.DoRequest(r, testutil.NewRequestWithBody(t, http.MethodPost, "/api/app/selector", body))
	testutil.AssertStatusOK(t, rr)
	assert.Equal(t, selector.SelectionScope{Root: id.MkRef(id.KindOrgUnit, 3), Breadth: selector.ScopeChildren}, svc.scope)
	apps := testutil.UnmarshalResponse[[]models.Application](t, rr)
	require.Len(t, *apps, 1)

	bad := `{"entity_reference": {"kind": "ORG_UNIT", "id": 3}, "scope": "SIDEWAYS"}`
	rr = testutil.DoRequest(r, testutil.NewRequestWithBody(t, http.MethodPost, "/api/app/selector", bad))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
}
