package catalog

import (
	"context"
	"doccatalog/internal/models"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockQuerier struct{ mock.Mock }

func (m *mockQuerier) Query(ctx context.Context, q models.CatalogQuery) models.CatalogResult {
	args := m.Called(ctx, q)
	return args.Get(0).(models.CatalogResult)
}

func (m *mockQuerier) Count(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

type mockRefresher struct{ mock.Mock }

func (m *mockRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestGet_PassesQueryAndEncodesResult(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/catalog?page=2&perPage=1&sortBy=size&order=asc&tags=Draft,Urgent", nil)
	ctx := req.Context()

	result := models.CatalogResult{
		Documents:  []models.Document{{ID: "d2", Name: "b.pdf", Tags: []string{"Draft"}}},
		Pagination: models.Pagination{TotalDocuments: 3, TotalPages: 3, CurrentPage: 2, PerPage: 1, HasNext: true, HasPrev: true},
		Sort:       models.Sort{SortBy: "size", Order: models.OrderAsc},
	}

	querier := new(mockQuerier)
	querier.On("Query", ctx, mock.MatchedBy(func(q models.CatalogQuery) bool {
		return q.Page == 2 && q.PerPage == 1 && q.SortBy == "size" && q.Order == models.OrderAsc &&
			len(q.Filters.Tags) == 2
	})).Return(result)

	Get(ctx, slog.Default(), w, req, querier)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed struct {
		Data models.CatalogResult `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	assert.Equal(t, "d2", parsed.Data.Documents[0].ID)
	assert.True(t, parsed.Data.Pagination.HasNext)
	assert.Equal(t, models.Sort{SortBy: "size", Order: models.OrderAsc}, parsed.Data.Sort)

	querier.AssertExpectations(t)
}

func TestHead(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/api/catalog", nil)

	querier := new(mockQuerier)
	querier.On("Count", req.Context()).Return(42)

	Head(req.Context(), slog.Default(), w, req, querier)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Header().Get("X-Documents-Count"))
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/refresh", nil)
	ctx := req.Context()

	refresher := new(mockRefresher)
	refresher.On("Refresh", ctx).Return(nil)
	querier := new(mockQuerier)
	querier.On("Count", ctx).Return(7)

	Refresh(ctx, slog.Default(), w, req, refresher, querier)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"totalDocuments":7}}`, w.Body.String())
}

func TestRefresh_BackendDown(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/catalog/refresh", nil)
	ctx := req.Context()

	refresher := new(mockRefresher)
	refresher.On("Refresh", ctx).Return(errors.New("connection refused"))

	Refresh(ctx, slog.Default(), w, req, refresher, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
