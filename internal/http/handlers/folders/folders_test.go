package folders

import (
	"context"
	"doccatalog/internal/models"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFolderManager struct{ mock.Mock }

func (m *mockFolderManager) Create(ctx context.Context, requester *models.User, folder *models.Folder) (*models.Folder, error) {
	args := m.Called(ctx, requester, folder)
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *mockFolderManager) Update(ctx context.Context, id string, patch models.FolderPatch) (*models.Folder, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *mockFolderManager) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockFolderManager) FolderByID(ctx context.Context, id string) (*models.Folder, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*models.Folder), args.Error(1)
}

func (m *mockFolderManager) ListFolders(ctx context.Context) []models.Folder {
	args := m.Called(ctx)
	return args.Get(0).([]models.Folder)
}

type mockNavigator struct{ mock.Mock }

func (m *mockNavigator) AncestorsOf(ctx context.Context, id string) ([]models.Folder, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]models.Folder), args.Error(1)
}

func (m *mockNavigator) Breadcrumbs(ctx context.Context, id string) ([]models.Folder, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]models.Folder), args.Error(1)
}

func (m *mockNavigator) ChildrenOf(ctx context.Context, parentID *string) []models.Folder {
	args := m.Called(ctx, parentID)
	return args.Get(0).([]models.Folder)
}

func (m *mockNavigator) ValidReparentTargets(ctx context.Context, id string) ([]models.Folder, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]models.Folder), args.Error(1)
}

func (m *mockNavigator) CheckReparent(ctx context.Context, id string, parentID *string) error {
	args := m.Called(ctx, id, parentID)
	return args.Error(0)
}

type mockBinder struct{ mock.Mock }

func (m *mockBinder) InFolder(ctx context.Context, folderID string) ([]models.Document, error) {
	args := m.Called(ctx, folderID)
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *mockBinder) Counts(ctx context.Context, folderIDs []string) map[string]int {
	args := m.Called(ctx, folderIDs)
	return args.Get(0).(map[string]int)
}

func ptr(s string) *string { return &s }

func withUser(req *http.Request, u *models.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), models.UserContextKey, u))
}

func TestList(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)
	ctx := req.Context()

	fm := new(mockFolderManager)
	fm.On("ListFolders", ctx).Return([]models.Folder{{ID: "root", Name: "Root"}, {ID: "hr", Name: "HR", ParentID: ptr("root")}})
	db := new(mockBinder)
	db.On("Counts", ctx, []string{"root", "hr"}).Return(map[string]int{"root": 0, "hr": 2})

	List(ctx, slog.Default(), w, req, fm, db)

	assert.Equal(t, http.StatusOK, w.Code)

	var parsed struct {
		Data []struct {
			ID            string  `json:"id"`
			ParentID      *string `json:"parentId"`
			DocumentCount int     `json:"documentCount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	require.Len(t, parsed.Data, 2)
	assert.Nil(t, parsed.Data[0].ParentID)
	assert.Equal(t, 2, parsed.Data[1].DocumentCount)
}

func TestGetByID_NotFound(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders/ghost", nil)
	ctx := req.Context()

	fm := new(mockFolderManager)
	fm.On("FolderByID", ctx, "ghost").Return((*models.Folder)(nil), models.FolderNotFound("ghost"))

	GetByID(ctx, slog.Default(), w, req, "ghost", fm, nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByID_WithBreadcrumbs(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders/hr", nil)
	ctx := req.Context()

	hr := models.Folder{ID: "hr", Name: "HR", ParentID: ptr("root")}

	fm := new(mockFolderManager)
	fm.On("FolderByID", ctx, "hr").Return(&hr, nil)
	nav := new(mockNavigator)
	nav.On("Breadcrumbs", ctx, "hr").Return([]models.Folder{{ID: "root"}, hr}, nil)
	db := new(mockBinder)
	db.On("Counts", ctx, []string{"hr"}).Return(map[string]int{"hr": 3})

	GetByID(ctx, slog.Default(), w, req, "hr", fm, nav, db)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"documentCount":3`)
	assert.Contains(t, w.Body.String(), `"breadcrumbs":[{"id":"root"`)
}

func TestAncestors_Cycle(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders/a/ancestors", nil)
	ctx := req.Context()

	nav := new(mockNavigator)
	nav.On("AncestorsOf", ctx, "a").Return([]models.Folder(nil), &models.CycleDetectedError{FolderID: "a", Steps: 2})

	Ancestors(ctx, slog.Default(), w, req, "a", nav)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChildren_Root(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders/root/children", nil)
	ctx := req.Context()

	nav := new(mockNavigator)
	nav.On("ChildrenOf", ctx, (*string)(nil)).Return([]models.Folder{{ID: "root"}})

	Children(ctx, slog.Default(), w, req, RootID, nil, nav)

	assert.Equal(t, http.StatusOK, w.Code)
	nav.AssertExpectations(t)
}

func TestChildren_UnknownFolder(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders/ghost/children", nil)
	ctx := req.Context()

	fm := new(mockFolderManager)
	fm.On("FolderByID", ctx, "ghost").Return((*models.Folder)(nil), models.FolderNotFound("ghost"))

	Children(ctx, slog.Default(), w, req, "ghost", fm, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReparentTargets(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders/a/reparent-targets", nil)
	ctx := req.Context()

	nav := new(mockNavigator)
	nav.On("ValidReparentTargets", ctx, "a").Return([]models.Folder{{ID: "root"}, {ID: "other"}}, nil)

	ReparentTargets(ctx, slog.Default(), w, req, "a", nav)

	assert.Equal(t, http.StatusOK, w.Code)

	var parsed struct {
		Data []models.Folder `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	assert.Len(t, parsed.Data, 2)
}

func TestDocuments(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders/hr/documents", nil)
	ctx := req.Context()

	db := new(mockBinder)
	db.On("InFolder", ctx, "hr").Return([]models.Document{{ID: "d1", FolderID: ptr("hr")}}, nil)

	Documents(ctx, slog.Default(), w, req, "hr", db)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"folderId":"hr"`)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1", Name: "Admin"}
	w := httptest.NewRecorder()
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/folders", strings.NewReader(`{"name":"Legal","parentId":"root"}`)), user)
	ctx := req.Context()

	fm := new(mockFolderManager)
	fm.On("Create", ctx, user, mock.MatchedBy(func(f *models.Folder) bool {
		return f.Name == "Legal" && f.ParentID != nil && *f.ParentID == "root"
	})).Return(&models.Folder{ID: "new", Name: "Legal", ParentID: ptr("root")}, nil)

	Create(ctx, slog.Default(), w, req, fm)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"new"`)
}

func TestCreate_Errors(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1"}

	t.Run("no user", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/folders", strings.NewReader(`{}`))

		Create(req.Context(), slog.Default(), w, req, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("bad json", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := withUser(httptest.NewRequest(http.MethodPost, "/api/folders", strings.NewReader(`{`)), user)

		Create(req.Context(), slog.Default(), w, req, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("self parent", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := withUser(httptest.NewRequest(http.MethodPost, "/api/folders", strings.NewReader(`{"id":"x","name":"x","parentId":"x"}`)), user)
		ctx := req.Context()

		fm := new(mockFolderManager)
		fm.On("Create", ctx, user, mock.Anything).Return((*models.Folder)(nil), models.NewValidationError("folder %q cannot be its own parent", "x"))

		Create(ctx, slog.Default(), w, req, fm)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdate_ChecksNewParent(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/folders/A", strings.NewReader(`{"parentId":"B"}`))
	ctx := req.Context()

	nav := new(mockNavigator)
	nav.On("CheckReparent", ctx, "A", ptr("B")).Return(models.NewValidationError("folder %q cannot move under %q", "A", "B"))
	fm := new(mockFolderManager)

	Update(ctx, slog.Default(), w, req, "A", fm, nav)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fm.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_NullParentMovesToTop(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/folders/B", strings.NewReader(`{"parentId":null}`))
	ctx := req.Context()

	nav := new(mockNavigator)
	nav.On("CheckReparent", ctx, "B", (*string)(nil)).Return(nil)
	fm := new(mockFolderManager)
	fm.On("Update", ctx, "B", models.FolderPatch{ParentID: models.OptionalString{Present: true}}).
		Return(&models.Folder{ID: "B"}, nil)

	Update(ctx, slog.Default(), w, req, "B", fm, nav)

	assert.Equal(t, http.StatusOK, w.Code)
	fm.AssertExpectations(t)
}

func TestUpdate_RenameSkipsParentCheck(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/folders/B", strings.NewReader(`{"name":"Bee"}`))
	ctx := req.Context()

	nav := new(mockNavigator)
	fm := new(mockFolderManager)
	fm.On("Update", ctx, "B", mock.Anything).Return(&models.Folder{ID: "B", Name: "Bee"}, nil)

	Update(ctx, slog.Default(), w, req, "B", fm, nav)

	assert.Equal(t, http.StatusOK, w.Code)
	nav.AssertNotCalled(t, "CheckReparent", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/folders/hr", nil)
	ctx := req.Context()

	fm := new(mockFolderManager)
	fm.On("Delete", ctx, "hr").Return(nil).Once()
	fm.On("Delete", ctx, "hr").Return(models.FolderNotFound("hr"))

	Delete(ctx, slog.Default(), w, req, "hr", fm)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"hr":true}}`, w.Body.String())

	w = httptest.NewRecorder()
	Delete(ctx, slog.Default(), w, req, "hr", fm)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
