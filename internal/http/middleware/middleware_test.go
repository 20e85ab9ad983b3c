package middleware

import (
	"bytes"
	"context"
	"doccatalog/internal/models"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSessionStorer struct{ mock.Mock }

func (m *mockSessionStorer) UserByToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuth_PutsUserInContext(t *testing.T) {
	t.Parallel()

	user := &models.User{ID: "u1", Name: "Ann"}
	storer := new(mockSessionStorer)
	storer.On("UserByToken", mock.Anything, "abc").Return(user, nil)

	var got *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = models.UserFromContext(r.Context())
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders?token=abc", nil)

	Auth(slog.New(slog.NewTextHandler(io.Discard, nil)), storer)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Same(t, user, got)
}

func TestAuth_RejectsUnknownToken(t *testing.T) {
	t.Parallel()

	storer := new(mockSessionStorer)
	storer.On("UserByToken", mock.Anything, "").Return((*models.User)(nil), models.ErrInvalidCredentials)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/folders", nil)

	Auth(slog.New(slog.NewTextHandler(io.Discard, nil)), storer)(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short"))
	})

	t.Run("generates request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)

		Logger(log)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), `"status":418`)
		assert.Contains(t, buf.String(), `"bytes":5`)
	})

	t.Run("keeps caller request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
		req.Header.Set("X-Request-ID", "req-1")

		Logger(log)(next).ServeHTTP(w, req)

		require.Equal(t, "req-1", w.Header().Get("X-Request-ID"))
		assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	})
}

