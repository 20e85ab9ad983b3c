package utils

import (
	"doccatalog/internal/models"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{name: "not found", err: fmt.Errorf("op: %w", models.FolderNotFound("x")), status: http.StatusNotFound, msg: `folder "x" not found`},
		{name: "validation", err: models.NewValidationError("bad"), status: http.StatusBadRequest, msg: "bad"},
		{name: "cycle", err: &models.CycleDetectedError{FolderID: "a", Steps: 3}, status: http.StatusConflict},
		{name: "credentials", err: models.ErrInvalidCredentials, status: http.StatusForbidden, msg: models.ErrForbidden.Error()},
		{name: "internal", err: fmt.Errorf("op: %w", models.ErrInternal), status: http.StatusInternalServerError, msg: models.ErrInternal.Error()},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, msg: models.ErrInternal.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.msg != "" {
				assert.Equal(t, tt.msg, body["error"])
			} else {
				assert.NotEmpty(t, body["error"])
			}
		})
	}
}
