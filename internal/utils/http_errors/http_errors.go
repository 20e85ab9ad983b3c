package utils

import (
	"doccatalog/internal/models"
	"encoding/json"
	"errors"
	"net/http"
)

func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": msg,
	})
}

// WriteError picks the status from the error chain. Domain errors carry
// their own status; anything unknown is a 500 with a generic message.
func WriteError(w http.ResponseWriter, err error) {
	var httpErr models.HTTPError
	if errors.As(err, &httpErr) {
		WriteJSONError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrForbidden):
		WriteJSONError(w, http.StatusForbidden, models.ErrForbidden.Error())
	case errors.Is(err, models.ErrInvalidParams):
		WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidParams.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
	}
}
