package middleware

import (
	"context"
	"doccatalog/internal/models"
	utils "doccatalog/internal/utils/http_errors"
	"log/slog"
	"net/http"
)

// Auth resolves ?token= to a user and stores it in the request context.
func Auth(log *slog.Logger, storer SessionStorer) func(http.Handler) http.Handler {
	log = log.With(slog.String("op", pkg+"Auth"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.URL.Query().Get("token")

			requester, err := storer.UserByToken(r.Context(), token)
			if err != nil {
				log.Warn("failed get user by token", slog.String("error", err.Error()))
				utils.WriteJSONError(w, http.StatusForbidden, "token is invalid")
				return
			}

			ctx := context.WithValue(r.Context(), models.UserContextKey, requester)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
