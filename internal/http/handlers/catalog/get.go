package catalog

import (
	"context"
	"doccatalog/internal/dto"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
)

func Get(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, cq CatalogQuerier) {
	op := pkg + "Get"

	log = log.With(slog.String("op", op))

	q := dto.CatalogQuery(r.URL.Query())

	res := cq.Query(ctx, q)

	response := map[string]any{
		"data": res,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}

func Head(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, cq CatalogQuerier) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Documents-Count", strconv.Itoa(cq.Count(ctx)))
	w.WriteHeader(http.StatusOK)
}
