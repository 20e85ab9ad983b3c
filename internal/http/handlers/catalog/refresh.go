package catalog

import (
	"context"
	utils "doccatalog/internal/utils/http_errors"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Refresh reloads the collection from the backend.
func Refresh(ctx context.Context, log *slog.Logger, w http.ResponseWriter, r *http.Request, rf Refresher, cq CatalogQuerier) {
	op := pkg + "Refresh"

	log = log.With(slog.String("op", op))

	if err := rf.Refresh(ctx); err != nil {
		log.Error("failed to refresh catalog", slog.String("error", err.Error()))
		utils.WriteJSONError(w, http.StatusBadGateway, "failed to load documents")
		return
	}

	response := map[string]any{
		"data": map[string]any{
			"totalDocuments": cq.Count(ctx),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
