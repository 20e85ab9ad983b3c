package docs

import (
	"context"
	"doccatalog/internal/models"
	"encoding/json"
	"log/slog"
	"net/http"
)

const pkg = "docsHandler/"

type DocumentService interface {
	DocumentByID(ctx context.Context, docID string, requester *models.User) (*models.Document, error)
	UpdateDocument(ctx context.Context, docID string, patch models.DocumentPatch, requester *models.User) (*models.Document, error)
	DeleteDocument(ctx context.Context, docID string, requester *models.User) error
	ToggleFavorite(ctx context.Context, docID string) (*models.Document, error)
	RecordDownload(ctx context.Context, docID string, requester *models.User) (string, error)
	LogActivity(ctx context.Context, docID string, action models.Action, requester *models.User) (*models.Activity, error)
	Activities(ctx context.Context, docID string) []models.Activity
}

type DocumentMover interface {
	Move(ctx context.Context, documentID string, folderID *string) (*models.Document, error)
}

func respond(w http.ResponseWriter, log *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"data": data}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
