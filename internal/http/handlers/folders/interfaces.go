package folders

import (
	"context"
	"doccatalog/internal/models"
	"encoding/json"
	"log/slog"
	"net/http"
)

const pkg = "foldersHandler/"

type FolderManager interface {
	Create(ctx context.Context, requester *models.User, folder *models.Folder) (*models.Folder, error)
	Update(ctx context.Context, id string, patch models.FolderPatch) (*models.Folder, error)
	Delete(ctx context.Context, id string) error
	FolderByID(ctx context.Context, id string) (*models.Folder, error)
	ListFolders(ctx context.Context) []models.Folder
}

type Navigator interface {
	AncestorsOf(ctx context.Context, id string) ([]models.Folder, error)
	Breadcrumbs(ctx context.Context, id string) ([]models.Folder, error)
	ChildrenOf(ctx context.Context, parentID *string) []models.Folder
	ValidReparentTargets(ctx context.Context, id string) ([]models.Folder, error)
	CheckReparent(ctx context.Context, id string, parentID *string) error
}

type DocumentBinder interface {
	InFolder(ctx context.Context, folderID string) ([]models.Document, error)
	Counts(ctx context.Context, folderIDs []string) map[string]int
}

func respond(w http.ResponseWriter, log *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]any{"data": data}); err != nil {
		log.Error("failed to write response", slog.String("error", err.Error()))
	}
}
