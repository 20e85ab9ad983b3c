package folderservice

import (
	"context"
	"doccatalog/internal/models"
)

type FolderStore interface {
	Folders() []models.Folder
	FolderByID(id string) (*models.Folder, error)
	PutFolder(f models.Folder)
	RemoveFolder(id string) ([]string, error)
}

type FolderBackend interface {
	CreateFolder(ctx context.Context, f *models.Folder) error
	UpdateFolder(ctx context.Context, f *models.Folder) error
	DeleteFolder(ctx context.Context, id string) error
}

type Cache interface {
	Del(ctx context.Context, keys ...string) error
}
