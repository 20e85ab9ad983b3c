package bindingservice

import (
	"context"
	"doccatalog/internal/models"
)

type CatalogStore interface {
	FolderByID(id string) (*models.Folder, error)
	DocumentByID(id string) (*models.Document, error)
	DocumentsInFolder(folderID string) []models.Document
	Documents() []models.Document
	UpdateDocument(id string, fn func(d *models.Document)) (*models.Document, error)
}

type DocumentBackend interface {
	SetFolder(ctx context.Context, documentID string, folderID *string) error
}

type Cache interface {
	Del(ctx context.Context, keys ...string) error
}
