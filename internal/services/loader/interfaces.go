package loaderservice

import (
	"context"
	"doccatalog/internal/models"
)

type FolderSource interface {
	Folders(ctx context.Context) ([]models.Folder, error)
}

type DocumentSource interface {
	Documents(ctx context.Context) ([]models.Document, error)
}

type ActivitySource interface {
	Activities(ctx context.Context) ([]models.Activity, error)
}

type Snapshots interface {
	Documents(ctx context.Context) ([]models.Document, bool, error)
	SaveDocuments(ctx context.Context, docs []models.Document) error
	Folders(ctx context.Context) ([]models.Folder, bool, error)
	SaveFolders(ctx context.Context, folders []models.Folder) error
	Del(ctx context.Context, keys ...string) error
}

type Store interface {
	Load(folders []models.Folder, docs []models.Document)
	LoadActivities(activities []models.Activity)
}
