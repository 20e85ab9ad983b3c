package documentservice

import (
	"context"
	"doccatalog/internal/models"
)

type CatalogStore interface {
	DocumentByID(id string) (*models.Document, error)
	UpdateDocument(id string, fn func(d *models.Document)) (*models.Document, error)
	RemoveDocument(id string) error
	AppendActivity(a models.Activity)
	ActivitiesFor(documentID string) []models.Activity
}

type DocumentRepository interface {
	UpdateDocument(ctx context.Context, doc *models.Document) error
	SetFavorite(ctx context.Context, id string, favorited bool) error
	Delete(ctx context.Context, id string) error
}

type ActivityRepository interface {
	CreateActivity(ctx context.Context, a *models.Activity) error
}

type Cache interface {
	Del(ctx context.Context, keys ...string) error
}
