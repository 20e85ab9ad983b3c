package catalog

import (
	"context"
	"doccatalog/internal/models"
)

const pkg = "catalogHandler/"

type CatalogQuerier interface {
	Query(ctx context.Context, q models.CatalogQuery) models.CatalogResult
	Count(ctx context.Context) int
}

type Refresher interface {
	Refresh(ctx context.Context) error
}
