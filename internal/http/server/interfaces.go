package server

import (
	"context"
	"doccatalog/internal/http/handlers/catalog"
	"doccatalog/internal/http/handlers/docs"
	"doccatalog/internal/http/handlers/folders"
	"doccatalog/internal/models"
)

type SessionService interface {
	UserByToken(ctx context.Context, token string) (*models.User, error)
	Logout(ctx context.Context, token string) error
}

type BindingService interface {
	folders.DocumentBinder
	docs.DocumentMover
}

// Services groups what the router dispatches to.
type Services struct {
	Folders   folders.FolderManager
	Navigator folders.Navigator
	Binding   BindingService
	Catalog   catalog.CatalogQuerier
	Refresher catalog.Refresher
	Documents docs.DocumentService
	Sessions  SessionService
}
