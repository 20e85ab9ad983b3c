package app

import (
	"context"
	"doccatalog/internal/cache/redis"
	"doccatalog/internal/config"
	"doccatalog/internal/dbs/postgres"
	"doccatalog/internal/http/server"
	cachecollectionrepo "doccatalog/internal/repositories/cache/collection"
	cachesessionrepo "doccatalog/internal/repositories/cache/session"
	activityrepo "doccatalog/internal/repositories/db/activity"
	documentrepo "doccatalog/internal/repositories/db/document"
	folderrepo "doccatalog/internal/repositories/db/folder"
	catalogstore "doccatalog/internal/repositories/memory/catalog"
	bindingservice "doccatalog/internal/services/binding"
	catalogservice "doccatalog/internal/services/catalog"
	documentservice "doccatalog/internal/services/document"
	folderservice "doccatalog/internal/services/folder"
	loaderservice "doccatalog/internal/services/loader"
	navigatorservice "doccatalog/internal/services/navigator"
	sessionservice "doccatalog/internal/services/session"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

type App struct {
	Services server.Services
	Loader   *loaderservice.LoaderService

	db    *sqlx.DB
	cache *redis.Client
}

// NewApp connects to Postgres and Redis, wires every service around one
// shared store and fills it before returning.
func NewApp(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	db, err := postgres.New(ctx, postgres.Config{
		Addr:     cfg.DB.Addr,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DB:       cfg.DB.DB})
	if err != nil {
		log.Error("failed connect to db", "err", err)
		return nil, fmt.Errorf("failed connect to db: %w", err)
	}

	cache, err := redis.New(ctx, redis.Config{
		Addr:      cfg.Cache.Addr,
		Password:  cfg.Cache.Password,
		DB:        cfg.Cache.DB,
		KeyPrefix: cfg.Cache.KeyPrefix,
	})
	if err != nil {
		_ = db.Close()
		log.Error("failed connect to cache", "err", err)
		return nil, fmt.Errorf("failed connect to cache: %w", err)
	}

	folderRepo := folderrepo.NewRepository(db)
	docRepo := documentrepo.NewRepository(db)
	activityRepo := activityrepo.NewRepository(db)

	sessionCacheRepo := cachesessionrepo.New(cache)
	collectionCacheRepo := cachecollectionrepo.New(cache, cfg.Cache.CollectionTTL)

	store := catalogstore.New()

	loader := loaderservice.New(log, store, folderRepo, docRepo, activityRepo, collectionCacheRepo)

	a := &App{
		Loader: loader,
		db:     db,
		cache:  cache,
	}

	if err := loader.Load(ctx); err != nil {
		log.Error("failed to load catalog", "err", err)
		return nil, errors.Join(fmt.Errorf("failed to load catalog: %w", err), a.Close())
	}

	catalogService := catalogservice.New(log, store, catalogservice.Limits{
		DefaultPerPage: cfg.Catalog.DefaultPerPage,
		MaxPerPage:     cfg.Catalog.MaxPerPage,
	})

	a.Services = server.Services{
		Folders:   folderservice.New(log, store, folderRepo, collectionCacheRepo),
		Navigator: navigatorservice.New(log, store),
		Binding:   bindingservice.New(log, store, docRepo, collectionCacheRepo),
		Catalog:   catalogService,
		Refresher: loader,
		Documents: documentservice.New(log, store, docRepo, activityRepo, collectionCacheRepo),
		Sessions:  sessionservice.New(log, sessionCacheRepo),
	}

	return a, nil
}

func (a *App) Close() error {
	return errors.Join(a.cache.Close(), a.db.Close())
}
