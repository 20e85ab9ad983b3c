// Package cachecollectionrepo stores JSON snapshots of the folder and document
// collections so a restart does not have to hit the backend.
package cachecollectionrepo

import (
	"context"
	"doccatalog/internal/models"
	cacherepo "doccatalog/internal/repositories/cache"
	"encoding/json"
	"fmt"
	"time"
)

const pkg = "cacheCollectionRepo/"

type repository struct {
	cache         cacherepo.Cache
	collectionTTL time.Duration
}

func New(cache cacherepo.Cache, collectionTTL time.Duration) *repository {
	return &repository{
		cache:         cache,
		collectionTTL: collectionTTL,
	}
}

// Documents returns the cached collection. ok is false on a cache miss.
func (r *repository) Documents(ctx context.Context) ([]models.Document, bool, error) {
	var docs []models.Document
	ok, err := r.load(ctx, models.DocumentsSnapshotKey, &docs)
	return docs, ok, err
}

func (r *repository) SaveDocuments(ctx context.Context, docs []models.Document) error {
	return r.save(ctx, models.DocumentsSnapshotKey, docs)
}

func (r *repository) Folders(ctx context.Context) ([]models.Folder, bool, error) {
	var folders []models.Folder
	ok, err := r.load(ctx, models.FoldersSnapshotKey, &folders)
	return folders, ok, err
}

func (r *repository) SaveFolders(ctx context.Context, folders []models.Folder) error {
	return r.save(ctx, models.FoldersSnapshotKey, folders)
}

func (r *repository) Del(ctx context.Context, keys ...string) error {
	return r.cache.Del(ctx, keys...).Err()
}

func (r *repository) load(ctx context.Context, key string, dst any) (bool, error) {
	op := pkg + "load"

	raw, err := r.cache.Get(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("%s: %s: %w", op, key, err)
	}

	return true, nil
}

func (r *repository) save(ctx context.Context, key string, value any) error {
	op := pkg + "save"

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.cache.Set(ctx, key, string(raw), r.collectionTTL).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
