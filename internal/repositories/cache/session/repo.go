// Package cachesessionrepo reads sessions that the auth service writes to the
// shared cache as "session:<token>" -> user JSON.
package cachesessionrepo

import (
	"context"
	"doccatalog/internal/models"
	cacherepo "doccatalog/internal/repositories/cache"
)

const keyPrefix = "session:"

type repository struct {
	cache cacherepo.Cache
}

func New(cache cacherepo.Cache) *repository {
	return &repository{
		cache: cache,
	}
}

func (r *repository) UserByToken(ctx context.Context, token string) (string, error) {
	userJSON, err := r.cache.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		return "", err
	}

	if userJSON == "" {
		return "", models.ErrSessionNotFound
	}

	return userJSON, nil
}

func (r *repository) DeleteSession(ctx context.Context, token string) error {
	n, err := r.cache.Del(ctx, keyPrefix+token).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return models.ErrSessionNotFound
	}

	return nil
}
