package sessionservice

import "context"

type SessionStorer interface {
	UserByToken(ctx context.Context, token string) (string, error)
	DeleteSession(ctx context.Context, token string) error
}
