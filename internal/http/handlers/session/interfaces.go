package session

import "context"

const pkg = "sessionHandler/"

type SessionDeleter interface {
	Logout(ctx context.Context, token string) error
}
