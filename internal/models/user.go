package models

import "context"

type ctxKey string

const UserContextKey ctxKey = "user"

// User is the requester resolved from a session token. Sessions are issued by
// the external auth service and stored in the shared cache.
type User struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name"`
}

func (u *User) Actor() Actor {
	if u == nil {
		return Actor{}
	}

	name := u.Name
	if name == "" {
		name = u.Login
	}

	return Actor{ID: u.ID, Name: name}
}

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(UserContextKey).(*User)
	return u, ok && u != nil
}
