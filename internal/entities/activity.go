package entities

import "time"

type Activity struct {
	ID         string    `db:"id"`
	DocumentID string    `db:"document_id"`
	UserID     string    `db:"user_id"`
	UserName   string    `db:"user_name"`
	Action     string    `db:"action"`
	CreatedAt  time.Time `db:"created_at"`
}
