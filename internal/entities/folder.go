package entities

import "time"

type Department struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
	CreatedByID   string    `db:"created_by_id"`
	CreatedByName string    `db:"created_by_name"`
	ParentID      *string   `db:"parent_id"`
}
