package entities

import (
	"time"

	"github.com/lib/pq"
)

type Document struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Description  string         `db:"description"`
	Type         string         `db:"type"`
	Size         int64          `db:"size"`
	UploadedAt   time.Time      `db:"uploaded_at"`
	UploaderID   string         `db:"uploader_id"`
	UploaderName string         `db:"uploader_name"`
	Tags         pq.StringArray `db:"tags"`
	Category     string         `db:"category"`
	Privacy      string         `db:"privacy"`
	DepartmentID *string        `db:"department_id"`
	Favorited    bool           `db:"favorited"`
	URL          string         `db:"url"`
}
