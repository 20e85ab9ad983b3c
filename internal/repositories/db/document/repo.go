package documentrepo

import (
	"context"
	"database/sql"
	"doccatalog/internal/entities"
	"doccatalog/internal/models"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pkg = "documentRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

// Documents returns the whole collection. The backend has no filtering or
// paging; the catalog does that in memory.
func (r *repository) Documents(ctx context.Context) ([]models.Document, error) {
	op := pkg + "Documents"

	rawDocs := make([]entities.Document, 0)

	err := r.db.SelectContext(ctx, &rawDocs,
		`SELECT
			d.id AS id,
			d.name AS name,
			d.description AS description,
			d.type AS type,
			d.size AS size,
			d.uploaded_at AS uploaded_at,
			d.uploader_id AS uploader_id,
			d.uploader_name AS uploader_name,
			d.tags AS tags,
			d.category AS category,
			d.privacy AS privacy,
			d.department_id AS department_id,
			d.favorited AS favorited,
			d.url AS url
		FROM documents d
		ORDER BY d.uploaded_at ASC, d.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	docs := make([]models.Document, 0, len(rawDocs))
	for _, raw := range rawDocs {
		tags := []string(raw.Tags)
		if tags == nil {
			tags = []string{}
		}

		docs = append(docs, models.Document{
			ID:          raw.ID,
			Name:        raw.Name,
			Description: raw.Description,
			Type:        raw.Type,
			Size:        raw.Size,
			UploadDate:  raw.UploadedAt,
			Uploader:    models.Actor{ID: raw.UploaderID, Name: raw.UploaderName},
			Tags:        tags,
			Category:    raw.Category,
			Privacy:     raw.Privacy,
			FolderID:    raw.DepartmentID,
			Favorited:   raw.Favorited,
			URL:         raw.URL,
		})
	}

	return docs, nil
}

func (r *repository) UpdateDocument(ctx context.Context, doc *models.Document) error {
	op := pkg + "UpdateDocument"

	res, err := r.db.ExecContext(ctx,
		`UPDATE documents SET name = $2, description = $3, category = $4, privacy = $5, tags = $6 WHERE id = $1`,
		doc.ID, doc.Name, doc.Description, doc.Category, doc.Privacy, pq.Array(doc.Tags))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := expectAffected(res, doc.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) SetFavorite(ctx context.Context, id string, favorited bool) error {
	op := pkg + "SetFavorite"

	res, err := r.db.ExecContext(ctx,
		`UPDATE documents SET favorited = $2 WHERE id = $1`,
		id, favorited)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := expectAffected(res, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetFolder binds a document to a department. A nil folderID unfiles it.
func (r *repository) SetFolder(ctx context.Context, id string, folderID *string) error {
	op := pkg + "SetFolder"

	res, err := r.db.ExecContext(ctx,
		`UPDATE documents SET department_id = $2 WHERE id = $1`,
		id, folderID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := expectAffected(res, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Delete removes the document row. Activity rows are not touched.
func (r *repository) Delete(ctx context.Context, id string) error {
	op := pkg + "Delete"

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM documents WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := expectAffected(res, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func expectAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.DocumentNotFound(id)
	}
	return nil
}
