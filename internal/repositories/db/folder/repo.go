package folderrepo

import (
	"context"
	"database/sql"
	"doccatalog/internal/entities"
	"doccatalog/internal/models"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "folderRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) Folders(ctx context.Context) ([]models.Folder, error) {
	op := pkg + "Folders"

	rawFolders := make([]entities.Department, 0)

	err := r.db.SelectContext(ctx, &rawFolders,
		`SELECT
			d.id AS id,
			d.name AS name,
			d.description AS description,
			d.created_at AS created_at,
			d.created_by_id AS created_by_id,
			d.created_by_name AS created_by_name,
			d.parent_id AS parent_id
		FROM departments d
		ORDER BY d.created_at ASC, d.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	folders := make([]models.Folder, 0, len(rawFolders))
	for _, raw := range rawFolders {
		folders = append(folders, models.Folder{
			ID:          raw.ID,
			Name:        raw.Name,
			Description: raw.Description,
			CreatedDate: raw.CreatedAt,
			CreatedBy:   models.Actor{ID: raw.CreatedByID, Name: raw.CreatedByName},
			ParentID:    raw.ParentID,
		})
	}

	return folders, nil
}

func (r *repository) CreateFolder(ctx context.Context, f *models.Folder) error {
	op := pkg + "CreateFolder"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO departments (id, name, description, created_at, created_by_id, created_by_name, parent_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.Name, f.Description, f.CreatedDate, f.CreatedBy.ID, f.CreatedBy.Name, f.ParentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) UpdateFolder(ctx context.Context, f *models.Folder) error {
	op := pkg + "UpdateFolder"

	res, err := r.db.ExecContext(ctx,
		`UPDATE departments SET name = $2, description = $3, parent_id = $4 WHERE id = $1`,
		f.ID, f.Name, f.Description, f.ParentID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := expectAffected(res, f.ID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteFolder removes the department and unbinds its documents in one
// transaction. Child departments are left pointing at the removed id.
func (r *repository) DeleteFolder(ctx context.Context, id string) error {
	op := pkg + "DeleteFolder"

	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`UPDATE documents SET department_id = NULL WHERE department_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := expectAffected(res, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = tx.Commit()
	if err != nil {
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
		return models.FolderNotFound(id)
	}
	return nil
}
