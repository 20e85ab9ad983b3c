package activityrepo

import (
	"context"
	"doccatalog/internal/entities"
	"doccatalog/internal/models"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const pkg = "activityRepo/"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *repository {
	return &repository{db: db}
}

func (r *repository) CreateActivity(ctx context.Context, a *models.Activity) error {
	op := pkg + "CreateActivity"

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activities (id, document_id, user_id, user_name, action, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.DocumentID, a.UserID, a.UserName, string(a.Action), a.Timestamp)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Activities returns the whole log in append order.
func (r *repository) Activities(ctx context.Context) ([]models.Activity, error) {
	op := pkg + "Activities"

	rawActivities := make([]entities.Activity, 0)

	err := r.db.SelectContext(ctx, &rawActivities,
		`SELECT
			a.id AS id,
			a.document_id AS document_id,
			a.user_id AS user_id,
			a.user_name AS user_name,
			a.action AS action,
			a.created_at AS created_at
		FROM activities a
		ORDER BY a.seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	activities := make([]models.Activity, 0, len(rawActivities))
	for _, raw := range rawActivities {
		activities = append(activities, models.Activity{
			ID:         raw.ID,
			DocumentID: raw.DocumentID,
			UserID:     raw.UserID,
			UserName:   raw.UserName,
			Action:     models.Action(raw.Action),
			Timestamp:  raw.CreatedAt,
		})
	}

	return activities, nil
}
