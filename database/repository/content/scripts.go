// File: database/repository/content/scripts.go
package contentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

const scriptColumns = `id, name, snippet, placement, enabled, created_at, updated_at`

func (r *pgContentRepo) CreateScript(ctx context.Context, script *models.TrackingScript) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if script.ID == "" {
		script.ID = uuid.New().String()
	}
	if script.Placement == "" {
		script.Placement = models.PlacementHead
	}

	query := `
		INSERT INTO tracking_scripts (id, name, snippet, placement, enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		script.ID,
		script.Name,
		script.Snippet,
		script.Placement,
		script.Enabled,
	).Scan(&script.CreatedAt, &script.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create tracking script: %w", err)
	}

	return nil
}

func (r *pgContentRepo) ListScripts(ctx context.Context, enabledOnly bool) ([]models.TrackingScript, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT ` + scriptColumns + `
		FROM tracking_scripts
		WHERE ($1 = false OR enabled = true)
		ORDER BY created_at
	`

	rows, err := r.pool.Query(ctx, query, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("list tracking scripts: %w", err)
	}
	defer rows.Close()

	var scripts []models.TrackingScript
	for rows.Next() {
		var s models.TrackingScript
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Snippet,
			&s.Placement,
			&s.Enabled,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tracking script: %w", err)
		}
		scripts = append(scripts, s)
	}

	return scripts, rows.Err()
}

func (r *pgContentRepo) UpdateScript(ctx context.Context, script *models.TrackingScript) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		UPDATE tracking_scripts
		SET name = $2, snippet = $3, placement = $4, enabled = $5, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(
		ctx, query,
		script.ID,
		script.Name,
		script.Snippet,
		script.Placement,
		script.Enabled,
	)
	if err != nil {
		return fmt.Errorf("update tracking script: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgContentRepo) DeleteScript(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM tracking_scripts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tracking script: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
