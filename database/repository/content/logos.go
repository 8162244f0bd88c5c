// File: database/repository/content/logos.go
package contentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

func (r *pgContentRepo) CreateLogo(ctx context.Context, logo *models.ClientLogo) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if logo.ID == "" {
		logo.ID = uuid.New().String()
	}

	query := `
		INSERT INTO client_logos (id, name, image_url, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		logo.ID,
		logo.Name,
		logo.ImageURL,
		logo.DisplayOrder,
	).Scan(&logo.CreatedAt)
	if err != nil {
		return fmt.Errorf("create client logo: %w", err)
	}

	return nil
}

func (r *pgContentRepo) ListLogos(ctx context.Context) ([]models.ClientLogo, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		SELECT id, name, image_url, display_order, created_at
		FROM client_logos
		ORDER BY display_order, created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list client logos: %w", err)
	}
	defer rows.Close()

	var logos []models.ClientLogo
	for rows.Next() {
		var l models.ClientLogo
		if err := rows.Scan(&l.ID, &l.Name, &l.ImageURL, &l.DisplayOrder, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client logo: %w", err)
		}
		logos = append(logos, l)
	}

	return logos, rows.Err()
}

func (r *pgContentRepo) DeleteLogo(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM client_logos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client logo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
