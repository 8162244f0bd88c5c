// File: database/repository/content/seo.go
package contentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

const seoColumns = `id, page_path, title, description, keywords, canonical, og_image, updated_at`

// UpsertSeoSetting creates or replaces the SEO record for a page path.
// The dashboard edits settings keyed by path, so upsert is the natural op.
func (r *pgContentRepo) UpsertSeoSetting(ctx context.Context, setting *models.SeoSetting) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if setting.ID == "" {
		setting.ID = uuid.New().String()
	}

	query := `
		INSERT INTO seo_settings (id, page_path, title, description, keywords, canonical, og_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (page_path) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    keywords = EXCLUDED.keywords,
		    canonical = EXCLUDED.canonical,
		    og_image = EXCLUDED.og_image,
		    updated_at = now()
		RETURNING id, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		setting.ID,
		setting.PagePath,
		setting.Title,
		setting.Description,
		setting.Keywords,
		setting.Canonical,
		setting.OGImage,
	).Scan(&setting.ID, &setting.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert seo setting: %w", err)
	}

	return nil
}

func (r *pgContentRepo) GetSeoSetting(ctx context.Context, pagePath string) (*models.SeoSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `SELECT ` + seoColumns + ` FROM seo_settings WHERE page_path = $1`

	var s models.SeoSetting
	err := r.pool.QueryRow(ctx, query, pagePath).Scan(
		&s.ID,
		&s.PagePath,
		&s.Title,
		&s.Description,
		&s.Keywords,
		&s.Canonical,
		&s.OGImage,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get seo setting: %w", err)
	}

	return &s, nil
}

func (r *pgContentRepo) ListSeoSettings(ctx context.Context) ([]models.SeoSetting, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT `+seoColumns+` FROM seo_settings ORDER BY page_path`)
	if err != nil {
		return nil, fmt.Errorf("list seo settings: %w", err)
	}
	defer rows.Close()

	var settings []models.SeoSetting
	for rows.Next() {
		var s models.SeoSetting
		err := rows.Scan(
			&s.ID,
			&s.PagePath,
			&s.Title,
			&s.Description,
			&s.Keywords,
			&s.Canonical,
			&s.OGImage,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan seo setting: %w", err)
		}
		settings = append(settings, s)
	}

	return settings, rows.Err()
}

func (r *pgContentRepo) DeleteSeoSetting(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM seo_settings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete seo setting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
