// File: database/repository/content/posts.go
package contentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

const uniqueViolation = "23505"

const postColumns = `id, slug, title, excerpt, body, cover_image, published, created_at, updated_at`

func scanPost(row pgx.Row) (*models.BlogPost, error) {
	var p models.BlogPost
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Title,
		&p.Excerpt,
		&p.Body,
		&p.CoverImage,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return &p, nil
}

func (r *pgContentRepo) CreatePost(ctx context.Context, post *models.BlogPost) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}

	query := `
		INSERT INTO blog_posts (id, slug, title, excerpt, body, cover_image, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		post.ID,
		post.Slug,
		post.Title,
		post.Excerpt,
		post.Body,
		post.CoverImage,
		post.Published,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *pgContentRepo) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE slug = $1`, slug)
	return scanPost(row)
}

func (r *pgContentRepo) GetPostByID(ctx context.Context, id string) (*models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id)
	return scanPost(row)
}

func (r *pgContentRepo) ListPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]models.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + postColumns + `
		FROM blog_posts
		WHERE ($1 = false OR published = true)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []models.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}

	return posts, rows.Err()
}

func (r *pgContentRepo) UpdatePost(ctx context.Context, post *models.BlogPost) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := `
		UPDATE blog_posts
		SET slug = $2, title = $3, excerpt = $4, body = $5, cover_image = $6,
		    published = $7, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(
		ctx, query,
		post.ID,
		post.Slug,
		post.Title,
		post.Excerpt,
		post.Body,
		post.CoverImage,
		post.Published,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgContentRepo) DeletePost(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
