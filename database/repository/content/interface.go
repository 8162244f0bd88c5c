// File: database/repository/content/interface.go
package contentRepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

var (
	// ErrNotFound is returned when no content record matches the query.
	ErrNotFound = errors.New("content record not found")
	// ErrDuplicate is returned on a slug or page-path collision.
	ErrDuplicate = errors.New("record with this key already exists")
)

type ContentRepository interface {
	// Blog posts.
	CreatePost(ctx context.Context, post *models.BlogPost) error
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetPostByID(ctx context.Context, id string) (*models.BlogPost, error)
	ListPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]models.BlogPost, error)
	UpdatePost(ctx context.Context, post *models.BlogPost) error
	DeletePost(ctx context.Context, id string) error

	// SEO settings.
	UpsertSeoSetting(ctx context.Context, setting *models.SeoSetting) error
	GetSeoSetting(ctx context.Context, pagePath string) (*models.SeoSetting, error)
	ListSeoSettings(ctx context.Context) ([]models.SeoSetting, error)
	DeleteSeoSetting(ctx context.Context, id string) error

	// Tracking scripts.
	CreateScript(ctx context.Context, script *models.TrackingScript) error
	ListScripts(ctx context.Context, enabledOnly bool) ([]models.TrackingScript, error)
	UpdateScript(ctx context.Context, script *models.TrackingScript) error
	DeleteScript(ctx context.Context, id string) error

	// Client logos.
	CreateLogo(ctx context.Context, logo *models.ClientLogo) error
	ListLogos(ctx context.Context) ([]models.ClientLogo, error)
	DeleteLogo(ctx context.Context, id string) error
}

type pgContentRepo struct {
	pool *pgxpool.Pool
}

// NewPgContentRepo constructs a new Postgres ContentRepository.
func NewPgContentRepo(pool *pgxpool.Pool) ContentRepository {
	return &pgContentRepo{pool: pool}
}
