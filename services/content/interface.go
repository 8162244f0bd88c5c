// File: services/content/interface.go
package content

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	contentRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/content"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

var (
	// ErrNotFound indicates the requested content record does not exist.
	ErrNotFound = errors.New("content not found")
	// ErrDuplicateSlug indicates another post already uses the slug.
	ErrDuplicateSlug = errors.New("slug already in use")
	// ErrInvalidPlacement indicates a tracking-script placement other than HEAD or BODY.
	ErrInvalidPlacement = errors.New("placement must be HEAD or BODY")
)

// ContentService backs the CMS portion of the admin dashboard: blog
// posts, SEO settings, tracking scripts, and client logos.
type ContentService interface {
	CreatePost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error)
	GetPublishedPost(ctx context.Context, slug string) (*models.BlogPost, error)
	GetPost(ctx context.Context, id string) (*models.BlogPost, error)
	ListPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]models.BlogPost, error)
	UpdatePost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error)
	DeletePost(ctx context.Context, id string) error

	UpsertSeoSetting(ctx context.Context, setting models.SeoSetting) (*models.SeoSetting, error)
	GetSeoSetting(ctx context.Context, pagePath string) (*models.SeoSetting, error)
	ListSeoSettings(ctx context.Context) ([]models.SeoSetting, error)
	DeleteSeoSetting(ctx context.Context, id string) error

	CreateScript(ctx context.Context, script models.TrackingScript) (*models.TrackingScript, error)
	ListScripts(ctx context.Context, enabledOnly bool) ([]models.TrackingScript, error)
	UpdateScript(ctx context.Context, script models.TrackingScript) (*models.TrackingScript, error)
	DeleteScript(ctx context.Context, id string) error

	CreateLogo(ctx context.Context, logo models.ClientLogo) (*models.ClientLogo, error)
	ListLogos(ctx context.Context) ([]models.ClientLogo, error)
	DeleteLogo(ctx context.Context, id string) error
}

// PageCache is the slice of the Redis client the content service uses to
// cache public blog reads. *redis.Client satisfies it. A nil cache
// disables caching; reads then always hit the repository.
type PageCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo   contentRepo.ContentRepository
	Cache  PageCache
	Logger *zap.Logger
}

func (s *DefaultContentService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}
