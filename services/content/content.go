// File: services/content/content.go
package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	contentRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/content"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

const (
	postCachePrefix = "blog:slug:"
	postCacheTTL    = 5 * time.Minute
)

func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, contentRepo.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, contentRepo.ErrDuplicate):
		return ErrDuplicateSlug
	default:
		return err
	}
}

// Slugify normalizes a title into a URL slug. Used when a post is created
// without an explicit slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func (s *DefaultContentService) CreatePost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error) {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if err := s.Repo.CreatePost(ctx, &post); err != nil {
		return nil, mapRepoErr(err)
	}
	s.logger().Info("blog post created", zap.String("slug", post.Slug))
	return &post, nil
}

// GetPublishedPost serves the public blog; drafts read as not found.
// Published posts are cached briefly so the public pages don't hit
// Postgres on every read; only published posts ever enter the cache.
func (s *DefaultContentService) GetPublishedPost(ctx context.Context, slug string) (*models.BlogPost, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, postCachePrefix+slug).Result(); err == nil {
			var cached models.BlogPost
			if jsonErr := json.Unmarshal([]byte(raw), &cached); jsonErr == nil {
				return &cached, nil
			}
		}
	}

	post, err := s.Repo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if !post.Published {
		return nil, ErrNotFound
	}

	if s.Cache != nil {
		if raw, jsonErr := json.Marshal(post); jsonErr == nil {
			if cacheErr := s.Cache.Set(ctx, postCachePrefix+slug, raw, postCacheTTL).Err(); cacheErr != nil {
				s.logger().Warn("failed to cache blog post", zap.String("slug", slug), zap.Error(cacheErr))
			}
		}
	}
	return post, nil
}

func (s *DefaultContentService) evictPost(ctx context.Context, slugs ...string) {
	if s.Cache == nil {
		return
	}
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, postCachePrefix+slug)
		}
	}
	if len(keys) == 0 {
		return
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		s.logger().Warn("failed to evict cached blog post", zap.Error(err))
	}
}

func (s *DefaultContentService) GetPost(ctx context.Context, id string) (*models.BlogPost, error) {
	post, err := s.Repo.GetPostByID(ctx, id)
	return post, mapRepoErr(err)
}

func (s *DefaultContentService) ListPosts(ctx context.Context, publishedOnly bool, limit, offset int) ([]models.BlogPost, error) {
	return s.Repo.ListPosts(ctx, publishedOnly, limit, offset)
}

func (s *DefaultContentService) UpdatePost(ctx context.Context, post models.BlogPost) (*models.BlogPost, error) {
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	prev, err := s.Repo.GetPostByID(ctx, post.ID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if err := s.Repo.UpdatePost(ctx, &post); err != nil {
		return nil, mapRepoErr(err)
	}
	// Evict the old slug too in case the update renamed it.
	s.evictPost(ctx, prev.Slug, post.Slug)
	updated, err := s.Repo.GetPostByID(ctx, post.ID)
	return updated, mapRepoErr(err)
}

func (s *DefaultContentService) DeletePost(ctx context.Context, id string) error {
	prev, err := s.Repo.GetPostByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}
	if err := s.Repo.DeletePost(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	s.evictPost(ctx, prev.Slug)
	return nil
}

func (s *DefaultContentService) UpsertSeoSetting(ctx context.Context, setting models.SeoSetting) (*models.SeoSetting, error) {
	if err := s.Repo.UpsertSeoSetting(ctx, &setting); err != nil {
		return nil, mapRepoErr(err)
	}
	return &setting, nil
}

func (s *DefaultContentService) GetSeoSetting(ctx context.Context, pagePath string) (*models.SeoSetting, error) {
	setting, err := s.Repo.GetSeoSetting(ctx, pagePath)
	return setting, mapRepoErr(err)
}

func (s *DefaultContentService) ListSeoSettings(ctx context.Context) ([]models.SeoSetting, error) {
	return s.Repo.ListSeoSettings(ctx)
}

func (s *DefaultContentService) DeleteSeoSetting(ctx context.Context, id string) error {
	return mapRepoErr(s.Repo.DeleteSeoSetting(ctx, id))
}

func (s *DefaultContentService) CreateScript(ctx context.Context, script models.TrackingScript) (*models.TrackingScript, error) {
	if script.Placement == "" {
		script.Placement = models.PlacementHead
	}
	if script.Placement != models.PlacementHead && script.Placement != models.PlacementBody {
		return nil, ErrInvalidPlacement
	}
	if err := s.Repo.CreateScript(ctx, &script); err != nil {
		return nil, mapRepoErr(err)
	}
	return &script, nil
}

func (s *DefaultContentService) ListScripts(ctx context.Context, enabledOnly bool) ([]models.TrackingScript, error) {
	return s.Repo.ListScripts(ctx, enabledOnly)
}

func (s *DefaultContentService) UpdateScript(ctx context.Context, script models.TrackingScript) (*models.TrackingScript, error) {
	if script.Placement != models.PlacementHead && script.Placement != models.PlacementBody {
		return nil, ErrInvalidPlacement
	}
	if err := s.Repo.UpdateScript(ctx, &script); err != nil {
		return nil, mapRepoErr(err)
	}
	return &script, nil
}

func (s *DefaultContentService) DeleteScript(ctx context.Context, id string) error {
	return mapRepoErr(s.Repo.DeleteScript(ctx, id))
}

func (s *DefaultContentService) CreateLogo(ctx context.Context, logo models.ClientLogo) (*models.ClientLogo, error) {
	if err := s.Repo.CreateLogo(ctx, &logo); err != nil {
		return nil, mapRepoErr(err)
	}
	return &logo, nil
}

func (s *DefaultContentService) ListLogos(ctx context.Context) ([]models.ClientLogo, error) {
	return s.Repo.ListLogos(ctx)
}

func (s *DefaultContentService) DeleteLogo(ctx context.Context, id string) error {
	return mapRepoErr(s.Repo.DeleteLogo(ctx, id))
}
