// File: services/content/content_test.go
package content

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	contentRepo "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/content"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
)

type fakeContentRepo struct {
	posts     map[string]*models.BlogPost // keyed by ID
	slugReads int
}

func (f *fakeContentRepo) CreatePost(_ context.Context, post *models.BlogPost) error {
	for _, p := range f.posts {
		if p.Slug == post.Slug {
			return contentRepo.ErrDuplicate
		}
	}
	if post.ID == "" {
		post.ID = "post-1"
	}
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakeContentRepo) GetPostBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	f.slugReads++
	for _, p := range f.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, contentRepo.ErrNotFound
}

func (f *fakeContentRepo) GetPostByID(_ context.Context, id string) (*models.BlogPost, error) {
	if p, ok := f.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, contentRepo.ErrNotFound
}

func (f *fakeContentRepo) ListPosts(_ context.Context, publishedOnly bool, _, _ int) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range f.posts {
		if publishedOnly && !p.Published {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeContentRepo) UpdatePost(_ context.Context, post *models.BlogPost) error {
	if _, ok := f.posts[post.ID]; !ok {
		return contentRepo.ErrNotFound
	}
	cp := *post
	f.posts[post.ID] = &cp
	return nil
}

func (f *fakeContentRepo) DeletePost(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return contentRepo.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeContentRepo) UpsertSeoSetting(_ context.Context, _ *models.SeoSetting) error {
	return nil
}

func (f *fakeContentRepo) GetSeoSetting(_ context.Context, _ string) (*models.SeoSetting, error) {
	return nil, contentRepo.ErrNotFound
}

func (f *fakeContentRepo) ListSeoSettings(_ context.Context) ([]models.SeoSetting, error) {
	return nil, nil
}

func (f *fakeContentRepo) DeleteSeoSetting(_ context.Context, _ string) error { return nil }

func (f *fakeContentRepo) CreateScript(_ context.Context, script *models.TrackingScript) error {
	if script.ID == "" {
		script.ID = "script-1"
	}
	return nil
}

func (f *fakeContentRepo) ListScripts(_ context.Context, _ bool) ([]models.TrackingScript, error) {
	return nil, nil
}

func (f *fakeContentRepo) UpdateScript(_ context.Context, _ *models.TrackingScript) error {
	return nil
}

func (f *fakeContentRepo) DeleteScript(_ context.Context, _ string) error { return nil }

func (f *fakeContentRepo) CreateLogo(_ context.Context, _ *models.ClientLogo) error { return nil }

func (f *fakeContentRepo) ListLogos(_ context.Context) ([]models.ClientLogo, error) {
	return nil, nil
}

func (f *fakeContentRepo) DeleteLogo(_ context.Context, _ string) error { return nil }

type fakePageCache struct {
	values map[string]string
}

func (f *fakePageCache) Get(_ context.Context, key string) *redis.StringCmd {
	if v, ok := f.values[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakePageCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakePageCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func newTestContentService() (*DefaultContentService, *fakeContentRepo, *fakePageCache) {
	repo := &fakeContentRepo{posts: map[string]*models.BlogPost{}}
	cache := &fakePageCache{values: map[string]string{}}
	svc := &DefaultContentService{Repo: repo, Cache: cache, Logger: zap.NewNop()}
	return svc, repo, cache
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Performance Marketing in 2024":   "performance-marketing-in-2024",
		"  Why PPC?  ":                    "why-ppc",
		"B2B -- Lead Gen!":                "b2b-lead-gen",
		"already-a-slug":                  "already-a-slug",
		"Ads & Landing Pages: The Basics": "ads-landing-pages-the-basics",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}

func TestGetPublishedPostHidesDrafts(t *testing.T) {
	svc, repo, cache := newTestContentService()
	repo.posts["post-1"] = &models.BlogPost{
		ID:        "post-1",
		Slug:      "upcoming-campaign-teardown",
		Title:     "Upcoming Campaign Teardown",
		Published: false,
	}

	_, err := svc.GetPublishedPost(context.Background(), "upcoming-campaign-teardown")
	assert.ErrorIs(t, err, ErrNotFound)

	// Drafts never enter the cache.
	assert.Empty(t, cache.values)
}

func TestGetPublishedPostUnknownSlug(t *testing.T) {
	svc, _, _ := newTestContentService()

	_, err := svc.GetPublishedPost(context.Background(), "no-such-post")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPublishedPostServesFromCache(t *testing.T) {
	svc, repo, cache := newTestContentService()
	repo.posts["post-1"] = &models.BlogPost{
		ID:        "post-1",
		Slug:      "ppc-basics",
		Title:     "PPC Basics",
		Published: true,
	}

	first, err := svc.GetPublishedPost(context.Background(), "ppc-basics")
	require.NoError(t, err)
	assert.Equal(t, "PPC Basics", first.Title)
	assert.Contains(t, cache.values, postCachePrefix+"ppc-basics")

	second, err := svc.GetPublishedPost(context.Background(), "ppc-basics")
	require.NoError(t, err)
	assert.Equal(t, first.Title, second.Title)
	assert.Equal(t, 1, repo.slugReads, "second read should come from the cache")
}

func TestUpdatePostEvictsCache(t *testing.T) {
	svc, repo, cache := newTestContentService()
	repo.posts["post-1"] = &models.BlogPost{
		ID:        "post-1",
		Slug:      "ppc-basics",
		Title:     "PPC Basics",
		Published: true,
	}

	_, err := svc.GetPublishedPost(context.Background(), "ppc-basics")
	require.NoError(t, err)
	require.Contains(t, cache.values, postCachePrefix+"ppc-basics")

	updated := *repo.posts["post-1"]
	updated.Title = "PPC Basics, Revised"
	_, err = svc.UpdatePost(context.Background(), updated)
	require.NoError(t, err)

	assert.NotContains(t, cache.values, postCachePrefix+"ppc-basics")
}

func TestDeletePostEvictsCache(t *testing.T) {
	svc, repo, cache := newTestContentService()
	repo.posts["post-1"] = &models.BlogPost{
		ID:        "post-1",
		Slug:      "ppc-basics",
		Published: true,
	}

	_, err := svc.GetPublishedPost(context.Background(), "ppc-basics")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(context.Background(), "post-1"))
	assert.NotContains(t, cache.values, postCachePrefix+"ppc-basics")
	assert.NotContains(t, repo.posts, "post-1")
}

func TestCreatePostDefaultsSlug(t *testing.T) {
	svc, _, _ := newTestContentService()

	post, err := svc.CreatePost(context.Background(), models.BlogPost{
		Title:     "Landing Pages That Convert",
		Body:      "...",
		Published: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "landing-pages-that-convert", post.Slug)
}

func TestCreatePostDuplicateSlug(t *testing.T) {
	svc, repo, _ := newTestContentService()
	repo.posts["post-1"] = &models.BlogPost{ID: "post-1", Slug: "ppc-basics"}

	_, err := svc.CreatePost(context.Background(), models.BlogPost{Title: "PPC Basics"})
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestScriptPlacementValidation(t *testing.T) {
	svc, _, _ := newTestContentService()

	_, err := svc.CreateScript(context.Background(), models.TrackingScript{
		Name:      "GA4",
		Snippet:   "<script></script>",
		Placement: "FOOTER",
	})
	assert.ErrorIs(t, err, ErrInvalidPlacement)

	script, err := svc.CreateScript(context.Background(), models.TrackingScript{
		Name:    "GA4",
		Snippet: "<script></script>",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PlacementHead, script.Placement, "placement defaults to HEAD")

	_, err = svc.UpdateScript(context.Background(), models.TrackingScript{
		ID:        script.ID,
		Name:      "GA4",
		Snippet:   "<script></script>",
		Placement: "inline",
	})
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}
