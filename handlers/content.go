// File: handlers/content.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/models"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/services/content"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

// ContentHandler serves the CMS endpoints: blog, SEO settings, tracking
// scripts, and client logos.
type ContentHandler struct {
	Service content.ContentService
	Logger  *zap.Logger
}

// NewContentHandler constructs a ContentHandler.
func NewContentHandler(service content.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{Service: service, Logger: logger}
}

func (h *ContentHandler) respondContentError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", "")
	case errors.Is(err, content.ErrDuplicateSlug):
		utils.JSONError(c, http.StatusConflict, "duplicate key", err.Error())
	case errors.Is(err, content.ErrInvalidPlacement):
		utils.JSONError(c, http.StatusBadRequest, "invalid placement", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, action, err.Error())
	}
}

// --- Blog (public) ---

// ListPublishedPosts serves the public blog index.
// GET /api/blog
func (h *ContentHandler) ListPublishedPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := h.Service.ListPosts(c.Request.Context(), true, limit, offset)
	if err != nil {
		h.respondContentError(c, err, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPublishedPost serves one public article by slug; drafts 404.
// GET /api/blog/:slug
func (h *ContentHandler) GetPublishedPost(c *gin.Context) {
	post, err := h.Service.GetPublishedPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondContentError(c, err, "failed to fetch post")
		return
	}
	c.JSON(http.StatusOK, post)
}

// --- Blog (admin) ---

// ListAllPosts includes drafts. GET /api/admin/blog
func (h *ContentHandler) ListAllPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := h.Service.ListPosts(c.Request.Context(), false, limit, offset)
	if err != nil {
		h.respondContentError(c, err, "failed to list posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

// CreatePost authors a new article. POST /api/admin/blog
func (h *ContentHandler) CreatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if post.Title == "" || post.Body == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "title and body are required")
		return
	}

	created, err := h.Service.CreatePost(c.Request.Context(), post)
	if err != nil {
		h.respondContentError(c, err, "failed to create post")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePost edits an article. PUT /api/admin/blog/:id
func (h *ContentHandler) UpdatePost(c *gin.Context) {
	var post models.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	post.ID = c.Param("id")

	updated, err := h.Service.UpdatePost(c.Request.Context(), post)
	if err != nil {
		h.respondContentError(c, err, "failed to update post")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePost removes an article. DELETE /api/admin/blog/:id
func (h *ContentHandler) DeletePost(c *gin.Context) {
	if err := h.Service.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		h.respondContentError(c, err, "failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- SEO settings ---

// GetSeoSetting serves the site shell. GET /api/seo?path=/services/ppc
func (h *ContentHandler) GetSeoSetting(c *gin.Context) {
	pagePath := c.Query("path")
	if pagePath == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing path", "query parameter 'path' is required")
		return
	}

	setting, err := h.Service.GetSeoSetting(c.Request.Context(), pagePath)
	if err != nil {
		h.respondContentError(c, err, "failed to fetch seo setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

// ListSeoSettings serves the dashboard. GET /api/admin/seo
func (h *ContentHandler) ListSeoSettings(c *gin.Context) {
	settings, err := h.Service.ListSeoSettings(c.Request.Context())
	if err != nil {
		h.respondContentError(c, err, "failed to list seo settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpsertSeoSetting creates or replaces a page's record. PUT /api/admin/seo
func (h *ContentHandler) UpsertSeoSetting(c *gin.Context) {
	var setting models.SeoSetting
	if err := c.ShouldBindJSON(&setting); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if setting.PagePath == "" || setting.Title == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "pagePath and title are required")
		return
	}

	saved, err := h.Service.UpsertSeoSetting(c.Request.Context(), setting)
	if err != nil {
		h.respondContentError(c, err, "failed to save seo setting")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DeleteSeoSetting removes a record. DELETE /api/admin/seo/:id
func (h *ContentHandler) DeleteSeoSetting(c *gin.Context) {
	if err := h.Service.DeleteSeoSetting(c.Request.Context(), c.Param("id")); err != nil {
		h.respondContentError(c, err, "failed to delete seo setting")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- Tracking scripts ---

// ListActiveScripts serves the site shell with enabled snippets only.
// GET /api/tracking-scripts
func (h *ContentHandler) ListActiveScripts(c *gin.Context) {
	scripts, err := h.Service.ListScripts(c.Request.Context(), true)
	if err != nil {
		h.respondContentError(c, err, "failed to list tracking scripts")
		return
	}
	c.JSON(http.StatusOK, scripts)
}

// ListScripts serves the dashboard. GET /api/admin/tracking-scripts
func (h *ContentHandler) ListScripts(c *gin.Context) {
	scripts, err := h.Service.ListScripts(c.Request.Context(), false)
	if err != nil {
		h.respondContentError(c, err, "failed to list tracking scripts")
		return
	}
	c.JSON(http.StatusOK, scripts)
}

// CreateScript registers a snippet. POST /api/admin/tracking-scripts
func (h *ContentHandler) CreateScript(c *gin.Context) {
	var script models.TrackingScript
	if err := c.ShouldBindJSON(&script); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if script.Name == "" || script.Snippet == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and snippet are required")
		return
	}

	created, err := h.Service.CreateScript(c.Request.Context(), script)
	if err != nil {
		h.respondContentError(c, err, "failed to create tracking script")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateScript edits a snippet. PUT /api/admin/tracking-scripts/:id
func (h *ContentHandler) UpdateScript(c *gin.Context) {
	var script models.TrackingScript
	if err := c.ShouldBindJSON(&script); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	script.ID = c.Param("id")

	updated, err := h.Service.UpdateScript(c.Request.Context(), script)
	if err != nil {
		h.respondContentError(c, err, "failed to update tracking script")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteScript removes a snippet. DELETE /api/admin/tracking-scripts/:id
func (h *ContentHandler) DeleteScript(c *gin.Context) {
	if err := h.Service.DeleteScript(c.Request.Context(), c.Param("id")); err != nil {
		h.respondContentError(c, err, "failed to delete tracking script")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- Client logos ---

// ListLogos serves the public logo strip. GET /api/logos
func (h *ContentHandler) ListLogos(c *gin.Context) {
	logos, err := h.Service.ListLogos(c.Request.Context())
	if err != nil {
		h.respondContentError(c, err, "failed to list logos")
		return
	}
	c.JSON(http.StatusOK, logos)
}

// CreateLogo adds an entry. POST /api/admin/logos
func (h *ContentHandler) CreateLogo(c *gin.Context) {
	var logo models.ClientLogo
	if err := c.ShouldBindJSON(&logo); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if logo.Name == "" || logo.ImageURL == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "name and imageUrl are required")
		return
	}

	created, err := h.Service.CreateLogo(c.Request.Context(), logo)
	if err != nil {
		h.respondContentError(c, err, "failed to create logo")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteLogo removes an entry. DELETE /api/admin/logos/:id
func (h *ContentHandler) DeleteLogo(c *gin.Context) {
	if err := h.Service.DeleteLogo(c.Request.Context(), c.Param("id")); err != nil {
		h.respondContentError(c, err, "failed to delete logo")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
