package models

import "time"

// BlogPost represents one article authored through the admin dashboard.
type BlogPost struct {
	ID         string    `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Body       string    `json:"body"`
	CoverImage string    `json:"coverImage,omitempty"` // URL only, no processing
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SeoSetting holds the per-page SEO fields edited in the dashboard.
// The site shell reads these verbatim; nothing is generated here.
type SeoSetting struct {
	ID          string    `json:"id"`
	PagePath    string    `json:"pagePath"` // e.g. "/services/ppc"
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Keywords    string    `json:"keywords,omitempty"`
	Canonical   string    `json:"canonical,omitempty"`
	OGImage     string    `json:"ogImage,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Tracking script placements.
const (
	PlacementHead = "HEAD"
	PlacementBody = "BODY"
)

// TrackingScript is a third-party snippet (analytics, pixels) injected
// into the public pages when enabled.
type TrackingScript struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Snippet   string    `json:"snippet"`
	Placement string    `json:"placement"` // HEAD or BODY
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientLogo is one entry of the client-logo strip on the marketing pages.
type ClientLogo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"imageUrl"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt"`
}
