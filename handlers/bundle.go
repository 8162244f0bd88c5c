// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Meeting scheduler endpoints.
	GetAvailability     gin.HandlerFunc
	RequestMeeting      gin.HandlerFunc
	ListMeetings        gin.HandlerFunc
	GetMeeting          gin.HandlerFunc
	UpdateMeetingStatus gin.HandlerFunc
	DeleteMeeting       gin.HandlerFunc

	// Lead pipeline endpoints.
	SubmitLead       gin.HandlerFunc
	SubmitLegacyLead gin.HandlerFunc
	ListLeads        gin.HandlerFunc
	GetLead          gin.HandlerFunc
	UpdateLeadStatus gin.HandlerFunc
	DeleteLead       gin.HandlerFunc
	ListLegacyLeads  gin.HandlerFunc

	// Blog endpoints.
	ListPublishedPosts gin.HandlerFunc
	GetPublishedPost   gin.HandlerFunc
	ListAllPosts       gin.HandlerFunc
	CreatePost         gin.HandlerFunc
	UpdatePost         gin.HandlerFunc
	DeletePost         gin.HandlerFunc

	// SEO endpoints.
	GetSeoSetting    gin.HandlerFunc
	ListSeoSettings  gin.HandlerFunc
	UpsertSeoSetting gin.HandlerFunc
	DeleteSeoSetting gin.HandlerFunc

	// Tracking script endpoints.
	ListActiveScripts gin.HandlerFunc
	ListScripts       gin.HandlerFunc
	CreateScript      gin.HandlerFunc
	UpdateScript      gin.HandlerFunc
	DeleteScript      gin.HandlerFunc

	// Client logo endpoints.
	ListLogos  gin.HandlerFunc
	CreateLogo gin.HandlerFunc
	DeleteLogo gin.HandlerFunc

	// Admin auth endpoints.
	AdminLogin  gin.HandlerFunc
	AdminLogout gin.HandlerFunc
}
