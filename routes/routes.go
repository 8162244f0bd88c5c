package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/handlers"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/middleware"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

// RegisterMeetingRoutes registers the scheduler endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meetings")
	{
		api.GET("/availability", hb.GetAvailability)
		api.POST("", hb.RequestMeeting)
	}
}

// RegisterLeadRoutes registers the public lead-capture endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.POST("", hb.SubmitLead)
		api.POST("/legacy/:form", hb.SubmitLegacyLead)
	}
}

// RegisterContentRoutes registers the public site-content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/blog", hb.ListPublishedPosts)
		api.GET("/blog/:slug", hb.GetPublishedPost)
		api.GET("/seo", hb.GetSeoSetting)
		api.GET("/tracking-scripts", hb.ListActiveScripts)
		api.GET("/logos", hb.ListLogos)
	}
}

// RegisterAdminRoutes sets up endpoints for the dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.POST("/login", hb.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.JWTAuthAdminMiddleware(utils.GetAuthCacheClient()))
	{
		protected.POST("/logout", hb.AdminLogout)

		protected.GET("/meetings", hb.ListMeetings)
		protected.GET("/meetings/:id", hb.GetMeeting)
		protected.PATCH("/meetings/:id/status", hb.UpdateMeetingStatus)
		protected.DELETE("/meetings/:id", hb.DeleteMeeting)

		protected.GET("/leads", hb.ListLeads)
		protected.GET("/leads/legacy/:form", hb.ListLegacyLeads)
		protected.GET("/leads/:id", hb.GetLead)
		protected.PATCH("/leads/:id/status", hb.UpdateLeadStatus)
		protected.DELETE("/leads/:id", hb.DeleteLead)

		protected.GET("/blog", hb.ListAllPosts)
		protected.POST("/blog", hb.CreatePost)
		protected.PUT("/blog/:id", hb.UpdatePost)
		protected.DELETE("/blog/:id", hb.DeletePost)

		protected.GET("/seo", hb.ListSeoSettings)
		protected.PUT("/seo", hb.UpsertSeoSetting)
		protected.DELETE("/seo/:id", hb.DeleteSeoSetting)

		protected.GET("/tracking-scripts", hb.ListScripts)
		protected.POST("/tracking-scripts", hb.CreateScript)
		protected.PUT("/tracking-scripts/:id", hb.UpdateScript)
		protected.DELETE("/tracking-scripts/:id", hb.DeleteScript)

		protected.POST("/logos", hb.CreateLogo)
		protected.DELETE("/logos/:id", hb.DeleteLogo)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMeetingRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
