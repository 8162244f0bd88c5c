// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/clicksalesmedia/clicksalesmedia-sub003/config"
	appcron "github.com/clicksalesmedia/clicksalesmedia-sub003/cron"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/database"
	adminRepoPkg "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/admin"
	contentRepoPkg "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/content"
	leadRepoPkg "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/lead"
	legacyRepoPkg "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/legacy"
	meetingRepoPkg "github.com/clicksalesmedia/clicksalesmedia-sub003/database/repository/meeting"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/handlers"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/middleware"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/routes"
	adminSvc "github.com/clicksalesmedia/clicksalesmedia-sub003/services/admin"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/services/booking"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/services/content"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/services/lead"
	"github.com/clicksalesmedia/clicksalesmedia-sub003/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	database.InitMongo()
	utils.InitCache()
	utils.InitAuthCache()
	defer database.Close()

	// Apply schema migrations before serving.
	migrator, err := database.NewMigrator(database.PgPool, config.AppConfig.MigrationsPath)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to create migrator: %v", err)
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := migrator.Run(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to apply migrations: %v", err)
		}
		cancel()
		_ = migrator.Close()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	meetingRepo := meetingRepoPkg.NewPgMeetingRepo(database.PgPool)
	leadRepo := leadRepoPkg.NewPgLeadRepo(database.PgPool)
	legacyRepo := legacyRepoPkg.NewMongoLegacyLeadRepo(database.MongoClient)
	contentRepo := contentRepoPkg.NewPgContentRepo(database.PgPool)
	adminRepo := adminRepoPkg.NewPgAdminRepo(database.PgPool)

	// services.
	schedulingEngine := &booking.DefaultSchedulingEngine{
		Repo:   meetingRepo,
		Logger: logger,
	}
	leadService := &lead.DefaultLeadService{
		Repo:   leadRepo,
		Legacy: legacyRepo,
		Logger: logger,
	}
	contentService := &content.DefaultContentService{
		Repo:   contentRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	authService := &adminSvc.DefaultAuthService{
		Repo:      adminRepo,
		AuthCache: utils.GetAuthCacheClient(),
		Logger:    logger,
	}

	bookingHandler := handlers.NewBookingHandler(schedulingEngine, logger)
	leadHandler := handlers.NewLeadHandler(leadService, logger)
	contentHandler := handlers.NewContentHandler(contentService, logger)
	adminHandler := handlers.NewAdminHandler(authService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Meeting scheduler endpoints.
		GetAvailability:     bookingHandler.GetAvailability,
		RequestMeeting:      bookingHandler.RequestMeeting,
		ListMeetings:        bookingHandler.ListMeetings,
		GetMeeting:          bookingHandler.GetMeeting,
		UpdateMeetingStatus: bookingHandler.UpdateMeetingStatus,
		DeleteMeeting:       bookingHandler.DeleteMeeting,

		// Lead pipeline endpoints.
		SubmitLead:       leadHandler.SubmitLead,
		SubmitLegacyLead: leadHandler.SubmitLegacyLead,
		ListLeads:        leadHandler.ListLeads,
		GetLead:          leadHandler.GetLead,
		UpdateLeadStatus: leadHandler.UpdateLeadStatus,
		DeleteLead:       leadHandler.DeleteLead,
		ListLegacyLeads:  leadHandler.ListLegacyLeads,

		// Blog endpoints.
		ListPublishedPosts: contentHandler.ListPublishedPosts,
		GetPublishedPost:   contentHandler.GetPublishedPost,
		ListAllPosts:       contentHandler.ListAllPosts,
		CreatePost:         contentHandler.CreatePost,
		UpdatePost:         contentHandler.UpdatePost,
		DeletePost:         contentHandler.DeletePost,

		// SEO endpoints.
		GetSeoSetting:    contentHandler.GetSeoSetting,
		ListSeoSettings:  contentHandler.ListSeoSettings,
		UpsertSeoSetting: contentHandler.UpsertSeoSetting,
		DeleteSeoSetting: contentHandler.DeleteSeoSetting,

		// Tracking script endpoints.
		ListActiveScripts: contentHandler.ListActiveScripts,
		ListScripts:       contentHandler.ListScripts,
		CreateScript:      contentHandler.CreateScript,
		UpdateScript:      contentHandler.UpdateScript,
		DeleteScript:      contentHandler.DeleteScript,

		// Client logo endpoints.
		ListLogos:  contentHandler.ListLogos,
		CreateLogo: contentHandler.CreateLogo,
		DeleteLogo: contentHandler.DeleteLogo,

		// Admin auth endpoints.
		AdminLogin:  adminHandler.Login,
		AdminLogout: adminHandler.Logout,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background jobs and health monitoring.
	sweep := appcron.StartMeetingSweep(schedulingEngine, logger)
	defer sweep.Stop()
	utils.StartHealthMonitor(
		database.PgPool,
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
