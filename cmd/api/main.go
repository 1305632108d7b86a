package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/gitaworld/gita-content-api/pkg/config"
	"github.com/gitaworld/gita-content-api/pkg/db"
	"github.com/gitaworld/gita-content-api/pkg/gita"
	"github.com/gitaworld/gita-content-api/pkg/handlers"
	"github.com/gitaworld/gita-content-api/pkg/middleware"
	"github.com/gitaworld/gita-content-api/pkg/sample"
)

func main() {
	log.SetOutput(gin.DefaultWriter)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.JSONFormatter{})
	log.Info("Starting Gita Content API...")

	cfg := config.LoadConfig()

	if err := db.InitDB(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The fallback dataset keeps public pages readable when the database is
	// unreachable or still empty; boot continues without it.
	sampleData, err := sample.Load(cfg.SampleDataPath)
	if err != nil {
		log.Warnf("Sample data not loaded, public fallback disabled: %v", err)
	}

	apiHandlers := handlers.NewHandlers(cfg, sampleData)
	jwtSecret := []byte(cfg.JwtSecret)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", handlers.HealthCheck)

	// Public reading surface. These routes only ever expose published rows
	// and degrade to the bundled sample content on read failure.
	public := router.Group("/api")
	{
		public.GET("/chapters", apiHandlers.ListPublicChapters)
		public.GET("/chapters/:chapterNumber", apiHandlers.GetPublicChapter)
		public.GET("/chapters/:chapterNumber/verses/:verseNumber/share", apiHandlers.ShareVerse)
		public.GET("/languages", apiHandlers.ListPublicLanguages)
		public.GET("/daily-verse", apiHandlers.GetDailyVerse)
	}

	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", apiHandlers.RegisterUser)
		authRoutes.POST("/login", apiHandlers.LoginUser)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(jwtSecret))
	admin.GET("/me", apiHandlers.CurrentProfile)

	// Content management requires editor or above.
	editor := admin.Group("")
	editor.Use(middleware.RequireRole(gita.RoleEditor))
	{
		editor.GET("/chapters", apiHandlers.ListChapters)
		editor.POST("/chapters", apiHandlers.CreateChapter)
		editor.PUT("/chapters/:id", apiHandlers.UpdateChapter)
		editor.DELETE("/chapters/:id", apiHandlers.DeleteChapter)
		editor.POST("/chapters/:id/toggle-visibility", apiHandlers.ToggleChapterVisibility)

		editor.GET("/verses", apiHandlers.ListVerses)
		editor.POST("/verses", apiHandlers.CreateVerse)
		editor.PUT("/verses/:id", apiHandlers.UpdateVerse)
		editor.DELETE("/verses/:id", apiHandlers.DeleteVerse)
		editor.POST("/verses/:id/toggle-visibility", apiHandlers.ToggleVerseVisibility)

		editor.GET("/languages", apiHandlers.ListLanguages)
		editor.POST("/languages", apiHandlers.CreateLanguage)
		editor.PUT("/languages/:id", apiHandlers.UpdateLanguage)
		editor.POST("/languages/:id/toggle-active", apiHandlers.ToggleLanguageActive)
	}

	// Language removal cascades over every translation, and user management
	// changes who can do what; both stay admin-only.
	adminOnly := admin.Group("")
	adminOnly.Use(middleware.RequireRole(gita.RoleAdmin))
	{
		adminOnly.DELETE("/languages/:id", apiHandlers.DeleteLanguage)

		adminOnly.GET("/profiles", apiHandlers.ListProfiles)
		adminOnly.PUT("/profiles/:id/role", apiHandlers.UpdateProfileRole)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Infof("Server listening on %s:%s", cfg.Host, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited gracefully.")
}
