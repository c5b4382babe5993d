package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gitchest/gitchest/internal/assets"
	"github.com/gitchest/gitchest/internal/handlers"
	"github.com/gitchest/gitchest/internal/middleware"
	"github.com/gitchest/gitchest/internal/repositories"
	"github.com/gitchest/gitchest/internal/services"
	"github.com/gitchest/gitchest/pkg/config"
	"github.com/gitchest/gitchest/pkg/database"
	"github.com/gitchest/gitchest/pkg/logger"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	logger.Init()

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize asset directories
	assetResolver := assets.NewResolver(config.AppConfig.DataDir)
	if _, err := assetResolver.Ensure(assets.AvatarsDir{}); err != nil {
		log.Fatalf("Failed to create asset directories: %v", err)
	}

	// Initialize dependencies
	userRepo := repositories.NewUserRepository(database.DB)
	avatarRepo := repositories.NewUserAvatarRepository(database.DB)
	githubService := services.NewGitHubService(config.AppConfig.GitHub.Token)
	userService := services.NewUserService(userRepo, avatarRepo, assetResolver, githubService)
	exportService := services.NewExportService(userRepo)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())

	// Apply middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// Setup routes
	setupRoutes(router, userService, exportService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, userService *services.UserService, exportService *services.ExportService) {
	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, exportService)
	healthHandler := handlers.NewHealthHandler()

	// User routes. The exists/export routes come before :id so gin does not
	// treat them as ids.
	users := router.Group("/users")
	{
		users.GET("/exists", userHandler.Exists)
		users.GET("/export", userHandler.ExportUsers)
		users.POST("", userHandler.AddUser)
		users.GET("/:id", userHandler.GetFullUser)
		users.DELETE("/:id", userHandler.RemoveUser)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)
}
