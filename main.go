package main

import (
	"CourseCatalog/config"
	"CourseCatalog/controllers"
	"CourseCatalog/repositories/impl"
	"CourseCatalog/routes"
	"CourseCatalog/services"
	ws "CourseCatalog/websocket"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	config.InitDatabase()

	// Initialize repositories
	courseRepo := impl.NewCourseRepository(config.DB)
	messageRepo := impl.NewMessageRepository(config.DB)
	adminRepo := impl.NewAdminRepository(config.DB)

	// Initialize services
	catalogService := services.NewCatalogService(courseRepo, config.Languages(), config.DefaultLanguage())
	localeService := services.NewLocaleService(messageRepo, config.Languages(), config.DefaultLanguage())
	authService := services.NewAuthService(adminRepo, config.JWTSecret(), os.Getenv("ADMIN_SETUP_CODE"))

	// Wire the catalog feed hub into the service
	hub := ws.NewHub()
	catalogService.SetNotifier(hub)

	// Set services in controllers
	controllers.SetCatalogService(catalogService)
	controllers.SetLocaleService(localeService)
	controllers.SetAuthService(authService)
	controllers.SetCatalogHub(hub)

	// Initialize Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Register routes
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}
