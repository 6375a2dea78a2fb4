package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/mistakelog/internal/handlers"
	"github.com/alimgiray/mistakelog/internal/middleware"
	"github.com/alimgiray/mistakelog/internal/repositories"
	"github.com/alimgiray/mistakelog/internal/services"
	"github.com/alimgiray/mistakelog/pkg/config"
	"github.com/alimgiray/mistakelog/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		logger.Errorf("Failed to load config: %v", err)
		os.Exit(1)
	}

	logger.Init()
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize dependencies
	mistakeRepo := repositories.NewMistakeRepository()
	mistakeService := services.NewMistakeService(mistakeRepo)
	personRepo := repositories.NewPersonRepository()
	personService := services.NewPersonService(personRepo)
	healthService := services.NewHealthService()

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	setupRoutes(router, mistakeService, personService, healthService)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Server failed to start: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func setupRoutes(router *gin.Engine, mistakeService *services.MistakeService, personService *services.PersonService, healthService *services.HealthService) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	healthHandler := handlers.NewHealthHandler(healthService)
	mistakeHandler := handlers.NewMistakeHandler(mistakeService)
	personHandler := handlers.NewPersonHandler(personService)

	// Root and health endpoints
	router.GET("/", homeHandler.Index)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/health/:path_echo", healthHandler.HealthCheck)

	// Mistake endpoints
	mistakes := router.Group("/mistakes")
	{
		mistakes.POST("", mistakeHandler.CreateMistake)
		mistakes.GET("", mistakeHandler.ListMistakes)
		mistakes.GET("/:id", mistakeHandler.GetMistake)
		mistakes.PATCH("/:id", mistakeHandler.UpdateMistake)
		mistakes.DELETE("/:id", mistakeHandler.DeleteMistake)
	}

	// Person endpoints
	persons := router.Group("/persons")
	{
		persons.POST("", personHandler.CreatePerson)
		persons.GET("", personHandler.ListPersons)
		persons.GET("/:id", personHandler.GetPerson)
		persons.PATCH("/:id", personHandler.UpdatePerson)
		persons.DELETE("/:id", personHandler.DeletePerson)
	}
}
