package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	_ "taskman/docs" // swagger docs

	"taskman/internal/cache"
	"taskman/internal/config"
	"taskman/internal/handler"
	"taskman/internal/metrics"
	"taskman/internal/repository"
	"taskman/internal/router"
	"taskman/internal/service"
)

// @title Task Manager API
// @version 1.0
// @description Task and user management API with filtered listings and referential checks.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Initialize the shared in-memory store and its repositories
	store := repository.NewStore()
	userRepo := repository.NewUserRepository(store)
	taskRepo := repository.NewTaskRepository(store)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient, cfg.CacheTTL)
	taskService := service.NewTaskService(taskRepo, cacheClient, cfg.CacheTTL)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	taskHandler := handler.NewTaskHandler(taskService)

	// Metrics live on their own registry rather than the global one
	reg := prometheus.NewRegistry()
	httpMetrics := metrics.New(reg)

	router.Register(e, cfg, reg, httpMetrics, userHandler, taskHandler)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
