package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"interioai-backend/internal/config"
	"interioai-backend/internal/database/postgres"
	"interioai-backend/internal/handlers"
	"interioai-backend/internal/render"
	"interioai-backend/internal/repository"
	"interioai-backend/internal/services"
	"interioai-backend/internal/storage"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("log", "interioai")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, file))
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	// .env is a development convenience; production sets variables directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, using system environment variables")
	}

	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.New()

	db, err := postgres.ConnectAndCreateDB(cfg.PostgresCfg)
	if err != nil {
		log.Printf("Error connecting to PostgreSQL: %v, retrying", err)
		postgres.RetryConnectOnFailed(5*time.Second, &db, cfg.PostgresCfg)
	}
	defer db.Close()

	store, err := storage.NewLocalStore(cfg.StorageCfg)
	if err != nil {
		log.Fatalf("Error preparing storage directories: %v", err)
	}

	renderer := render.NewFromConfig(cfg.RenderCfg)

	// repositories
	userRepository := repository.NewUserRepository(db)
	designRepository := repository.NewDesignRepository(db)

	// services
	userService := services.NewUserService(userRepository, designRepository)
	designService := services.NewDesignService(designRepository, userRepository)
	costService := services.NewCostService()
	renderService := services.NewRenderService(store, renderer, userRepository, cfg.RenderCfg.Timeout)

	// handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	designHandler := handlers.NewDesignHandler(designService)
	furnitureHandler := handlers.NewFurnitureHandler(costService)
	generateHandler := handlers.NewGenerateHandler(renderService, store, cfg.StorageCfg.MaxUploadMB)
	systemHandler := handlers.NewSystemHandler(renderService, cfg.StorageCfg.StaticDir)

	r := gin.Default()
	r.Use(handlers.CORSMiddleware())
	r.Use(handlers.MetricsMiddleware())

	authHandler.RegisterRoutes(r)
	userHandler.RegisterRoutes(r)
	designHandler.RegisterRoutes(r)
	furnitureHandler.RegisterRoutes(r)
	generateHandler.RegisterRoutes(r)
	systemHandler.RegisterRoutes(r)

	log.Printf("AI renderer: %s (available: %v)", renderer.Name(), renderer.Available())
	log.Printf("Starting interioai-backend on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
