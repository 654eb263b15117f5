package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/cartscout/backend/config"
	"github.com/cartscout/backend/internal/delivery/http"
	"github.com/cartscout/backend/internal/domain"
	"github.com/cartscout/backend/internal/infrastructure/memory"
	"github.com/cartscout/backend/internal/infrastructure/postgres"
	"github.com/cartscout/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting CartScout Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Storage: %s", cfg.Database.Storage)

	// Initialize storage
	var (
		itemRepo  domain.ItemRepository
		priceRepo domain.PriceRepository
		userRepo  domain.UserRepository
	)

	switch cfg.Database.Storage {
	case "postgres":
		pool, err := postgres.Connect(context.Background(), cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer pool.Close()

		itemRepo = postgres.NewItemRepository(pool)
		priceRepo = postgres.NewPriceRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
		log.Printf("Connected to postgres")
	default:
		itemRepo = memory.NewItemRepository()
		priceRepo = memory.NewPriceRepository()
		userRepo = memory.NewUserRepository()
		log.Printf("WARNING: using in-memory storage, data is lost on restart")
	}

	// Initialize usecase layer
	debugLogging := cfg.Planner.EnableDebugLogging || cfg.Server.Environment == "development"

	plannerService := usecase.NewPlannerService(usecase.PlannerConfig{
		MaxStoreLimit:      cfg.Planner.MaxStoreLimit,
		EnableDebugLogging: debugLogging,
	})
	itemService := usecase.NewItemService(itemRepo)
	priceService := usecase.NewPriceService(priceRepo)
	authService := usecase.NewAuthService(userRepo, usecase.AuthConfig{
		JWTSecret:          cfg.Auth.JWTSecret,
		TokenTTL:           cfg.Auth.TokenTTL,
		EnableDebugLogging: debugLogging,
	})

	log.Printf("Planner: max stores=%d, debug=%v", cfg.Planner.MaxStoreLimit, debugLogging)

	// Create HTTP handler with dependencies
	handler := http.NewHandler(itemService, priceService, plannerService, authService)

	// Setup router
	router := http.SetupRouter(cfg, handler, authService)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
