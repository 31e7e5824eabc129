package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"agrovet-rest-api/internal/cache"
	"agrovet-rest-api/internal/config"
	"agrovet-rest-api/internal/handler"
	"agrovet-rest-api/internal/middleware"
	"agrovet-rest-api/internal/router"
	"agrovet-rest-api/internal/service"
	"agrovet-rest-api/internal/storage"
	"agrovet-rest-api/internal/store"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Agrovet Dashboard API...")

	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Initialize storage backend based on config
	var st storage.Storage
	switch cfg.Storage.Type {
	case "mysql":
		mysqlStorage, err := storage.NewMySQLStorage(cfg.Storage.MySQLDSN())
		if err != nil {
			log.Fatalf("Failed to initialize MySQL storage: %v", err)
		}
		st = mysqlStorage
		log.Println("MySQL storage initialized")
	case "memory":
		st = storage.NewMemoryStorage()
		log.Println("In-memory storage initialized (data will not persist)")
	default: // sqlite
		if err := os.MkdirAll("./data", 0o755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		sqliteStorage, err := storage.NewSQLiteStorage(cfg.Storage.Path)
		if err != nil {
			log.Fatalf("Failed to initialize SQLite storage: %v", err)
		}
		st = sqliteStorage
		log.Println("SQLite storage initialized")
	}
	defer st.Close()

	dataStore := store.New(st)

	if cfg.App.SeedData {
		if err := dataStore.Seed(context.Background()); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
	}

	// Initialize cache based on config
	var appCache cache.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.RedisAddress(),
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			log.Printf("Warning: Redis connection failed, falling back to memory cache: %v", err)
			appCache = cache.NewMemoryCache()
		} else {
			appCache = redisCache
			log.Println("Redis cache initialized")
		}
	default:
		appCache = cache.NewMemoryCache()
		log.Println("Memory cache initialized")
	}
	defer appCache.Close()

	// Initialize services
	sessionService := service.NewSessionService(appCache, cfg.Session.TTL)
	adminService := service.NewAdminService(dataStore)
	reportService := service.NewReportService(dataStore, appCache)

	var scanner *service.ReorderScanner
	if cfg.Reorder.Enabled {
		scanner = service.NewReorderScanner(dataStore, service.ReorderScannerConfig{
			ScanInterval: cfg.Reorder.ScanInterval,
		})
		scanner.Start()
	}

	// Initialize handlers
	healthHandler := handler.New(cfg.App.Version)
	inventoryHandler := handler.NewInventoryHandler(dataStore)
	customerHandler := handler.NewCustomerHandler(dataStore)
	salesHandler := handler.NewSalesHandler(dataStore)
	reportsHandler := handler.NewReportsHandler(reportService, dataStore)
	authHandler := handler.NewAuthHandler(adminService, sessionService)

	authMiddleware := middleware.NewAuth(sessionService)

	r := router.New(router.Config{
		Handler:          healthHandler,
		InventoryHandler: inventoryHandler,
		CustomerHandler:  customerHandler,
		SalesHandler:     salesHandler,
		ReportsHandler:   reportsHandler,
		AuthHandler:      authHandler,
		AuthMiddleware:   authMiddleware,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	if scanner != nil {
		scanner.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
