package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/Gagana-kumar/quick-mom/pkg/validator"

	"github.com/Gagana-kumar/quick-mom/internal/adapter/handler"
	"github.com/Gagana-kumar/quick-mom/internal/adapter/repository"
	"github.com/Gagana-kumar/quick-mom/internal/domain/repositories"
	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/cache"
	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/database"
	httpmw "github.com/Gagana-kumar/quick-mom/internal/infrastructure/http/middleware"
	"github.com/Gagana-kumar/quick-mom/internal/infrastructure/storage"
	aiuse "github.com/Gagana-kumar/quick-mom/internal/usecase/ai"
	"github.com/Gagana-kumar/quick-mom/internal/usecase/auth"
	"github.com/Gagana-kumar/quick-mom/internal/usecase/minutes"
	pkgai "github.com/Gagana-kumar/quick-mom/pkg/ai"
	"github.com/Gagana-kumar/quick-mom/pkg/config"
	"github.com/Gagana-kumar/quick-mom/pkg/jwt"
)

// @title           QuickMoM API
// @version         1.0
// @description     Meeting minutes API with topics, action items and AI assistance

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	validate := pkgvalidator.New()
	e.Validator = validate

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// View cache: Redis when enabled, in-memory otherwise
	var views cache.ViewCache
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisCache, err := cache.NewRedisCache(cfg, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		views = redisCache
	} else {
		views = cache.NewMemoryCache()
	}

	// Store backend per STORE_MODE
	var (
		store     repositories.MeetingStore
		directory repositories.UserDirectory
		userStore repositories.UserStore
	)
	switch cfg.Store.Mode {
	case config.StoreModeMemory:
		log.Println("🗃️  Using seeded in-memory store (development mode)")
		ms := repository.NewMemoryStore()
		ms.Seed()
		store, directory, userStore = ms, ms, ms

	case config.StoreModeRemote:
		log.Printf("🔗 Using remote backend at %s", cfg.Store.RemoteBaseURL)
		rs := repository.NewRemoteStore(cfg.Store.RemoteBaseURL, logger)
		store, directory = rs, rs

	case config.StoreModePostgres:
		log.Println("📦 Connecting to database...")
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.CloseDB(db)

		// Production deployments should manage schema via sql-migrate.
		if cfg.Database.AutoMigrate {
			if cfg.Server.Environment == "production" {
				log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
			}
			log.Println("🔄 Running migrations (development only) ...")
			if err := database.AutoMigrate(db); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}

		ps := repository.NewPostgresStore(db, logger)
		store, directory, userStore = ps, ps, ps
	}

	// Session auth: local JWT sessions except in remote mode, where the
	// backend owns the session and auth requests are proxied.
	var (
		authService auth.Service
		authHandler *handler.Auth
		authProxy   *handler.AuthProxy
	)
	if cfg.Store.Mode == config.StoreModeRemote {
		log.Println("🔐 Proxying auth to remote backend")
		authProxy = handler.NewAuthProxy(cfg.Store.RemoteBaseURL, logger)
	} else {
		log.Println("🔑 Initializing session manager...")
		jwtManager := jwt.NewManager(cfg.Session.Secret, cfg.Session.Expiry)
		authService = auth.NewService(userStore, jwtManager, logger)
		authHandler = handler.NewAuth(authService, &cfg.Session, logger)
	}
	sessionMW := httpmw.NewSessionMiddleware(cfg.Session.CookieName, authService, logger)

	// Audio retention (optional)
	var vault aiuse.AudioVault
	if cfg.Storage.Enabled {
		log.Println("🎙️  Initializing audio storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		vault = minioClient
	}

	// AI oracle
	log.Println("🤖 Initializing AI components...")
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	oracle := pkgai.NewProviderOracle(groqClient, asmClient)

	// Services
	minutesService := minutes.NewService(store, directory, views, validate, cfg.AttendeesRequired(), logger)
	aiService := aiuse.NewService(store, directory, oracle, vault, views, validate, logger)

	// Handlers
	meetingHandler := handler.NewMeeting(minutesService, views, logger)
	aiController := handler.NewAIController(aiService, logger)
	userHandler := handler.NewUser(directory, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, sessionMW, authHandler, authProxy, userHandler, meetingHandler, aiController)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s | Store mode: %s", cfg.Server.Environment, cfg.Store.Mode)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
