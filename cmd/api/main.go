package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/solarbazaar/marketplace-api/config"
	"github.com/solarbazaar/marketplace-api/internal/auth"
	authH "github.com/solarbazaar/marketplace-api/internal/auth/handler"
	authRepoPkg "github.com/solarbazaar/marketplace-api/internal/auth/repository"
	authUCPkg "github.com/solarbazaar/marketplace-api/internal/auth/usecase"
	mkH "github.com/solarbazaar/marketplace-api/internal/marketplace/handler"
	mkRepoPkg "github.com/solarbazaar/marketplace-api/internal/marketplace/repository"
	mkUCPkg "github.com/solarbazaar/marketplace-api/internal/marketplace/usecase"
	supH "github.com/solarbazaar/marketplace-api/internal/supplier/handler"
	supRepoPkg "github.com/solarbazaar/marketplace-api/internal/supplier/repository"
	supUCPkg "github.com/solarbazaar/marketplace-api/internal/supplier/usecase"
	uploadH "github.com/solarbazaar/marketplace-api/internal/upload/handler"
	uploadStorage "github.com/solarbazaar/marketplace-api/internal/upload/storage"
	"github.com/solarbazaar/marketplace-api/pkg/database"
	"github.com/solarbazaar/marketplace-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	logConfig := &logger.Config{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv != "development" && cfg.Server.AppEnv != "dev" {
		logConfig.Encoding = "json"
		logConfig.Level = "info"
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	db, err := database.NewPostgres(&database.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// Redis is a read cache only; the service runs uncached without it.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		appLogger.Warn("Could not connect to Redis (listing cache disabled)", zap.Error(err))
		_ = redisClient.Close()
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}
	pingCancel()

	// Object storage is optional the same way: uploads return 503 without it.
	var store *uploadStorage.Storage
	gcsClient, err := gcs.NewClient(context.Background())
	if err != nil {
		appLogger.Warn("Could not create storage client (uploads disabled)", zap.Error(err))
	} else {
		defer gcsClient.Close()
		store = uploadStorage.New(
			gcsClient,
			cfg.Storage.Bucket,
			cfg.Storage.PublicBaseURL,
			time.Duration(cfg.Storage.SignTTLSecs)*time.Second,
		)
		appLogger.Info("Connected to object storage", zap.String("bucket", cfg.Storage.Bucket))
	}

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		SecretKey: cfg.JWT.SecretKey,
		TokenTTL:  time.Duration(cfg.JWT.TokenTTLHrs) * time.Hour,
		Issuer:    "solarbazaar",
	})
	hasher := auth.NewPasswordHasher()

	authRepo := authRepoPkg.NewPGRepository(db)
	mkRepo := mkRepoPkg.NewPGRepository(db)
	supRepo := supRepoPkg.NewPGRepository(db)

	authUC := authUCPkg.NewAuthUseCase(authRepo, jwtManager, hasher, appLogger)
	mkUC := mkUCPkg.NewMarketplaceUseCase(mkRepo, redisClient, appLogger)
	supUC := supUCPkg.NewSupplierUseCase(supRepo, redisClient, appLogger)

	authHandler := authH.NewAuthHandler(authUC, appLogger)
	mkHandler := mkH.NewMarketplaceHandler(mkUC, appLogger)
	supHandler := supH.NewSupplierHandler(supUC, appLogger)
	uploadHandler := uploadH.NewUploadHandler(store, cfg.Storage.MaxPDFBytes, appLogger)

	app := fiber.New(fiber.Config{
		AppName: "SolarBazaar API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}
			return c.Status(code).JSON(fiber.Map{"error": msg})
		},
	})

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} - ${ip} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Get("/marketplace", mkHandler.Search)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)

	authenticated := api.Group("", auth.Middleware(jwtManager))
	authenticated.Get("/supplierdashboard", supHandler.Dashboard)
	authenticated.Post("/supplierdashboard", supHandler.Dispatch)
	authenticated.Post("/upload", uploadHandler.Presign)
	authenticated.Post("/upload/direct", uploadHandler.Direct)

	go func() {
		if err := app.Listen(cfg.Server.HTTPPort); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()
	appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.HTTPPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
