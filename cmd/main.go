package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bkunyiha/auth-service/config"
	"github.com/bkunyiha/auth-service/db"
	"github.com/bkunyiha/auth-service/internal/auth/domain"
	"github.com/bkunyiha/auth-service/internal/auth/handler"
	"github.com/bkunyiha/auth-service/internal/auth/service"
	memorystore "github.com/bkunyiha/auth-service/internal/auth/store/memory"
	postgresstore "github.com/bkunyiha/auth-service/internal/auth/store/postgres"
	redisstore "github.com/bkunyiha/auth-service/internal/auth/store/redis"
	"github.com/bkunyiha/auth-service/internal/email"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()
	ctx := context.Background()

	// Store backends are chosen at startup and injected; in-memory stands in
	// wherever the external backend is not configured.
	var userStore domain.UserStore = memorystore.NewUserStore()
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("postgres connection failed", zap.Error(err))
		}
		defer pool.Close()
		userStore = postgresstore.NewUserStore(pool, logger)
	}

	var (
		bannedStore domain.BannedTokenStore = memorystore.NewBannedTokenStore()
		codeStore   domain.TwoFACodeStore   = memorystore.NewTwoFACodeStore()
	)
	if cfg.RedisHost != "" {
		client, err := db.NewRedisClient(ctx, cfg.RedisHost)
		if err != nil {
			logger.Fatal("redis connection failed", zap.Error(err))
		}
		defer func() { _ = client.Close() }()
		bannedStore = redisstore.NewBannedTokenStore(client, logger)
		codeStore = redisstore.NewTwoFACodeStore(client, logger)
	}

	var emailClient domain.EmailClient = email.NewMockClient(logger)
	if cfg.EmailServiceHost != "" {
		emailClient = email.NewHTTPClient(cfg.EmailServiceHost, cfg.EmailFromUser, cfg.EmailTimeout, logger)
	}

	tokenService, err := service.NewTokenService(cfg.JWTSecret, bannedStore)
	if err != nil {
		logger.Fatal("token service init failed", zap.Error(err))
	}

	authService := service.NewAuthService(userStore, codeStore, bannedStore, emailClient, tokenService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting auth service", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
