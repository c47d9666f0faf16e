package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teamforge/internal/authz"
	"teamforge/internal/autosave"
	"teamforge/internal/cache"
	"teamforge/internal/config"
	"teamforge/internal/database"
	"teamforge/internal/handler"
	"teamforge/internal/queue"
	"teamforge/internal/repository"
	"teamforge/internal/router"
	"teamforge/internal/service"
	"teamforge/internal/storage"
	"teamforge/internal/validator"
	"teamforge/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Info().Msg("configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	teamRepo := repository.NewTeamRepository(mongoDB.Database)
	memberRepo := repository.NewMembershipRepository(mongoDB.Database)
	mediaRepo := repository.NewMediaItemRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(memberRepo)

	// Blob cleanup queue and processor
	cleanupQueue := queue.NewMemoryQueue(100)
	cleanupProcessor := queue.NewProcessor(cleanupQueue, s3Client, 2, log.With().Str("component", "cleanup").Logger())

	// Service layer
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	teamService := service.NewTeamService(teamRepo, memberRepo, mediaRepo, redisCache, cleanupQueue, rng)
	mediaService := service.NewMediaBoardService(mediaRepo, teamRepo, s3Client, cleanupQueue)
	membershipService := service.NewMembershipService(memberRepo, teamRepo)
	sessionService := service.NewEditSessionService(teamRepo, memberRepo, redisCache, autosave.WithDelay(cfg.AutosaveDelay))

	// Handler layer
	teamHandler := handler.NewTeamHandler(teamService)
	mediaHandler := handler.NewMediaHandler(mediaService)
	membershipHandler := handler.NewMembershipHandler(membershipService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	// Router
	r := router.Setup(&router.Config{
		TeamHandler:       teamHandler,
		MediaHandler:      mediaHandler,
		MembershipHandler: membershipHandler,
		SessionHandler:    sessionHandler,
		JWTManager:        jwtManager,
		Authorizer:        authorizer,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start blob cleanup processor
	cleanupProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Info().Msg("shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Info().Msg("shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP server shutdown error")
	}

	// Force-close any editing sessions still open
	sessionService.Shutdown()

	// Cancel context to signal processor shutdown
	cancel()

	// Stop cleanup processor (waits for queued deletions)
	log.Info().Msg("stopping blob cleanup processor")
	cleanupProcessor.Stop()

	log.Info().Msg("server shutdown complete")
}
