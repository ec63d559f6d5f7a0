package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/config"
	httpDelivery "github.com/VinayNoogler000/RentEase/internal/delivery/http"
	"github.com/VinayNoogler000/RentEase/internal/delivery/http/handler"
	"github.com/VinayNoogler000/RentEase/internal/delivery/http/session"
	"github.com/VinayNoogler000/RentEase/internal/infrastructure/mapbox"
	"github.com/VinayNoogler000/RentEase/internal/infrastructure/minio"
	"github.com/VinayNoogler000/RentEase/internal/pkg/logger"
	"github.com/VinayNoogler000/RentEase/internal/repository/cache"
	"github.com/VinayNoogler000/RentEase/internal/repository/mongodb"
	"github.com/VinayNoogler000/RentEase/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting RentEase")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to MongoDB
	mongoDB, err := mongodb.NewMongo(&cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	log.Info("MongoDB connected")

	// 4. Connect to Redis (session backend)
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	log.Info("Redis connected")

	// 5. Connect to the image object store
	imageStorage, err := minio.NewStorage(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to connect to image storage", zap.Error(err))
	}

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := mongoDB.Health(ctx); err != nil {
		log.Fatal("MongoDB health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize repositories
	listingRepo := mongodb.NewListingRepository(mongoDB, log)
	reviewRepo := mongodb.NewReviewRepository(mongoDB, log)
	userRepo := mongodb.NewUserRepository(mongoDB, log)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to ensure user indexes", zap.Error(err))
	}

	geocoder := mapbox.NewClient(&cfg.Mapbox, log)
	sessions := session.NewManager(cfg.Session, cache.NewSessionStorage(redisClient))

	log.Info("Repositories initialized")

	// 8. Initialize use cases
	listingUC := usecase.NewListingUseCase(listingRepo, reviewRepo, userRepo, geocoder, log)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, listingRepo, log)
	userUC := usecase.NewUserUseCase(userRepo, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	listingHandler := handler.NewListingHandler(listingUC, imageStorage, sessions, log)
	reviewHandler := handler.NewReviewHandler(reviewUC, sessions, log)
	userHandler := handler.NewUserHandler(userUC, sessions, log)

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, sessions, userUC, listingHandler, reviewHandler, userHandler)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := mongoDB.Close(ctx); err != nil {
		log.Error("Failed to close MongoDB", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
