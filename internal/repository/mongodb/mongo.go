package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/config"
)

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

func NewMongo(cfg *config.MongoConfig, logger *zap.Logger) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	logger.Info("MongoDB connected",
		zap.String("database", cfg.Database),
	)

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	m.logger.Info("Closing MongoDB connection")
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Health(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) Database() *mongo.Database {
	return m.db
}
