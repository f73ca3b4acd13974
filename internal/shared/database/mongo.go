package database

import (
	"context"
	"fmt"
	"time"

	"fincore/internal/shared/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig holds configuration for the MongoDB connection.
type MongoConfig struct {
	URI               string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	ConnectionTimeout time.Duration `env:"CONNECTION_TIMEOUT" envDefault:"30s"`

	// Connection pooling
	MaxPoolSize uint64 `env:"MAX_POOL_SIZE" envDefault:"10"`
	MinPoolSize uint64 `env:"MIN_POOL_SIZE" envDefault:"2"`
}

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg *MongoConfig, log logger.Logger) (*mongo.Client, error) {
	if cfg == nil {
		cfg = &MongoConfig{
			URI:               "mongodb://localhost:27017",
			ConnectionTimeout: 30 * time.Second,
			MaxPoolSize:       10,
			MinPoolSize:       2,
		}
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectionTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	if log != nil {
		log.WithComponent("database").Info("MongoDB connection established")
	}

	return client, nil
}

// Ping verifies the MongoDB connection is still alive.
func Ping(ctx context.Context, client *mongo.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return client.Ping(pingCtx, readpref.Primary())
}
