// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	recordsstore "github.com/dalemusser/datavizz/internal/app/store/records"
	"github.com/dalemusser/datavizz/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB opens the pooled Mongo client once at startup and verifies it
// with a ping. Startup fails when the server cannot be reached.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := timeouts.WithTimeout(ctx, timeouts.Ping(), logger, "startup mongo ping")
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		logger.Error("mongo ping failed", zap.Error(err))
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
		zap.Uint64("max_pool_size", appCfg.MongoMaxPoolSize))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema checks the records collection. datavizz never writes, so
// nothing is created; an empty or missing collection is only reported.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	name := appCfg.MongoCollection
	if name == "" {
		name = recordsstore.DefaultCollection
	}

	names, err := deps.MongoDatabase.ListCollectionNames(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	if len(names) == 0 {
		logger.Warn("records collection not found; GET / will return an empty list",
			zap.String("collection", name))
		return nil
	}

	n, err := deps.MongoDatabase.Collection(name).EstimatedDocumentCount(ctx)
	if err != nil {
		return fmt.Errorf("count %s: %w", name, err)
	}
	logger.Info("records collection ready",
		zap.String("collection", name),
		zap.Int64("documents", n))
	return nil
}
