// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/causewayhq/causeway/internal/app/system/indexes"
)

// ConnectDB connects to MongoDB with exponential-backoff retry, so the
// service survives the database coming up after it (compose, k8s). Each
// attempt tries the primary URI first and then the fallback, if one is
// configured.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	uris := []string{appCfg.MongoURI}
	if appCfg.MongoFallbackURI != "" {
		uris = append(uris, appCfg.MongoFallbackURI)
	}

	var client *mongo.Client

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 30 * time.Second
	bo.MaxElapsedTime = 2 * time.Minute

	err := backoff.RetryNotify(func() error {
		var lastErr error
		for _, uri := range uris {
			c, err := tryConnect(ctx, uri, appCfg)
			if err != nil {
				lastErr = err
				continue
			}
			client = c
			return nil
		}
		return lastErr
	}, bo, func(err error, next time.Duration) {
		logger.Warn("MongoDB not ready, retrying",
			zap.Error(err),
			zap.Duration("next_attempt_in", next),
		)
	})
	if err != nil {
		return DBDeps{}, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
	)

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

func tryConnect(ctx context.Context, uri string, appCfg AppConfig) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// EnsureSchema creates the indexes every collection relies on, including
// the unique indexes that back email, slug, and single-active-theme
// guarantees.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return fmt.Errorf("ensuring indexes: %w", err)
	}
	logger.Info("database indexes ensured")
	return nil
}
