package minio

import (
	"context"
	"fmt"
	"time"

	"users-srv/config"
	"users-srv/pkg/log"
	miniopkg "users-srv/pkg/minio"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultMaxRetries     = 3
)

// Connect builds the storage client, verifies it and makes sure the bucket exists.
// It retries with exponential backoff.
func Connect(ctx context.Context, l log.Logger, cfg config.MinIOConfig) (miniopkg.Storage, error) {
	storage, err := miniopkg.New(miniopkg.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
		PublicURL: cfg.PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	var lastErr error
	for i := 0; i < defaultMaxRetries; i++ {
		if lastErr = connectOnce(ctx, storage); lastErr == nil {
			l.Infof(ctx, "config.minio.Connect: connected to %s, bucket %s", cfg.Endpoint, cfg.Bucket)
			return storage, nil
		}
		if i == defaultMaxRetries-1 {
			break
		}
		backoff := time.Duration(1<<uint(i)) * time.Second
		l.Warnf(ctx, "config.minio.Connect: attempt %d/%d failed, retrying in %v: %v", i+1, defaultMaxRetries, backoff, lastErr)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("failed to connect to MinIO after %d attempts: %w", defaultMaxRetries, lastErr)
}

func connectOnce(ctx context.Context, storage miniopkg.Storage) error {
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := storage.Connect(connectCtx); err != nil {
		return err
	}
	return storage.EnsureBucket(connectCtx, miniopkg.PropicPrefix)
}
