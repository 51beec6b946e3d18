package minio

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// Storage stores profile pictures in a single bucket.
type Storage interface {
	// Connect verifies the server answers.
	Connect(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Close() error

	// EnsureBucket creates the bucket when missing and makes public prefixes readable.
	EnsureBucket(ctx context.Context, publicPrefixes ...string) error
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
	DeleteFile(ctx context.Context, objectName string) error
	ObjectURL(objectName string) string
}

func New(cfg Config) (Storage, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if cfg.PublicURL == "" {
		scheme := "http://"
		if cfg.UseSSL {
			scheme = "https://"
		}
		cfg.PublicURL = scheme + cfg.Endpoint
	}
	cfg.PublicURL = strings.TrimSuffix(cfg.PublicURL, "/")

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
		Transport: &http.Transport{
			MaxIdleConns:        maxIdleConns,
			MaxIdleConnsPerHost: maxIdleConnsPerHost,
			IdleConnTimeout:     idleConnTimeout,
		},
	})
	if err != nil {
		return nil, NewConnectionError(err)
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
