package minio

import (
	"io"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// Config addresses one bucket on a MinIO or S3 compatible server.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
	// PublicURL prefixes object URLs handed to clients. Defaults to the endpoint.
	PublicURL string
}

// UploadRequest describes one object to store in the configured bucket.
type UploadRequest struct {
	ObjectName   string
	OriginalName string
	Reader       io.Reader
	Size         int64
	ContentType  string
	Metadata     map[string]string
}

// FileInfo is what was stored and where clients can read it.
type FileInfo struct {
	BucketName   string    `json:"bucket_name"`
	ObjectName   string    `json:"object_name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	ETag         string    `json:"etag"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
}

type implMinIO struct {
	minioClient *minio.Client
	config      Config
	mu          sync.RWMutex
	connected   bool
}
