package minio

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, publicPrefixes ...string) error {
	exists, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		return handleMinIOError(err, "check_bucket_exists")
	}
	if !exists {
		err = m.minioClient.MakeBucket(ctx, m.config.Bucket, minio.MakeBucketOptions{Region: m.config.Region})
		if err != nil {
			return handleMinIOError(err, "create_bucket")
		}
	}
	if len(publicPrefixes) == 0 {
		return nil
	}
	if err := m.minioClient.SetBucketPolicy(ctx, m.config.Bucket, readOnlyPolicy(m.config.Bucket, publicPrefixes)); err != nil {
		return handleMinIOError(err, "set_bucket_policy")
	}
	return nil
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}

	opts := minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: map[string]string{},
	}
	for k, v := range req.Metadata {
		opts.UserMetadata[k] = v
	}
	if req.OriginalName != "" {
		opts.UserMetadata["original-name"] = req.OriginalName
	}

	info, err := m.minioClient.PutObject(ctx, m.config.Bucket, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}

	return &FileInfo{
		BucketName:   m.config.Bucket,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		URL:          m.ObjectURL(req.ObjectName),
	}, nil
}

func (m *implMinIO) DeleteFile(ctx context.Context, objectName string) error {
	if objectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if err := m.minioClient.RemoveObject(ctx, m.config.Bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return handleMinIOError(err, "delete_file")
	}
	return nil
}

func (m *implMinIO) ObjectURL(objectName string) string {
	return m.config.PublicURL + "/" + path.Join(m.config.Bucket, objectName)
}

// GenerateObjectName returns a unique key under prefix keeping the extension of originalName.
func GenerateObjectName(prefix, originalName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	if len(ext) > 8 {
		ext = ""
	}
	return path.Join(prefix, uuid.NewString()+ext)
}

func readOnlyPolicy(bucket string, prefixes []string) string {
	resources := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		resources = append(resources, fmt.Sprintf(`"arn:aws:s3:::%s/%s*"`, bucket, strings.TrimPrefix(p, "/")))
	}
	return fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":[%s]}]}`,
		strings.Join(resources, ","))
}
