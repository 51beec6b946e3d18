package minio

import "strings"

const (
	// MaxUploadSize caps a single object.
	MaxUploadSize = 10 * 1024 * 1024

	// PropicPrefix holds profile pictures and is publicly readable.
	PropicPrefix = "propics/"
)

func validateConfig(cfg *Config) error {
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if err := validateBucketName(cfg.Bucket); err != nil {
		return err
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + ":9000"
	}
	return nil
}

func validateUploadRequest(req *UploadRequest) error {
	if req == nil {
		return NewInvalidInputError("upload request is required")
	}
	if req.ObjectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if req.Reader == nil {
		return NewInvalidInputError("reader is required")
	}
	if req.Size <= 0 {
		return NewInvalidInputError("size must be positive")
	}
	if req.Size > MaxUploadSize {
		return NewInvalidInputError("file too large")
	}
	if req.ContentType == "" {
		return NewInvalidInputError("content type is required")
	}
	if strings.HasPrefix(req.ObjectName, "/") || strings.HasSuffix(req.ObjectName, "/") {
		return NewInvalidInputError("object name cannot start or end with '/'")
	}
	return nil
}

func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 || len(bucketName) > 63 {
		return NewInvalidInputError("bucket name must be 3 to 63 characters")
	}
	for _, char := range bucketName {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if strings.Contains(bucketName, "--") {
		return NewInvalidInputError("bucket name cannot contain consecutive hyphens")
	}
	if strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return NewInvalidInputError("bucket name cannot start or end with hyphen")
	}
	return nil
}
