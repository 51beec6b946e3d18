package minio

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Bucket: "users"}, false},
		{"no endpoint", Config{AccessKey: "a", SecretKey: "s", Bucket: "users"}, true},
		{"no secret", Config{Endpoint: "localhost", AccessKey: "a", Bucket: "users"}, true},
		{"bad bucket", Config{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Bucket: "Users_Pics"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if tt.wantErr {
				var se *StorageError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, ErrCodeInvalidInput, se.Code)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestObjectURL(t *testing.T) {
	s, err := New(Config{Endpoint: "localhost", AccessKey: "a", SecretKey: "s", Bucket: "users"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/users/propics/x.png", s.ObjectURL("propics/x.png"))

	s, err = New(Config{Endpoint: "s3.local:443", UseSSL: true, AccessKey: "a", SecretKey: "s", Bucket: "users", PublicURL: "https://cdn.example.com/"})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/users/a.jpg", s.ObjectURL("a.jpg"))
}

func TestValidateUploadRequest(t *testing.T) {
	ok := &UploadRequest{ObjectName: "propics/a.png", Reader: strings.NewReader("x"), Size: 1, ContentType: "image/png"}
	assert.NoError(t, validateUploadRequest(ok))

	tooBig := *ok
	tooBig.Size = MaxUploadSize + 1
	assert.Error(t, validateUploadRequest(&tooBig))

	slash := *ok
	slash.ObjectName = "/a.png"
	assert.Error(t, validateUploadRequest(&slash))

	assert.Error(t, validateUploadRequest(nil))
}

func TestGenerateObjectName(t *testing.T) {
	a := GenerateObjectName("propics", "Me At The Beach.JPG")
	b := GenerateObjectName("propics", "Me At The Beach.JPG")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "propics/"))
	assert.True(t, strings.HasSuffix(a, ".jpg"))
}

func TestHandleMinIOError(t *testing.T) {
	err := handleMinIOError(minio.ErrorResponse{Code: "AccessDenied"}, "upload_file")
	assert.Equal(t, ErrCodePermission, err.Code)
	assert.Equal(t, "upload_file", err.Operation)

	err = handleMinIOError(errors.New("dial tcp: refused"), "connect")
	assert.Equal(t, ErrCodeConnection, err.Code)

	assert.Nil(t, handleMinIOError(nil, "noop"))
}

func TestReadOnlyPolicy(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(readOnlyPolicy("users", []string{"propics/"})), &doc))
	assert.Contains(t, readOnlyPolicy("users", []string{"propics/"}), "arn:aws:s3:::users/propics/*")
}
