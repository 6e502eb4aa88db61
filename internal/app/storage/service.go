/*
Package storage provides the object-store service behind profile pictures.

Pictures are uploaded directly by the browser through time-limited presigned
URLs; the API never proxies image bytes.
*/
package storage

import (
	"context"
	"time"
)

// PresignedURLDuration is how long issued upload/download URLs stay valid.
const PresignedURLDuration = 10 * time.Minute

// MaxPictureSize caps profile picture uploads at 5 MB.
const MaxPictureSize int64 = 5 << 20

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// StorageService defines the public interface for the picture storage service.
type StorageService interface {
	// PresignUpload generates a pre-signed URL for uploading a picture.
	PresignUpload(
		ctx context.Context,
		key string,
		mimeType string,
		fileSize int64,
		duration time.Duration,
	) (string, error)

	// PresignDownload generates a pre-signed URL for downloading a picture.
	PresignDownload(ctx context.Context, key string, duration time.Duration) (string, error)

	// Delete removes the object stored under the given key.
	Delete(ctx context.Context, key string) error
}

// NewStorageService initializes the concrete S3-compatible implementation.
func NewStorageService(cfg ServiceConfig) (StorageService, error) {
	return newS3Client(cfg)
}
