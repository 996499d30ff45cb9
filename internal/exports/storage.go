// Package exports renders lead and cohort data to CSV and parks the files in
// object storage for download via presigned URL.
package exports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"recruit_portal_backend/platform/config"
)

// presignedURLTTL is how long a generated download link stays valid.
const presignedURLTTL = 15 * time.Minute

// Storage wraps the MinIO client for export uploads.
type Storage struct {
	client *minio.Client
	bucket string
}

// NewStorage creates the MinIO-backed export store.
func NewStorage(cfg config.MinIOConfig) (*Storage, error) {
	if !cfg.IsMinIOEnabled() {
		return nil, fmt.Errorf("MinIO is not configured")
	}

	client, err := minio.New(cfg.GetMinIOEndpoint(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.GetMinIOAccessKey(), cfg.GetMinIOSecretKey(), ""),
		Secure: cfg.GetMinIOUseSSL(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &Storage{client: client, bucket: cfg.GetMinioBucketExports()}, nil
}

// EnsureBucket creates the exports bucket if it does not exist.
func (s *Storage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

// PutCSV uploads a rendered CSV and returns a presigned download URL.
func (s *Storage) PutCSV(ctx context.Context, fileKey string, data []byte) (string, time.Time, error) {
	_, err := s.client.PutObject(ctx, s.bucket, fileKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to upload export %s: %w", fileKey, err)
	}

	expiresAt := time.Now().Add(presignedURLTTL)
	url, err := s.client.PresignedGetObject(ctx, s.bucket, fileKey, presignedURLTTL, nil)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign export %s: %w", fileKey, err)
	}
	return url.String(), expiresAt, nil
}
