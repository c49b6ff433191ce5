package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tsblog-backend/internal/config"
	"tsblog-backend/pkg/logger"
)

// MinIOStorage implements MediaStore on a MinIO bucket.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage builds the client and makes sure the bucket exists.
func NewMinIOStorage(cfg config.MinIOConfig) (*MinIOStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &MinIOStorage{client: client, bucket: cfg.Bucket}, nil
}

// Upload decodes the base64 payload and stores it under
// <preset>/<uuid>. The object key doubles as the media id.
func (s *MinIOStorage) Upload(ctx context.Context, base64Payload, preset string) (MediaRef, error) {
	if base64Payload == "" {
		return MediaRef{}, fmt.Errorf("empty media payload")
	}
	if preset == "" {
		preset = PresetDefault
	}

	data, err := base64.StdEncoding.DecodeString(base64Payload)
	if err != nil {
		return MediaRef{}, fmt.Errorf("decode media payload: %w", err)
	}

	key := fmt.Sprintf("%s/%s", preset, uuid.New().String())
	contentType := http.DetectContentType(data)

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return MediaRef{}, fmt.Errorf("upload to minio: %w", err)
	}

	url := fmt.Sprintf("http://%s/%s/%s", s.client.EndpointURL().Host, s.bucket, key)

	return MediaRef{ID: key, URL: url}, nil
}

// Delete removes the object. Best-effort: a missing or unreachable
// object is logged and swallowed so callers never fail on cleanup.
func (s *MinIOStorage) Delete(ctx context.Context, mediaID string) error {
	if mediaID == "" {
		return nil
	}

	err := s.client.RemoveObject(ctx, s.bucket, mediaID, minio.RemoveObjectOptions{})
	if err != nil {
		logger.Error("failed to delete media object "+mediaID, err)
	}
	return nil
}
