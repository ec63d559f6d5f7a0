package minio

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/VinayNoogler000/RentEase/internal/config"
	"github.com/VinayNoogler000/RentEase/internal/domain/repository"
)

type storage struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewStorage connects to the S3-compatible object store holding listing
// images and ensures the bucket exists.
func NewStorage(cfg *config.StorageConfig, logger *zap.Logger) (repository.ImageStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for endpoint %s: %w", cfg.Endpoint, err)
	}

	err = client.MakeBucket(context.Background(), cfg.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, existsErr := client.BucketExists(context.Background(), cfg.Bucket)
		if existsErr != nil || !exists {
			return nil, fmt.Errorf("failed to make/verify bucket %s: %w", cfg.Bucket, err)
		}
	}

	logger.Info("Image storage connected",
		zap.String("endpoint", cfg.Endpoint),
		zap.String("bucket", cfg.Bucket))

	return &storage{
		client: client,
		bucket: bucketOrDefault(cfg.Bucket),
		logger: logger,
	}, nil
}

func bucketOrDefault(bucket string) string {
	if bucket == "" {
		return "listing-images"
	}
	return bucket
}

// Upload stores the image under a unique object key (the original
// extension is kept) and returns its public URL.
func (s *storage) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	ext := filepath.Ext(filename)
	objectKey := fmt.Sprintf("upload/%s%s", uuid.New().String(), ext)

	info, err := s.client.PutObject(ctx, s.bucket, objectKey, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Error("Image upload failed",
			zap.String("bucket", s.bucket),
			zap.String("object_key", objectKey),
			zap.Error(err))
		return "", fmt.Errorf("failed to upload object %s to bucket %s: %w", objectKey, s.bucket, err)
	}

	fileURL := fmt.Sprintf("%s/%s/%s", s.client.EndpointURL().String(), s.bucket, info.Key)

	s.logger.Debug("Image uploaded",
		zap.String("object_key", info.Key),
		zap.Int64("size_bytes", info.Size))

	return fileURL, nil
}
