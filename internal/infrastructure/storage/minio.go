package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"offertehub/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

const maxPhotoBytes = 10 << 20

var (
	ErrNotAnImage    = errors.New("content type is not an image")
	ErrPhotoTooLarge = errors.New("photo exceeds the 10MB limit")
)

// MinioStorage stores customer photos in a MinIO/S3 bucket and returns
// publicly resolvable object URLs.
//
// Env vars:
//   - MINIO_ENDPOINT (required; e.g. minio:9000)
//   - MINIO_ACCESS_KEY, MINIO_SECRET_KEY
//   - MINIO_BUCKET (default: lead-photos)
//   - MINIO_USE_SSL (default: false)
//   - MINIO_PUBLIC_URL (optional external base URL for returned links)

type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ interfaces.IPhotoStorage = (*MinioStorage)(nil)

func NewMinioStorage() (*MinioStorage, error) {
	endpoint := getenvDefault("MINIO_ENDPOINT", "")
	if endpoint == "" {
		return nil, errors.New("MINIO_ENDPOINT is not set")
	}
	useSSL := strings.EqualFold(getenvDefault("MINIO_USE_SSL", "false"), "true")
	bucket := getenvDefault("MINIO_BUCKET", "lead-photos")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(getenvDefault("MINIO_ACCESS_KEY", ""), getenvDefault("MINIO_SECRET_KEY", ""), ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Infof("Bucket %s created", bucket)
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}
	publicURL := getenvDefault("MINIO_PUBLIC_URL", fmt.Sprintf("%s://%s", scheme, endpoint))

	return &MinioStorage{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *MinioStorage) Upload(ctx context.Context, data []byte, contentType, filename string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}
	if len(data) > maxPhotoBytes {
		return "", ErrPhotoTooLarge
	}

	objectName := fmt.Sprintf("lead_%s%s", uuid.NewString(), strings.ToLower(filepath.Ext(filename)))

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}
	log.Infof("Photo %s uploaded", objectName)

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
