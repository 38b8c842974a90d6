package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/touchpointee/avanyaa-store/internal/config"
)

// ImageStore uploads product and banner images to a MinIO bucket with a
// public-read policy and hands back browser-reachable URLs.
type ImageStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewImageStore(cfg config.Config) (*ImageStore, error) {
	endpoint := fmt.Sprintf("%s:%d", cfg.MinioEndpoint, cfg.MinioPort)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	return &ImageStore{
		client:  client,
		bucket:  cfg.MinioBucket,
		baseURL: publicBaseURL(cfg),
	}, nil
}

// publicBaseURL omits the port for standard 80/443 so image URLs load in
// the browser without a redundant suffix.
func publicBaseURL(cfg config.Config) string {
	protocol := "http"
	if cfg.MinioUseSSL {
		protocol = "https"
	}
	omitPort := (protocol == "https" && cfg.MinioPort == 443) ||
		(protocol == "http" && cfg.MinioPort == 80) ||
		cfg.MinioPort == 0
	if omitPort {
		return fmt.Sprintf("%s://%s", protocol, cfg.MinioEndpoint)
	}
	return fmt.Sprintf("%s://%s:%d", protocol, cfg.MinioEndpoint, cfg.MinioPort)
}

// EnsureBucket creates the bucket if missing and always re-asserts the
// public-read policy, fixing buckets created without it.
func (s *ImageStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
			return err
		}
	}

	policy := fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`, s.bucket)

	return s.client.SetBucketPolicy(ctx, s.bucket, policy)
}

// ObjectName builds a collision-safe object key preserving the original
// file extension.
func ObjectName(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
}

// Upload stores the blob and returns its public URL.
func (s *ImageStore) Upload(ctx context.Context, fileName, contentType string, size int64, reader io.Reader) (string, error) {
	if err := s.EnsureBucket(ctx); err != nil {
		return "", err
	}

	objectName := ObjectName(fileName)
	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, objectName), nil
}

// Delete removes the object behind a previously returned public URL.
// Unknown URLs are ignored.
func (s *ImageStore) Delete(ctx context.Context, imageURL string) error {
	trimmed := strings.TrimSpace(imageURL)
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	objectName := parts[len(parts)-1]
	if objectName == "" {
		return nil
	}
	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}
