package libs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tourist-safety/config"
	"tourist-safety/models"
)

type MinioStore struct {
	client  *minio.Client
	bucket  string
	useSSL  bool
	host    string
	baseURL string
}

func NewMinioStore(ctx context.Context, cfg *config.Config) (*MinioStore, error) {
	if cfg.MinioEndpoint == "" {
		return nil, errors.New("MINIO_ENDPOINT not configured")
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	store := &MinioStore{
		client:  client,
		bucket:  cfg.MinioBucket,
		useSSL:  cfg.MinioUseSSL,
		host:    cfg.MinioEndpoint,
		baseURL: cfg.MinioPublicURL,
	}
	if err := store.ensureBucket(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *MinioStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.bucket, err)
		}
	}
	return nil
}

func (s *MinioStore) Save(ctx context.Context, folder string, upload models.Upload) (*models.StoredFile, error) {
	key := objectKey(folder, upload.Filename)

	size := upload.Size
	if size <= 0 {
		size = -1
	}
	_, err := s.client.PutObject(ctx, s.bucket, key, upload.Content, size, minio.PutObjectOptions{
		ContentType: contentType(upload.Filename),
	})
	if err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}

	return &models.StoredFile{URL: s.PublicURL(key), Key: key}, nil
}

func (s *MinioStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

// PublicURL uses MINIO_PUBLIC_URL when set, otherwise the endpoint itself;
// the bucket then needs a public read policy.
func (s *MinioStore) PublicURL(key string) string {
	if s.baseURL != "" {
		return strings.TrimRight(s.baseURL, "/") + "/" + key
	}
	scheme := "http://"
	if s.useSSL {
		scheme = "https://"
	}
	return scheme + s.host + "/" + s.bucket + "/" + key
}
