package libs

import (
	"context"
	"fmt"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"tourist-safety/config"
	"tourist-safety/services"
)

// NewPhotoStore picks the backend named by PHOTO_STORE.
func NewPhotoStore(ctx context.Context, cfg *config.Config) (services.PhotoStore, error) {
	var (
		store services.PhotoStore
		err   error
	)
	switch strings.ToLower(cfg.PhotoStore) {
	case "", "local":
		store = NewLocalStore(cfg.UploadDir, "/uploads")
	case "cloudinary":
		store, err = asPhotoStore(NewCloudinaryStore(cfg))
	case "minio":
		store, err = asPhotoStore(NewMinioStore(ctx, cfg))
	case "s3":
		store, err = asPhotoStore(NewS3Store(ctx, cfg))
	default:
		err = fmt.Errorf("unknown photo store %q", cfg.PhotoStore)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}

func asPhotoStore[T services.PhotoStore](store T, err error) (services.PhotoStore, error) {
	if err != nil {
		return nil, err
	}
	return store, nil
}

// objectKey returns folder/<uuid><ext> with a lowercased extension.
func objectKey(folder, filename string) string {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

func contentType(filename string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
