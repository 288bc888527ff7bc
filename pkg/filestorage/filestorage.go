package filestorage

import (
	"context"
	"fmt"
	"mime/multipart"

	"turftrack/pkg/config"

	"go.uber.org/zap"
)

// FileStorageInterface is the contract for storing uploaded images. Save
// returns a path or URL the client can fetch the file from.
type FileStorageInterface interface {
	Save(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}

// New picks the backend from config: local disk by default, S3-compatible
// (MinIO) when STORAGE_DRIVER=s3.
func New(cfg config.StorageConfig, logger *zap.Logger) (FileStorageInterface, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalFileStorage(cfg.BasePath)
	case "s3":
		return NewS3FileStorage(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
