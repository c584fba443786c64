package storage_fx

import (
	"context"

	"go.uber.org/fx"
	"vdpcza/internal/config"
	"vdpcza/pkg/storage"
)

var Module = fx.Provide(provideStorage)

func provideStorage(cfg *config.Config) (storage.ObjectStorage, error) {
	s3, err := storage.NewS3Storage(context.Background(), storage.Config{
		Bucket:        cfg.Storage.Bucket,
		Region:        cfg.Storage.Region,
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		return nil, err
	}
	return s3, nil
}
