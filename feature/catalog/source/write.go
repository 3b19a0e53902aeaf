package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"mhr-catalog/core/storage"
	"mhr-catalog/feature/catalog/models"

	"go.uber.org/zap"
)

const contentType = "application/json"

// WriteDir writes the three catalogs into dir, creating it if needed.
func WriteDir(dir string, c *models.Catalogs, logger *zap.Logger) error {
	files, err := EncodeCatalogs(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	for _, name := range Files {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, files[name], 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", p, err)
		}
		logger.Info("Catalog written", zap.String("file", p), zap.Int("bytes", len(files[name])))
	}
	return nil
}

// Publish uploads the three catalogs under prefix, creating the bucket if needed.
func Publish(ctx context.Context, client storage.Client, bucket, region, prefix string, c *models.Catalogs, logger *zap.Logger) error {
	files, err := EncodeCatalogs(c)
	if err != nil {
		return err
	}
	if err := storage.EnsureBucket(ctx, client, bucket, region); err != nil {
		return err
	}

	for _, name := range Files {
		key := ObjectName(prefix, name)
		if err := storage.WriteObject(ctx, client, bucket, key, files[name], contentType); err != nil {
			return err
		}
		logger.Info("Catalog published", zap.String("bucket", bucket), zap.String("object", key))
	}
	return nil
}
