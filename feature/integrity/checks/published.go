package checks

import (
	"context"
	"fmt"

	"mhr-catalog/core/storage"
	"mhr-catalog/feature/catalog/source"

	"github.com/minio/minio-go/v7"
)

// PublishedCheckName is the name of the bucket check.
const PublishedCheckName = "published"

// CheckPublished reports catalog files missing or empty under prefix in bucket.
func CheckPublished(ctx context.Context, client storage.Client, bucket, prefix string) ([]Issue, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	var issues []Issue
	for _, name := range source.Files {
		key := source.ObjectName(prefix, name)
		info, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
		if err != nil {
			if minio.ToErrorResponse(err).Code != "NoSuchKey" {
				return nil, fmt.Errorf("failed to stat %s: %w", key, err)
			}
			issues = append(issues, Issue{
				Severity: SeverityError,
				Catalog:  name,
				ID:       key,
				Message:  "catalog not published",
			})
			continue
		}
		if info.Size == 0 {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Catalog:  name,
				ID:       key,
				Message:  "published catalog is empty",
			})
		}
	}
	return issues, nil
}
