// Package storage wraps the MinIO Go client for the catalog pipeline.
//
// Raw game dumps can be read from a bucket and the generated catalogs published back
// under a prefix, from where the HTTP server and the diff command read them. The
// Client interface is mocked in core/storage/mocks.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, "dumps/latest.json")
package storage
