package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"mhr-catalog/core/storage"
	"mhr-catalog/feature/catalog/models"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned when a catalog file does not exist at the location.
var ErrNotFound = errors.New("catalog not found")

// Source reads catalog files by name.
type Source interface {
	// Location describes where the files are read from.
	Location() string
	// Read returns the raw content of a catalog file.
	Read(ctx context.Context, name string) ([]byte, error)
}

// Dir reads catalogs from a local directory.
type Dir struct {
	dir string
}

// NewDir creates a source reading from dir.
func NewDir(dir string) *Dir {
	return &Dir{dir: dir}
}

// Location implements Source.
func (d *Dir) Location() string {
	return d.dir
}

// Read implements Source.
func (d *Dir) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(d.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, filepath.Join(d.dir, name))
	}
	return data, err
}

// Bucket reads catalogs published under a bucket prefix.
type Bucket struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucket creates a source reading bucket/prefix.
func NewBucket(client storage.Client, bucket, prefix string) *Bucket {
	return &Bucket{client: client, bucket: bucket, prefix: prefix}
}

// Location implements Source.
func (b *Bucket) Location() string {
	return b.bucket + "/" + b.prefix
}

// ObjectName returns the object key of a catalog file.
func (b *Bucket) ObjectName(name string) string {
	return ObjectName(b.prefix, name)
}

// Read implements Source.
func (b *Bucket) Read(ctx context.Context, name string) ([]byte, error) {
	key := b.ObjectName(name)
	data, err := storage.ReadObject(ctx, b.client, b.bucket, key)
	if err != nil {
		var resp minio.ErrorResponse
		if errors.As(err, &resp) && resp.Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, b.bucket, key)
		}
		return nil, err
	}
	return data, nil
}

// ObjectName joins a prefix and a catalog file name into an object key.
func ObjectName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// Skills reads the skill catalog.
func Skills(ctx context.Context, src Source) ([]models.Skill, error) {
	return load[models.Skill](ctx, src, SkillFile)
}

// Decorations reads the decoration catalog.
func Decorations(ctx context.Context, src Source) ([]models.Decoration, error) {
	return load[models.Decoration](ctx, src, DecorationFile)
}

// Armors reads the armor catalog.
func Armors(ctx context.Context, src Source) ([]models.Armor, error) {
	return load[models.Armor](ctx, src, ArmorFile)
}

// Load reads all three catalogs.
func Load(ctx context.Context, src Source) (*models.Catalogs, error) {
	skills, err := Skills(ctx, src)
	if err != nil {
		return nil, err
	}
	decorations, err := Decorations(ctx, src)
	if err != nil {
		return nil, err
	}
	armors, err := Armors(ctx, src)
	if err != nil {
		return nil, err
	}
	return &models.Catalogs{Armors: armors, Skills: skills, Decorations: decorations}, nil
}

func load[T any](ctx context.Context, src Source, name string) ([]T, error) {
	data, err := src.Read(ctx, name)
	if err != nil {
		return nil, err
	}
	return decode[T](name, data)
}
