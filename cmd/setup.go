package cmd

import (
	"fmt"

	"mhr-catalog/core/config"
	"mhr-catalog/core/logger"
	"mhr-catalog/core/storage"
	"mhr-catalog/feature/catalog"
	"mhr-catalog/feature/catalog/source"

	"go.uber.org/zap"
)

// environment is the configuration and logger every command starts from.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return &environment{cfg: cfg, logger: l}, nil
}

func (e *environment) storage() (storage.Client, error) {
	client, err := storage.NewClient(e.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

// catalogSource returns the configured source of built catalogs, the output
// directory or the published bucket prefix.
func (e *environment) catalogSource() (source.Source, error) {
	if e.cfg.Pipeline.Source != catalog.SourceBucket {
		return source.NewDir(e.cfg.Pipeline.OutputDir), nil
	}
	client, err := e.storage()
	if err != nil {
		return nil, err
	}
	return source.NewBucket(client, e.cfg.Storage.Bucket, e.cfg.Pipeline.CatalogPrefix), nil
}
