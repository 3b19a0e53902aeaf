// Package config loads the application configuration.
//
// Settings come from environment variables, optionally seeded from a .env file
// with godotenv, and are decoded with Viper. Every field declares its key with a
// mapstructure tag and its fallback with a default tag; nested keys map to
// upper-case environment names joined by underscores.
//
// # Sections
//
//   - server: HTTP port, API key and enabled features
//   - storage: S3/MinIO endpoint, credentials and bucket
//   - log: level and format
//   - pipeline: dump location, output directory, catalog prefix, served source
//     and the dump section paths
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Pipeline.OutputDir)
package config
