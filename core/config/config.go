package config

import (
	"reflect"
	"strings"

	"mhr-catalog/core/logger"
	"mhr-catalog/core/server"
	"mhr-catalog/core/storage"
	"mhr-catalog/feature/catalog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application, one section per package.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the bucket holding dumps and published catalogs.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Pipeline holds the dump location, output settings and section paths.
	Pipeline catalog.Config `mapstructure:"pipeline"`
}

// LoadConfig loads configuration from the environment and the .env file in path.
// Values already present in the process environment are overridden by the file.
func LoadConfig(path string) (*Config, error) {
	envPath := ".env"
	if path != "." && path != "" {
		envPath = path + "/.env"
	}

	// A missing .env is normal outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// PIPELINE_OUTPUT_DIR -> pipeline.output_dir
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the sections with constrained values.
func (c *Config) Validate() error {
	return c.Pipeline.Validate()
}

// bindValues registers every tagged field of iface with v, using the default tag
// as its value. Keys must be registered for AutomaticEnv to pick them up on
// Unmarshal, so fields without a default are registered empty.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
