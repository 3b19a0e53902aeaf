package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"mhr-catalog/core/loader"
	"mhr-catalog/core/logger"
	"mhr-catalog/core/middleware/auth"
	"mhr-catalog/core/middleware/rayid"
	"mhr-catalog/feature/catalog"
	catalogreconcile "mhr-catalog/feature/catalog/reconcile"
	"mhr-catalog/feature/catalog/source"
	"mhr-catalog/feature/integrity"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server serving the catalogs and initializes all enabled features.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		cfg := env.cfg
		logg := env.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		client, err := env.storage()
		if err != nil {
			return err
		}

		src, err := env.catalogSource()
		if err != nil {
			return err
		}
		store := catalog.NewStore(src, cfg.Pipeline.CacheTTL(), logg)
		logg.Info("Serving catalogs", zap.String("source", src.Location()))

		built := func(location string) source.Source { return source.NewDir(location) }
		published := func(location string) source.Source {
			return source.NewBucket(client, cfg.Storage.Bucket, location)
		}
		specs := catalogreconcile.Specs(built, published, cfg.Pipeline.OutputDir, cfg.Pipeline.CatalogPrefix,
			catalogreconcile.WithCacheTTL(cfg.Pipeline.CacheTTL()))

		mgr := loader.NewManager(logg)
		mgr.Register(catalog.NewFeature(
			catalog.NewService(store, specs, logg),
			cfg.Server.FeatureEnabled("catalog"),
		))
		mgr.Register(integrity.NewFeature(
			integrity.NewService(store, &integrity.Published{
				Client: client,
				Bucket: cfg.Storage.Bucket,
				Prefix: cfg.Pipeline.CatalogPrefix,
			}, logg),
			cfg.Server.FeatureEnabled("integrity"),
		))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// Ray id first so every later log line carries it.
		app.Use(rayid.New())
		app.Use(requestLogger(logg))
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.Strings("features", loaded))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// requestLogger logs every request with its ray id, status and duration.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		l := logger.WithRayID(logg, c)

		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}
