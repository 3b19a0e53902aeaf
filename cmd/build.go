package cmd

import (
	"fmt"
	"os"
	"time"

	"mhr-catalog/core/storage"
	"mhr-catalog/feature/catalog"
	"mhr-catalog/feature/catalog/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildFromBucket bool
	buildPublish    bool
	buildInput      string
	buildOutput     string
)

// buildCmd runs the normalization pipeline.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the skill, decoration and armor catalogs from a dump",
	Long: `Reads the raw extraction dump, normalizes it into armor.json, skill.json and
deco.json and writes them to the output directory.

Examples:
  # Build from the local dump
  build

  # Build from the dump object in the bucket and publish the result
  build --from-bucket --publish`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&buildFromBucket, "from-bucket", false, "Read the dump from pipeline.dump_object in the bucket")
	buildCmd.Flags().BoolVar(&buildPublish, "publish", false, "Publish the catalogs under pipeline.catalog_prefix in the bucket")
	buildCmd.Flags().StringVar(&buildInput, "input", "", "Local dump path (overrides pipeline.input)")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "Output directory (overrides pipeline.output_dir)")

	RootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	start := time.Now()

	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	l := env.logger
	defer l.Sync()

	pcfg := env.cfg.Pipeline
	if buildInput != "" {
		pcfg.Input = buildInput
	}
	if buildOutput != "" {
		pcfg.OutputDir = buildOutput
	}

	var client storage.Client
	if buildFromBucket || buildPublish {
		if client, err = env.storage(); err != nil {
			return err
		}
	}

	var data []byte
	if buildFromBucket {
		l.Info("Reading dump from bucket", zap.String("bucket", env.cfg.Storage.Bucket), zap.String("object", pcfg.DumpObject))
		data, err = storage.ReadObject(ctx, client, env.cfg.Storage.Bucket, pcfg.DumpObject)
	} else {
		l.Info("Reading dump", zap.String("file", pcfg.Input))
		data, err = os.ReadFile(pcfg.Input)
	}
	if err != nil {
		return fmt.Errorf("failed to read dump: %w", err)
	}

	dump, err := catalog.LoadDump(data, pcfg.Sections)
	if err != nil {
		return err
	}

	catalogs, err := catalog.NewPipeline(l).Run(dump)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if err := source.WriteDir(pcfg.OutputDir, catalogs, l); err != nil {
		return err
	}

	if buildPublish {
		err := source.Publish(ctx, client, env.cfg.Storage.Bucket, env.cfg.Storage.Region, pcfg.CatalogPrefix, catalogs, l)
		if err != nil {
			return fmt.Errorf("failed to publish catalogs: %w", err)
		}
	}

	l.Info("Build completed",
		zap.Int("skills", len(catalogs.Skills)),
		zap.Int("decorations", len(catalogs.Decorations)),
		zap.Int("armors", len(catalogs.Armors)),
		zap.String("output", pcfg.OutputDir),
		zap.Bool("published", buildPublish),
		zap.Duration("execution_time", time.Since(start)),
	)
	return nil
}
