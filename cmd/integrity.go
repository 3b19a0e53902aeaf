package cmd

import (
	"errors"

	"mhr-catalog/feature/catalog"
	"mhr-catalog/feature/integrity"
	"mhr-catalog/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	integrityPublished bool
	integrityOutput    string
)

// errIntegrityFailed is returned when a check reports errors.
var errIntegrityFailed = errors.New("integrity checks failed")

// integrityCmd validates the built catalogs.
var integrityCmd = &cobra.Command{
	Use:   "integrity [check...]",
	Short: "Validate the built catalogs",
	Long: `Runs integrity checks over the catalogs read from the configured source and
exits non-zero when any check fails. Without arguments every check runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		l := env.logger
		defer l.Sync()

		src, err := env.catalogSource()
		if err != nil {
			return err
		}

		var published *integrity.Published
		if integrityPublished {
			client, err := env.storage()
			if err != nil {
				return err
			}
			published = &integrity.Published{
				Client: client,
				Bucket: env.cfg.Storage.Bucket,
				Prefix: env.cfg.Pipeline.CatalogPrefix,
			}
		}

		svc := integrity.NewService(catalog.NewStore(src, 0, l), published, l)
		reports, err := svc.Run(cmd.Context(), args...)
		if err != nil {
			return err
		}

		if integrityOutput != "" {
			if err := printValue(cmd.OutOrStdout(), reports, integrityOutput); err != nil {
				return err
			}
		} else {
			logReports(l, reports)
		}

		if integrity.Failed(reports) {
			return errIntegrityFailed
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&integrityPublished, "published", false, "Also check the catalogs published in the bucket")
	integrityCmd.Flags().StringVarP(&integrityOutput, "output", "o", "", "Print the reports as json or yaml instead of logging them")

	RootCmd.AddCommand(integrityCmd)
}

func logReports(l *zap.Logger, reports []checks.Report) {
	for _, r := range reports {
		if r.Status == checks.StatusOK {
			l.Info("Check passed", zap.String("check", r.Check))
			continue
		}
		l.Warn("Check reported issues", zap.String("check", r.Check), zap.String("status", r.Status), zap.Int("issues", len(r.Issues)))
		for _, issue := range r.Issues {
			l.Warn(issue.Message,
				zap.String("severity", string(issue.Severity)),
				zap.String("catalog", issue.Catalog),
				zap.String("id", issue.ID),
			)
		}
	}
}
