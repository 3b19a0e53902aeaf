package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"mhr-catalog/core/reconcile"
	catalogreconcile "mhr-catalog/feature/catalog/reconcile"
	"mhr-catalog/feature/catalog/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	diffAll      bool
	diffExitCode bool
)

// errCatalogsChanged is returned with --exit-code when the catalogs differ.
var errCatalogsChanged = errors.New("built catalogs differ from the published ones")

// diffCmd compares the built catalogs with the published ones.
var diffCmd = &cobra.Command{
	Use:   "diff [kind...]",
	Short: "Compare built catalogs with the published ones",
	Long: `Reconciles the catalogs in the output directory against the ones published
in the bucket and reports added, removed and changed entries per catalog.

Examples:
  # Report every catalog
  diff

  # Only armors, including unchanged entries
  diff armors --all

  # Fail when a publish would change anything
  diff --exit-code`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffAll, "all", false, "Include unchanged entries in the report")
	diffCmd.Flags().BoolVar(&diffExitCode, "exit-code", false, "Exit non-zero when the catalogs differ")

	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	l := env.logger
	defer l.Sync()

	for _, kind := range args {
		if !slices.Contains(catalogreconcile.Kinds[:], lookupKind(kind)) {
			return fmt.Errorf("unknown catalog kind %q", kind)
		}
	}

	client, err := env.storage()
	if err != nil {
		return err
	}

	built := func(location string) source.Source { return source.NewDir(location) }
	published := func(location string) source.Source {
		return source.NewBucket(client, env.cfg.Storage.Bucket, location)
	}
	specs := catalogreconcile.Specs(built, published, env.cfg.Pipeline.OutputDir, env.cfg.Pipeline.CatalogPrefix)

	changed := false
	for _, spec := range specs {
		if len(args) > 0 && !slices.ContainsFunc(args, func(k string) bool { return lookupKind(k) == spec.Adapter.Name() }) {
			continue
		}

		l.Info("Planning reconciliation...", zap.String("catalog", spec.Adapter.Name()))
		plan, err := reconcile.ReconcileWithPlan(ctx, spec, !diffAll)
		if err != nil {
			return fmt.Errorf("failed to reconcile %s: %w", spec.Adapter.Name(), err)
		}

		printReconcileReport(l, plan)
		printResults(cmd.OutOrStdout(), plan)
		changed = changed || plan.Summary.HasChanges()
	}

	if diffExitCode && changed {
		return errCatalogsChanged
	}
	return nil
}

// printReconcileReport logs the summary of a plan.
func printReconcileReport(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary
	l.Info("Reconciliation report",
		zap.String("catalog", plan.Catalog),
		zap.Int("total_items", s.TotalItems),
		zap.Int("added", s.Added),
		zap.Int("removed", s.Removed),
		zap.Int("changed", s.Changed),
		zap.Int("unchanged", s.Unchanged),
	)
}

// printResults writes one line per result and one indented line per mismatch.
func printResults(w io.Writer, plan *reconcile.ReconcilePlan) {
	for _, r := range plan.Results {
		fmt.Fprintf(w, "%-9s %s/%s  %s\n", r.Status(), plan.Catalog, r.ID, r.Name)
		for _, m := range r.Mismatch {
			fmt.Fprintf(w, "          %s\n", m)
		}
	}
}
