package cmd

import (
	"fmt"
	"os"

	"mhr-catalog/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mhr-catalog",
	Short: "Monster Hunter Rise equipment catalog builder",
	Long: `mhr-catalog normalizes a raw Monster Hunter Rise data dump into skill,
decoration and armor catalogs, publishes them to object storage and serves them
over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Development config for readable timestamps on the console.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
