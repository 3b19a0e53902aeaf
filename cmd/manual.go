package cmd

import (
	"fmt"
	"os"

	"mhr-catalog/feature/catalog"
	"mhr-catalog/feature/manual"

	"github.com/spf13/cobra"
)

var manualOutput string

// manualCmd is the parent command for hand-entered records.
var manualCmd = &cobra.Command{
	Use:   "manual",
	Short: "Resolve hand-entered anomaly armor and talisman records",
	Long: `Parses CSV files of hand-entered records, resolves armor and skill names in
any language against the built catalogs and prints the resolved records.`,
}

var anomalyCmd = &cobra.Command{
	Use:   "anomaly <file>",
	Short: "Resolve anomaly armor rows",
	Long:  `Rows: name,def,fire,water,elec,ice,dragon,slot1,slot2,slot3,(skill,level)*`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runManual(cmd, args[0], func(f *os.File, dict *manual.Dictionary, env *environment) (any, error) {
			return manual.ParseAnomalies(f, dict, env.logger)
		})
	},
}

var talismanCmd = &cobra.Command{
	Use:   "talisman <file>",
	Short: "Resolve talisman rows",
	Long:  `Rows: skill1,level1,skill2,level2,slot1,slot2,slot3`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runManual(cmd, args[0], func(f *os.File, dict *manual.Dictionary, env *environment) (any, error) {
			return manual.ParseTalismans(f, dict, env.logger)
		})
	},
}

func init() {
	addOutputFlag(anomalyCmd, &manualOutput)
	addOutputFlag(talismanCmd, &manualOutput)
	manualCmd.AddCommand(anomalyCmd, talismanCmd)
	RootCmd.AddCommand(manualCmd)
}

func runManual(cmd *cobra.Command, path string, parse func(*os.File, *manual.Dictionary, *environment) (any, error)) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	defer env.logger.Sync()

	src, err := env.catalogSource()
	if err != nil {
		return err
	}
	idx, err := catalog.NewStore(src, 0, env.logger).Get(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load catalogs: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := parse(f, manual.NewDictionary(idx, env.logger), env)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return printValue(cmd.OutOrStdout(), records, manualOutput)
}
