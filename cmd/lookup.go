package cmd

import (
	"strings"

	"mhr-catalog/feature/catalog"
	catalogreconcile "mhr-catalog/feature/catalog/reconcile"

	"github.com/spf13/cobra"
)

var lookupOutput string

// lookupCmd prints one catalog entry.
var lookupCmd = &cobra.Command{
	Use:   "lookup <kind> <id>",
	Short: "Print one skill, decoration or armor entry",
	Long: `Prints one entry of the built catalogs as JSON or YAML. Kind is one of skills,
decorations or armors; the singular forms are accepted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer env.logger.Sync()

		src, err := env.catalogSource()
		if err != nil {
			return err
		}
		svc := catalog.NewService(catalog.NewStore(src, 0, env.logger), nil, env.logger)

		entry, err := svc.Lookup(cmd.Context(), lookupKind(args[0]), args[1])
		if err != nil {
			return err
		}

		return printValue(cmd.OutOrStdout(), entry, lookupOutput)
	},
}

func init() {
	addOutputFlag(lookupCmd, &lookupOutput)
	RootCmd.AddCommand(lookupCmd)
}

// lookupKind maps singular and short kind names to catalog kinds.
func lookupKind(kind string) string {
	switch strings.ToLower(kind) {
	case "skill":
		return catalogreconcile.KindSkills
	case "decoration", "deco", "decos":
		return catalogreconcile.KindDecorations
	case "armor":
		return catalogreconcile.KindArmors
	default:
		return strings.ToLower(kind)
	}
}
