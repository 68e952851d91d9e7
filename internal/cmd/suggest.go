package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domainforge/domainforge/internal/observability"
	"github.com/domainforge/domainforge/internal/output"
)

var suggestCount int

var suggestCmd = &cobra.Command{
	Use:   "suggest PROMPT",
	Short: "Generate and rank candidate domains for an idea",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.NewCLILogger(verbose)
		defer logger.Sync() // nolint:errcheck // stderr sync is best-effort

		d := buildDeps(cfg, logger, false)
		defer d.cache.Close() // nolint:errcheck

		result, err := d.service.Suggest(cmd.Context(), args[0], suggestCount)
		if err != nil {
			return err
		}

		rendered, err := output.FormatBatch(result, output.Format(outputFormat))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestCount, "count", "n", 10, "number of stems to generate")
	rootCmd.AddCommand(suggestCmd)
}
