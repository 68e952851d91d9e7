package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domainforge/domainforge/internal/observability"
	"github.com/domainforge/domainforge/internal/output"
)

var checkPrompt string

var checkCmd = &cobra.Command{
	Use:   "check DOMAIN [DOMAIN...]",
	Short: "Check availability of one or more domains",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.NewCLILogger(verbose)
		defer logger.Sync() // nolint:errcheck // stderr sync is best-effort

		d := buildDeps(cfg, logger, false)
		defer d.cache.Close() // nolint:errcheck

		result, err := d.service.Check(cmd.Context(), args, checkPrompt)
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
	checkCmd.Flags().StringVarP(&checkPrompt, "prompt", "p", "", "originating idea for relevance scoring")
	rootCmd.AddCommand(checkCmd)
}
