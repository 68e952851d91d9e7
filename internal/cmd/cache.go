package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domainforge/domainforge/internal/core/cache"
	"github.com/domainforge/domainforge/internal/observability"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the availability cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache connection state and entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.NewCLILogger(verbose)
		defer logger.Sync() // nolint:errcheck

		d := buildDeps(cfg, logger, false)
		defer d.cache.Close() // nolint:errcheck

		stats := d.cache.Stats(cmd.Context())
		raw, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [NAMESPACE]",
	Short: "Clear one cache namespace, or everything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := observability.NewCLILogger(verbose)
		defer logger.Sync() // nolint:errcheck

		d := buildDeps(cfg, logger, false)
		defer d.cache.Close() // nolint:errcheck

		if len(args) == 0 {
			if err := d.cache.ClearAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "cleared all cache namespaces")
			return nil
		}

		removed, err := d.cache.ClearNamespace(cmd.Context(), cache.Namespace(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %d keys from %s\n", removed, args[0])
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
