package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/domainforge/domainforge/internal/core/score"
)

var scorePrompt string

var scoreCmd = &cobra.Command{
	Use:   "score DOMAIN",
	Short: "Compute the quality score for a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result := score.Score(args[0], scorePrompt)

		raw, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode score: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringVarP(&scorePrompt, "prompt", "p", "", "originating idea for relevance scoring")
	rootCmd.AddCommand(scoreCmd)
}
