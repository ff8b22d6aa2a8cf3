package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/quantify"
)

var suggestMetricsCmd = &cobra.Command{
	Use:   "suggest-metrics",
	Short: "Suggest metrics for an unquantified bullet",
	Long: `Classify the achievement in a bullet and propose metric placeholders
with an example phrasing. Bullets that already carry a number are reported
as quantified with no suggestions.`,
	RunE: runSuggestMetrics,
}

var (
	suggestMetricsBullet string
	suggestMetricsOutput string
)

func init() {
	suggestMetricsCmd.Flags().StringVarP(&suggestMetricsBullet, "bullet", "b", "", "Bullet text to analyze (required)")
	suggestMetricsCmd.Flags().StringVarP(&suggestMetricsOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := suggestMetricsCmd.MarkFlagRequired("bullet"); err != nil {
		panic(fmt.Sprintf("failed to mark bullet flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestMetricsCmd)
}

func runSuggestMetrics(_ *cobra.Command, _ []string) error {
	return writeJSON(suggestMetricsOutput, quantify.Suggest(suggestMetricsBullet))
}
