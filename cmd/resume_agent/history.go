package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the score trend of a profile's stored optimization runs",
	Long: `Read the stored optimization runs of a profile from the version-history
database and report their composite scores in run order, a moving average over
--window runs and whether the scores never decreased.`,
	RunE: runHistory,
}

// HistoryOutput is the JSON written by history
type HistoryOutput struct {
	ProfileID     string             `json:"profile_id"`
	Runs          []store.RunSummary `json:"runs"`
	Scores        []float64          `json:"scores"`
	MovingAverage []float64          `json:"moving_average"`
	Window        int                `json:"window"`
	NonDecreasing bool               `json:"non_decreasing"`
}

var (
	historyProfileID  string
	historyWindow     int
	historyLimit      int
	historyOutputFile string
)

func init() {
	historyCmd.Flags().StringVar(&historyProfileID, "profile-id", "", "Profile ID whose runs to read (required)")
	historyCmd.Flags().IntVarP(&historyWindow, "window", "w", 3, "Moving average window in runs")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", store.DefaultListLimit, "Maximum runs listed, newest first")
	historyCmd.Flags().StringVarP(&historyOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := historyCmd.MarkFlagRequired("profile-id"); err != nil {
		panic(fmt.Sprintf("failed to mark profile-id flag as required: %v", err))
	}

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer st.Close()

	points, err := st.ScoreHistory(ctx, historyProfileID)
	if err != nil {
		return fmt.Errorf("failed to read score history: %w", err)
	}
	runs, err := st.ListRuns(ctx, historyProfileID, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	scores := store.Scores(points)
	avg, err := scoring.MovingAverage(scores, historyWindow)
	if err != nil {
		return err
	}

	out := HistoryOutput{
		ProfileID:     historyProfileID,
		Runs:          runs,
		Scores:        scores,
		MovingAverage: avg,
		Window:        historyWindow,
		NonDecreasing: scoring.IsNonDecreasing(scores),
	}

	if verbose {
		observability.NewPrinter(stderr).PrintTrend(out.ProfileID, out.Scores, out.MovingAverage, out.NonDecreasing)
	}
	return writeJSON(historyOutputFile, out)
}
