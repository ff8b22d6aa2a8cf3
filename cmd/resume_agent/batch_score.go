package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/posting"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var batchScoreCmd = &cobra.Command{
	Use:   "batch-score",
	Short: "Score one profile against many job postings",
	Long: `Load every posting (files or URLs) concurrently, score the profile against
each and report the results in input order with the index of the best match.`,
	RunE: runBatchScore,
}

// BatchScoreEntry is the score of one posting in a batch
type BatchScoreEntry struct {
	Posting string            `json:"posting"`
	Report  types.ScoreReport `json:"report"`
}

// BatchScoreOutput is the JSON written by batch-score
type BatchScoreOutput struct {
	Results   []BatchScoreEntry `json:"results"`
	BestIndex int               `json:"best_index"`
}

var (
	batchProfileFile string
	batchPostings    []string
	batchConcurrency int
	batchOutputFile  string
)

func init() {
	batchScoreCmd.Flags().StringVarP(&batchProfileFile, "profile", "p", "", "Path to Profile JSON file (required)")
	batchScoreCmd.Flags().StringSliceVarP(&batchPostings, "posting", "j", nil, "Path or URL of a job posting (repeatable, required)")
	batchScoreCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum postings loaded and scored at once")
	batchScoreCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := batchScoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := batchScoreCmd.MarkFlagRequired("posting"); err != nil {
		panic(fmt.Sprintf("failed to mark posting flag as required: %v", err))
	}

	rootCmd.AddCommand(batchScoreCmd)
}

func runBatchScore(_ *cobra.Command, _ []string) error {
	if len(batchPostings) == 0 {
		return fmt.Errorf("at least one --posting is required")
	}
	if batchConcurrency <= 0 {
		return fmt.Errorf("--concurrency must be positive")
	}

	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	profile, err := readProfile(batchProfileFile)
	if err != nil {
		return err
	}

	loader := posting.NewLoader(cfg.Fetch, logger)
	results := make([]BatchScoreEntry, len(batchPostings))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(batchConcurrency)
	for i, ref := range batchPostings {
		g.Go(func() error {
			p, err := loader.Load(ctx, ref)
			if err != nil {
				return fmt.Errorf("posting %d: %w", i, err)
			}
			results[i] = BatchScoreEntry{Posting: ref, Report: scoring.Score(profile, p.Text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := BatchScoreOutput{Results: results, BestIndex: bestIndex(results)}
	logger.Info("batch scored",
		zap.Int("postings", len(results)),
		zap.Int("best_index", out.BestIndex))
	return writeJSON(batchOutputFile, out)
}

// bestIndex returns the index of the highest composite score, first wins on ties
func bestIndex(results []BatchScoreEntry) int {
	best := 0
	for i, r := range results {
		if r.Report.Breakdown.Composite > results[best].Report.Breakdown.Composite {
			best = i
		}
	}
	return best
}
