package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/posting"
	"github.com/jonathan/resume-optimizer/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile against a job posting",
	Long: `Compute the weighted ATS score of a profile against a job posting.

The posting can be a local .txt, .md or .html file, an http(s) URL, or inline
text. The report holds the six component scores, the composite, the matched and
missing posting keywords and the weak verbs found in experience bullets.`,
	RunE: runScore,
}

var (
	scoreProfileFile string
	scorePostingRef  string
	scorePostingText string
	scoreOutputFile  string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfileFile, "profile", "p", "", "Path to Profile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scorePostingRef, "posting", "j", "", "Path or URL of the job posting")
	scoreCmd.Flags().StringVar(&scorePostingText, "posting-text", "", "Inline job posting text")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output ScoreReport JSON file (default stdout)")

	if err := scoreCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	profile, err := readProfile(scoreProfileFile)
	if err != nil {
		return err
	}

	ctx := context.Background()
	postingText, err := resolvePosting(ctx, posting.NewLoader(cfg.Fetch, logger), scorePostingRef, scorePostingText)
	if err != nil {
		return err
	}

	report := scoring.Score(profile, postingText)
	logger.Debug("scored profile",
		zap.String("profile_id", profile.ID),
		zap.Float64("composite", report.Breakdown.Composite))

	if verbose {
		observability.NewPrinter(stderr).PrintScoreReport(&report)
	}
	return writeJSON(scoreOutputFile, report)
}
