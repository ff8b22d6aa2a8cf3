package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/injection"
	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/posting"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var injectKeywordsCmd = &cobra.Command{
	Use:   "inject-keywords",
	Short: "Propose injections for posting keywords the profile lacks",
	Long: `Find the posting keywords missing from a profile and propose where each
one could go: a new skill entry for technical terms, or a phrase appended to
the most relevant experience or project description.`,
	RunE: runInjectKeywords,
}

// InjectKeywordsOutput is the JSON written by inject-keywords
type InjectKeywordsOutput struct {
	MissingKeywords []string       `json:"missing_keywords"`
	Changes         []types.Change `json:"changes"`
}

var (
	injectProfileFile string
	injectPostingRef  string
	injectPostingText string
	injectMaxKeywords int
	injectSeed        uint64
	injectOutputFile  string
)

func init() {
	injectKeywordsCmd.Flags().StringVarP(&injectProfileFile, "profile", "p", "", "Path to Profile JSON file (required)")
	injectKeywordsCmd.Flags().StringVarP(&injectPostingRef, "posting", "j", "", "Path or URL of the job posting")
	injectKeywordsCmd.Flags().StringVar(&injectPostingText, "posting-text", "", "Inline job posting text")
	injectKeywordsCmd.Flags().IntVar(&injectMaxKeywords, "max-keywords", 0, "Maximum keyword injections (default from config)")
	injectKeywordsCmd.Flags().Uint64Var(&injectSeed, "seed", 0, "Seed for template choice (0 uses config, then random)")
	injectKeywordsCmd.Flags().StringVarP(&injectOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := injectKeywordsCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(injectKeywordsCmd)
}

func runInjectKeywords(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	profile, err := readProfile(injectProfileFile)
	if err != nil {
		return err
	}

	postingText, err := resolvePosting(context.Background(), posting.NewLoader(cfg.Fetch, logger), injectPostingRef, injectPostingText)
	if err != nil {
		return err
	}

	maxKeywords := cfg.OptimizationOptions().MaxKeywords
	if injectMaxKeywords != 0 {
		maxKeywords = injectMaxKeywords
	}

	missing := keywords.Match(
		keywords.Extract(scoring.ProfileText(profile)),
		keywords.Extract(postingText),
	).Missing

	changes, err := injection.NewInjector(randomSource(cfg, injectSeed)).Inject(profile, missing, postingText, maxKeywords)
	if err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(stderr).PrintChanges(changes)
	}
	return writeJSON(injectOutputFile, InjectKeywordsOutput{MissingKeywords: missing, Changes: changes})
}
