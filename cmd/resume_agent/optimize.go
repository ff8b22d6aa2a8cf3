package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/optimizer"
	"github.com/jonathan/resume-optimizer/internal/posting"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Propose edits that raise a profile's ATS score",
	Long: `Run the rewrite generators over a profile and report the proposed changes,
the rewritten profile snapshot and the original and estimated scores.

Generator toggles and the keyword cap default to the configured optimizer
options. An --options file overlays them, and the --skip-* flags switch
individual generators off. With --save the run is persisted to the
version-history database.`,
	RunE: runOptimize,
}

var (
	optimizeProfileFile    string
	optimizePostingRef     string
	optimizePostingText    string
	optimizeOptionsFile    string
	optimizeOutputFile     string
	optimizeMaxKeywords    int
	optimizeRescore        bool
	optimizeSkipRewrite    bool
	optimizeSkipKeywords   bool
	optimizeSkipQuantify   bool
	optimizeSkipFormatting bool
	optimizeSeed           uint64
	optimizeSave           bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeProfileFile, "profile", "p", "", "Path to Profile JSON file (required)")
	optimizeCmd.Flags().StringVarP(&optimizePostingRef, "posting", "j", "", "Path or URL of the job posting")
	optimizeCmd.Flags().StringVar(&optimizePostingText, "posting-text", "", "Inline job posting text")
	optimizeCmd.Flags().StringVar(&optimizeOptionsFile, "options", "", "Path to OptimizationOptions JSON file")
	optimizeCmd.Flags().StringVarP(&optimizeOutputFile, "out", "o", "", "Path to output OptimizationResult JSON file (default stdout)")
	optimizeCmd.Flags().IntVar(&optimizeMaxKeywords, "max-keywords", 0, "Maximum keyword injections (default from config)")
	optimizeCmd.Flags().BoolVar(&optimizeRescore, "rescore", false, "Also run the full scoring engine over the rewritten profile")
	optimizeCmd.Flags().BoolVar(&optimizeSkipRewrite, "skip-rewrite", false, "Do not rewrite bullets")
	optimizeCmd.Flags().BoolVar(&optimizeSkipKeywords, "skip-keywords", false, "Do not inject missing keywords")
	optimizeCmd.Flags().BoolVar(&optimizeSkipQuantify, "skip-quantify", false, "Do not suggest metrics")
	optimizeCmd.Flags().BoolVar(&optimizeSkipFormatting, "skip-formatting", false, "Do not standardize formatting")
	optimizeCmd.Flags().Uint64Var(&optimizeSeed, "seed", 0, "Seed for verb and template choices (0 uses config, then random)")
	optimizeCmd.Flags().BoolVar(&optimizeSave, "save", false, "Persist the run to the version-history database")

	if err := optimizeCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	profile, err := readProfile(optimizeProfileFile)
	if err != nil {
		return err
	}

	opts, err := readOptions(optimizeOptionsFile, cfg.OptimizationOptions())
	if err != nil {
		return err
	}
	if optimizeMaxKeywords != 0 {
		opts.MaxKeywords = optimizeMaxKeywords
	}
	if optimizeRescore {
		opts.Rescore = true
	}
	if optimizeSkipRewrite {
		opts.RewriteBullets = false
	}
	if optimizeSkipKeywords {
		opts.InjectKeywords = false
	}
	if optimizeSkipQuantify {
		opts.SuggestQuantifications = false
	}
	if optimizeSkipFormatting {
		opts.StandardizeFormatting = false
	}

	ctx := context.Background()
	postingText, err := resolvePosting(ctx, posting.NewLoader(cfg.Fetch, logger), optimizePostingRef, optimizePostingText)
	if err != nil {
		return err
	}

	result, err := optimizer.New(randomSource(cfg, optimizeSeed)).Optimize(profile, postingText, opts)
	if err != nil {
		return fmt.Errorf("failed to optimize profile: %w", err)
	}
	logger.Info("optimized profile",
		zap.String("run_id", result.RunID),
		zap.Float64("original_score", result.OriginalScore),
		zap.Float64("estimated_score", result.EstimatedScore),
		zap.Int("changes", result.Summary.Total))

	if optimizeSave {
		st, err := openStore(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to open history store: %w", err)
		}
		defer st.Close()
		if err := st.SaveRun(ctx, result, postingText); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		logger.Info("saved run", zap.String("run_id", result.RunID))
	}

	if verbose {
		printer := observability.NewPrinter(stderr)
		printer.PrintOptimizationResult(result)
		printer.PrintChanges(result.Changes)
	}
	return writeJSON(optimizeOutputFile, result)
}
