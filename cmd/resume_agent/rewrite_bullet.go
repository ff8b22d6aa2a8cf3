package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/rewriting"
)

var rewriteBulletCmd = &cobra.Command{
	Use:   "rewrite-bullet",
	Short: "Rewrite one achievement bullet with a strong action verb",
	Long: `Replace a weak opening phrase or verb in a single bullet with a strong
action verb. Context text (for example the posting) steers the verb family.`,
	RunE: runRewriteBullet,
}

var (
	rewriteBulletText    string
	rewriteBulletContext string
	rewriteBulletSeed    uint64
	rewriteBulletOutput  string
)

func init() {
	rewriteBulletCmd.Flags().StringVarP(&rewriteBulletText, "bullet", "b", "", "Bullet text to rewrite (required)")
	rewriteBulletCmd.Flags().StringVarP(&rewriteBulletContext, "context", "c", "", "Context text used to pick the verb family")
	rewriteBulletCmd.Flags().Uint64Var(&rewriteBulletSeed, "seed", 0, "Seed for verb choice (0 uses config, then random)")
	rewriteBulletCmd.Flags().StringVarP(&rewriteBulletOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := rewriteBulletCmd.MarkFlagRequired("bullet"); err != nil {
		panic(fmt.Sprintf("failed to mark bullet flag as required: %v", err))
	}

	rootCmd.AddCommand(rewriteBulletCmd)
}

func runRewriteBullet(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	result := rewriting.NewRewriter(randomSource(cfg, rewriteBulletSeed)).Rewrite(rewriteBulletText, rewriteBulletContext)
	return writeJSON(rewriteBulletOutput, result)
}
