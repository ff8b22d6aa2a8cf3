package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/formatting"
	"github.com/jonathan/resume-optimizer/internal/observability"
)

var atsCheckCmd = &cobra.Command{
	Use:   "ats-check",
	Short: "Check resume text for ATS-unfriendly formatting",
	Long: `Score resume text from 100 down for formatting that breaks ATS parsing:
tab characters, runs of whitespace, smart characters, non-standard section
headings and numeric dates. Text scoring 80 or more is ATS friendly.
With --strict the command fails when the text is not.`,
	RunE: runATSCheck,
}

var (
	atsCheckInputFile  string
	atsCheckText       string
	atsCheckOutputFile string
	atsCheckStrict     bool
)

func init() {
	atsCheckCmd.Flags().StringVarP(&atsCheckInputFile, "in", "i", "", "Path to a text file")
	atsCheckCmd.Flags().StringVarP(&atsCheckText, "text", "t", "", "Inline text")
	atsCheckCmd.Flags().StringVarP(&atsCheckOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	atsCheckCmd.Flags().BoolVar(&atsCheckStrict, "strict", false, "Exit with an error when the text is not ATS friendly")

	rootCmd.AddCommand(atsCheckCmd)
}

func runATSCheck(_ *cobra.Command, _ []string) error {
	text, err := readText(atsCheckInputFile, atsCheckText)
	if err != nil {
		return err
	}

	check := formatting.ValidateATSFriendly(text)
	if verbose {
		observability.NewPrinter(stderr).PrintATSCheck(&check)
	}
	if err := writeJSON(atsCheckOutputFile, check); err != nil {
		return err
	}

	if atsCheckStrict && !check.IsATSFriendly {
		return fmt.Errorf("text is not ATS friendly (score %.0f, %d issues)", check.Score, len(check.Issues))
	}
	return nil
}
