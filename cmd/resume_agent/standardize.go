package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/formatting"
)

var standardizeCmd = &cobra.Command{
	Use:   "standardize",
	Short: "Standardize headings, dates and characters in resume text",
	Long: `Run the heading, date and cleanup passes over resume text and report the
result with every substitution made. Input comes from --in or --text.`,
	RunE: runStandardize,
}

var (
	standardizeInputFile  string
	standardizeText       string
	standardizeOutputFile string
)

func init() {
	standardizeCmd.Flags().StringVarP(&standardizeInputFile, "in", "i", "", "Path to a text file")
	standardizeCmd.Flags().StringVarP(&standardizeText, "text", "t", "", "Inline text")
	standardizeCmd.Flags().StringVarP(&standardizeOutputFile, "out", "o", "", "Path to output JSON file (default stdout)")

	rootCmd.AddCommand(standardizeCmd)
}

func runStandardize(_ *cobra.Command, _ []string) error {
	text, err := readText(standardizeInputFile, standardizeText)
	if err != nil {
		return err
	}
	return writeJSON(standardizeOutputFile, formatting.StandardizeAll(text))
}
