// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/formatting"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, ending in "..." when cut
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to limit items as bullets with an overflow line
func writeList(sb *strings.Builder, heading string, items []string, limit int) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintScoreReport outputs the component breakdown and keyword lists of a score report.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	b := report.Breakdown
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Composite:            %6.2f\n", b.Composite))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keyword match:        %6.2f\n", b.KeywordMatch))
	sb.WriteString(fmt.Sprintf("Skill relevance:      %6.2f\n", b.SkillRelevance))
	sb.WriteString(fmt.Sprintf("Section completeness: %6.2f\n", b.SectionCompleteness))
	sb.WriteString(fmt.Sprintf("Experience impact:    %6.2f\n", b.ExperienceImpact))
	sb.WriteString(fmt.Sprintf("Quantification:       %6.2f\n", b.Quantification))
	sb.WriteString(fmt.Sprintf("Action verbs:         %6.2f\n", b.ActionVerbStrength))
	sb.WriteString("\n")

	writeList(&sb, "Matched keywords", report.MatchedKeywords, maxItemsToShow)
	writeList(&sb, "Missing keywords", report.MissingKeywords, maxItemsToShow)
	writeList(&sb, "Weak verbs", report.WeakVerbs, 3)

	p.printBox("ATS SCORE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintOptimizationResult outputs the score movement and change counts of a run.
func (p *Printer) PrintOptimizationResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:       %s\n", result.RunID))
	if result.ProfileID != "" {
		sb.WriteString(fmt.Sprintf("Profile:   %s\n", result.ProfileID))
	}
	sb.WriteString(fmt.Sprintf("Original:  %6.2f\n", result.OriginalScore))
	sb.WriteString(fmt.Sprintf("Estimated: %6.2f\n", result.EstimatedScore))
	if result.RescoredScore != nil {
		sb.WriteString(fmt.Sprintf("Rescored:  %6.2f\n", *result.RescoredScore))
	}
	sb.WriteString("\n")

	s := result.Summary
	sb.WriteString(fmt.Sprintf("Bullet rewrites:     %d\n", s.BulletRewrites))
	sb.WriteString(fmt.Sprintf("Keyword injections:  %d\n", s.KeywordInjections))
	sb.WriteString(fmt.Sprintf("Metric suggestions:  %d\n", s.QuantificationSuggestions))
	sb.WriteString(fmt.Sprintf("Formatting fixes:    %d\n", s.FormattingFixes))
	sb.WriteString(fmt.Sprintf("Total:               %d", s.Total))

	p.printBox("OPTIMIZATION RESULT", sb.String())
}

// PrintChanges outputs the first proposed changes with their before/after text.
func (p *Printer) PrintChanges(changes []types.Change) {
	if len(changes) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Proposed %d changes:\n\n", len(changes)))

	count := min(len(changes), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := changes[i]
		sb.WriteString(fmt.Sprintf("[%s] %s\n", c.Kind, c.Section))
		if c.OldText != "" {
			sb.WriteString(fmt.Sprintf("  - %s\n", c.OldText))
		}
		if c.NewText != "" {
			sb.WriteString(fmt.Sprintf("  + %s\n", c.NewText))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(changes) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more changes", len(changes)-maxItemsToShow))
	}

	p.printBox("PROPOSED CHANGES", sb.String())
}

// PrintATSCheck outputs the ATS-friendliness verdict and its issues.
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (p *Printer) PrintATSCheck(check *formatting.ATSCheck) {
	if check == nil {
		return
	}
	if len(check.Issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ATS FRIENDLY (100)")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %.0f\n\n", check.Score))
	for i, issue := range check.Issues {
		sb.WriteString(fmt.Sprintf("⚠ %s", issue))
		if i < len(check.Issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ATS ISSUES", sb.String())
}

// PrintTrend outputs a score series with its moving average.
func (p *Printer) PrintTrend(profileID string, scores, movingAverage []float64, nonDecreasing bool) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Profile: %s\n", profileID))
	sb.WriteString(fmt.Sprintf("Runs:    %d\n\n", len(scores)))
	sb.WriteString("Scores:  " + joinScores(scores) + "\n")
	if len(movingAverage) > 0 {
		sb.WriteString("Average: " + joinScores(movingAverage) + "\n")
	}
	if nonDecreasing {
		sb.WriteString("\nTrend: ↑ non-decreasing")
	} else {
		sb.WriteString("\nTrend: ↓ regressed at least once")
	}

	p.printBox("SCORE HISTORY", sb.String())
}

func joinScores(scores []float64) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%.1f", s)
	}
	return strings.Join(parts, " ")
}
