package formatting

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

// ATS validation penalties
const (
	tabPenalty              = 10
	whitespacePenalty       = 5
	specialCharacterPenalty = 5
	headingPenalty          = 3
	datePenalty             = 5
	// atsFriendlyThreshold is the minimum score considered ATS friendly
	atsFriendlyThreshold = 80
)

// excessiveWhitespaceRegex matches three or more spaces or three or more newlines
var excessiveWhitespaceRegex = regexp.MustCompile(` {3,}|\n{3,}`)

// ATSCheck is the result of an ATS friendliness check
type ATSCheck struct {
	IsATSFriendly bool     `json:"is_ats_friendly"`
	Issues        []string `json:"issues"`
	Score         float64  `json:"score"`
}

// ValidateATSFriendly scores text from 100 down, deducting fixed penalties for formatting
// that commonly breaks ATS parsing. Text scoring 80 or more is considered friendly.
func ValidateATSFriendly(text string) ATSCheck {
	score := 100
	issues := []string{}

	if strings.Contains(text, "\t") {
		score -= tabPenalty
		issues = append(issues, "Contains tab characters")
	}

	if excessiveWhitespaceRegex.MatchString(text) {
		score -= whitespacePenalty
		issues = append(issues, "Contains excessive whitespace")
	}

	for _, sc := range vocabulary.SmartCharacters() {
		if strings.Contains(text, sc.Char) {
			score -= specialCharacterPenalty
			issues = append(issues, fmt.Sprintf("Contains special character: %s", sc.Name))
		}
	}

	for _, m := range findHeadings(text) {
		if strings.TrimSpace(m.line) == m.canonical+":" || strings.TrimSpace(m.line) == m.canonical {
			continue
		}
		score -= headingPenalty
		issues = append(issues, fmt.Sprintf("Non-standard heading %q (use %q)", strings.TrimSpace(m.line), m.canonical))
	}

	if HasNumericDates(text) {
		score -= datePenalty
		issues = append(issues, "Contains numeric date formats (use \"Month YYYY\")")
	}

	if score < 0 {
		score = 0
	}

	return ATSCheck{
		IsATSFriendly: score >= atsFriendlyThreshold,
		Issues:        issues,
		Score:         float64(score),
	}
}
