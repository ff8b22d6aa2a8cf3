// Package quantify classifies unquantified achievement statements and proposes metric placeholders.
package quantify

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/signals"
	"github.com/jonathan/resume-optimizer/internal/textutil"
)

// Result holds the suggestions for one bullet
type Result struct {
	Original          string   `json:"original"`
	HasQuantification bool     `json:"has_quantification"`
	AchievementType   string   `json:"achievement_type"`
	Suggestions       []string `json:"suggestions"`
	Example           string   `json:"example,omitempty"`
}

// Suggest classifies a bullet and proposes metric placeholders.
// A bullet that is already quantified gets no suggestions.
func Suggest(bullet string) Result {
	result := Result{Original: bullet, Suggestions: []string{}}

	_, rest := textutil.StripBullet(bullet)
	text := strings.TrimSpace(rest)

	if signals.HasQuantification(text) {
		result.HasQuantification = true
		result.AchievementType = TypeAlreadyQuantified
		return result
	}

	result.AchievementType = ClassifyAchievement(text)
	result.Suggestions = Metrics(result.AchievementType)
	if text != "" {
		result.Example = buildExample(text, result.Suggestions[0])
	}
	return result
}

// ClassifyAchievement returns the achievement type with the most pattern hits,
// or "general" when nothing matches. Ties go to the earlier type in priority order.
func ClassifyAchievement(text string) string {
	best, bestHits := TypeGeneral, 0
	for _, at := range achievementTypes {
		hits := len(at.verbPattern.FindAllStringIndex(text, -1)) + len(at.nounPattern.FindAllStringIndex(text, -1))
		if hits > bestHits {
			best, bestHits = at.name, hits
		}
	}
	return best
}

// Metrics returns the metric placeholders for an achievement type
func Metrics(achievementType string) []string {
	for _, at := range achievementTypes {
		if at.name == achievementType {
			return append([]string(nil), at.metrics...)
		}
	}
	return append([]string(nil), generalMetrics...)
}

// buildExample appends a metric to the bullet using a connector chosen from its wording
func buildExample(text, metric string) string {
	base := strings.TrimRight(text, " .;,")
	switch {
	case improvementVerbRegex.MatchString(base):
		return base + " by " + metric
	case toForRegex.MatchString(base):
		return base + ", achieving " + metric
	default:
		return base + ", resulting in " + metric
	}
}
