package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/signals"
	"github.com/jonathan/resume-optimizer/internal/textutil"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// computeKeywordMatchScore returns the keyword match score, neutral when the posting has no keywords
func computeKeywordMatchScore(match keywords.MatchResult, postingKW keywords.Set) float64 {
	if postingKW.Len() == 0 {
		return neutralScore
	}
	return clamp(match.Score)
}

// computeSkillRelevanceScore rewards skills that appear in the posting and the
// size of the skills section: min(80, 80*ratio) + min(20, 2*count).
func computeSkillRelevanceScore(skills []types.Skill, posting string, postingKW keywords.Set) float64 {
	if len(skills) == 0 {
		return emptySkillsScore
	}
	if postingKW.Len() == 0 {
		return neutralScore
	}

	postingTokens := make(map[string]bool)
	for _, token := range keywords.Tokenize(posting) {
		postingTokens[token] = true
	}

	matched := 0
	for _, skill := range skills {
		if skillInPosting(skill.Name, postingKW, postingTokens) {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(skills))
	return clamp(math.Min(80, 80*ratio) + math.Min(20, 2*float64(len(skills))))
}

// skillInPosting reports whether every keyword of the skill name appears in the posting.
// Names that yield no keywords ("Go", "C#") fall back to raw token matching.
func skillInPosting(name string, postingKW keywords.Set, postingTokens map[string]bool) bool {
	skillKW := keywords.Extract(name)
	if skillKW.Len() > 0 {
		for kw := range skillKW {
			if !postingKW.Contains(kw) {
				return false
			}
		}
		return true
	}

	tokens := keywords.Tokenize(name)
	if len(tokens) == 0 {
		return false
	}
	for _, token := range tokens {
		if !postingTokens[token] {
			return false
		}
	}
	return true
}

// computeSectionCompletenessScore allocates points for each populated section
func computeSectionCompletenessScore(profile *types.Profile) float64 {
	score := 0.0

	info := profile.PersonalInfo
	if strings.TrimSpace(info.Name) != "" {
		score += 8
	}
	if strings.TrimSpace(info.Email) != "" {
		score += 8
	}
	if strings.TrimSpace(info.Phone) != "" {
		score += 5
	}
	if strings.TrimSpace(info.Location) != "" {
		score += 4
	}

	if n := len(profile.Experiences); n > 0 {
		score += 15 + 5*float64(min(n, 3))
	}
	if n := len(profile.Education); n > 0 {
		score += 10 + 5*float64(min(n, 2))
	}
	if n := len(profile.Skills); n > 0 {
		score += 10 + float64(min(n, 5))
	}
	if n := len(profile.Projects); n > 0 {
		score += 5 + 2.5*float64(min(n, 2))
	}

	return clamp(score)
}

// computeExperienceImpactScore averages the per-entry impact score; no entries scores 0
func computeExperienceImpactScore(experiences []types.Experience) float64 {
	if len(experiences) == 0 {
		return 0
	}
	total := 0.0
	for _, exp := range experiences {
		total += experienceEntryScore(exp.Description)
	}
	return clamp(total / float64(len(experiences)))
}

// experienceEntryScore scores one description: 40 for existing, up to 20 for length,
// up to 20 for bullet markers, and 5 per quantification up to 20.
func experienceEntryScore(description string) float64 {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return 0
	}

	score := 40.0

	length := utf8.RuneCountInString(desc)
	switch {
	case length >= 500:
		score += 20
	case length >= 200:
		score += 15
	case length >= 50:
		score += 10
	default:
		score += 5
	}

	switch bullets := textutil.CountBulletLines(desc); {
	case bullets >= 3:
		score += 20
	case bullets == 2:
		score += 15
	case bullets == 1:
		score += 10
	}

	score += math.Min(20, 5*float64(len(signals.DetectQuantifications(desc))))

	return clamp(score)
}
