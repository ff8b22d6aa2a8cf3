// Package scoring computes the weighted ATS fitness score of a profile against a posting.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/signals"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// Component weights. They sum to 1.0.
const (
	KeywordMatchWeight        = 0.30
	SkillRelevanceWeight      = 0.20
	SectionCompletenessWeight = 0.15
	ExperienceImpactWeight    = 0.15
	QuantificationWeight      = 0.10
	ActionVerbStrengthWeight  = 0.10
)

const (
	// neutralScore is returned when the posting gives nothing to compare against
	neutralScore = 50.0
	// emptySkillsScore is returned when the profile declares no skills
	emptySkillsScore = 20.0
	// sideOutputLimit caps the matched/missing keyword lists in a report
	sideOutputLimit = 20
)

// Score computes the component breakdown and side outputs for a profile and posting.
// A nil profile is scored as an empty one.
func Score(profile *types.Profile, posting string) types.ScoreReport {
	if profile == nil {
		profile = &types.Profile{}
	}

	postingKW := keywords.Extract(posting)
	match := keywords.Match(keywords.Extract(ProfileText(profile)), postingKW)

	descriptions := ExperienceText(profile)
	verbs := signals.AnalyzeActionVerbs(descriptions)

	breakdown := types.ComponentScoreBreakdown{
		KeywordMatch:        computeKeywordMatchScore(match, postingKW),
		SkillRelevance:      computeSkillRelevanceScore(profile.Skills, posting, postingKW),
		SectionCompleteness: computeSectionCompletenessScore(profile),
		ExperienceImpact:    computeExperienceImpactScore(profile.Experiences),
		Quantification:      clamp(signals.QuantificationScore(descriptions)),
		ActionVerbStrength:  clamp(verbs.Score()),
	}
	breakdown.Composite = Composite(breakdown)

	weakVerbs := verbs.WeakVerbs
	if weakVerbs == nil {
		weakVerbs = []string{}
	}

	return types.ScoreReport{
		Breakdown:       breakdown,
		MatchedKeywords: keywords.RankByFrequency(match.Matched, posting, sideOutputLimit),
		MissingKeywords: keywords.RankByFrequency(match.Missing, posting, sideOutputLimit),
		WeakVerbs:       weakVerbs,
	}
}

// Composite returns the weighted sum of the six component scores, clamped to [0,100]
func Composite(b types.ComponentScoreBreakdown) float64 {
	return clamp(KeywordMatchWeight*b.KeywordMatch +
		SkillRelevanceWeight*b.SkillRelevance +
		SectionCompletenessWeight*b.SectionCompleteness +
		ExperienceImpactWeight*b.ExperienceImpact +
		QuantificationWeight*b.Quantification +
		ActionVerbStrengthWeight*b.ActionVerbStrength)
}

// ProfileText concatenates every free-text field of the profile that is matched
// against posting keywords. Contact fields are excluded.
func ProfileText(profile *types.Profile) string {
	var parts []string
	add := func(values ...string) {
		for _, v := range values {
			if strings.TrimSpace(v) != "" {
				parts = append(parts, v)
			}
		}
	}

	add(profile.PersonalInfo.Summary)
	for _, exp := range profile.Experiences {
		add(exp.Role, exp.Company, exp.Description)
	}
	for _, edu := range profile.Education {
		add(edu.Degree, edu.FieldOfStudy, edu.Institution, edu.Description)
	}
	for _, skill := range profile.Skills {
		add(skill.Name)
	}
	for _, project := range profile.Projects {
		add(project.Name, project.Description)
		add(project.Technologies...)
	}
	return strings.Join(parts, "\n")
}

// ExperienceText joins all experience descriptions with newlines
func ExperienceText(profile *types.Profile) string {
	descriptions := make([]string, 0, len(profile.Experiences))
	for _, exp := range profile.Experiences {
		if strings.TrimSpace(exp.Description) != "" {
			descriptions = append(descriptions, exp.Description)
		}
	}
	return strings.Join(descriptions, "\n")
}

// clamp bounds a score to [0,100]
func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
