package types

// ComponentScoreBreakdown holds the six component scores and the weighted composite.
// Every value lies in [0,100].
type ComponentScoreBreakdown struct {
	KeywordMatch        float64 `json:"keyword_match"`
	SkillRelevance      float64 `json:"skill_relevance"`
	SectionCompleteness float64 `json:"section_completeness"`
	ExperienceImpact    float64 `json:"experience_impact"`
	Quantification      float64 `json:"quantification"`
	ActionVerbStrength  float64 `json:"action_verb_strength"`
	Composite           float64 `json:"composite"`
}

// ScoreReport is the output of scoring a profile against a posting.
// The keyword and verb lists are observational and do not feed the score.
type ScoreReport struct {
	Breakdown       ComponentScoreBreakdown `json:"breakdown"`
	MatchedKeywords []string                `json:"matched_keywords"`
	MissingKeywords []string                `json:"missing_keywords"`
	WeakVerbs       []string                `json:"weak_verbs"`
}
