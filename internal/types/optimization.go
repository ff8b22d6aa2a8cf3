package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxKeywords is the injection cap used when options are not supplied
const DefaultMaxKeywords = 10

// OptimizationOptions toggles the rewrite generators run by the optimizer
type OptimizationOptions struct {
	RewriteBullets         bool `json:"rewrite_bullets"`
	InjectKeywords         bool `json:"inject_keywords"`
	SuggestQuantifications bool `json:"suggest_quantifications"`
	StandardizeFormatting  bool `json:"standardize_formatting"`
	MaxKeywords            int  `json:"max_keywords" validate:"gt=0"`
	// Rescore additionally runs the full scoring engine over the rewritten snapshot.
	Rescore bool `json:"rescore"`
}

// DefaultOptimizationOptions returns options with every generator enabled
func DefaultOptimizationOptions() OptimizationOptions {
	return OptimizationOptions{
		RewriteBullets:         true,
		InjectKeywords:         true,
		SuggestQuantifications: true,
		StandardizeFormatting:  true,
		MaxKeywords:            DefaultMaxKeywords,
	}
}

// Validate rejects malformed option values
func (o *OptimizationOptions) Validate() error {
	validate := validator.New()
	if err := validate.Struct(o); err != nil {
		return &ValidationError{Field: "max_keywords", Message: "must be a positive integer"}
	}
	return nil
}

// ChangeSummary counts changes per kind
type ChangeSummary struct {
	BulletRewrites            int `json:"bullet_rewrites"`
	KeywordInjections         int `json:"keyword_injections"`
	QuantificationSuggestions int `json:"quantification_suggestions"`
	FormattingFixes           int `json:"formatting_fixes"`
	Total                     int `json:"total"`
}

// Add counts one change
func (s *ChangeSummary) Add(kind ChangeKind) {
	switch kind {
	case ChangeBulletRewrite:
		s.BulletRewrites++
	case ChangeKeywordInjection:
		s.KeywordInjections++
	case ChangeQuantificationSuggested:
		s.QuantificationSuggestions++
	case ChangeFormatting:
		s.FormattingFixes++
	}
	s.Total++
}

// OptimizationResult is the output of an optimization run.
// EstimatedScore is always >= OriginalScore.
type OptimizationResult struct {
	RunID          string        `json:"run_id"`
	ProfileID      string        `json:"profile_id,omitempty"`
	OriginalScore  float64       `json:"original_score"`
	EstimatedScore float64       `json:"estimated_score"`
	RescoredScore  *float64      `json:"rescored_score,omitempty"`
	Changes        []Change      `json:"changes"`
	Summary        ChangeSummary `json:"summary"`
	Optimized      *Profile      `json:"optimized_profile"`
	CreatedAt      time.Time     `json:"created_at"`
}
