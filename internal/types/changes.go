package types

import "github.com/google/uuid"

// ChangeKind tags the variant of a Change
type ChangeKind string

const (
	ChangeBulletRewrite           ChangeKind = "bullet_rewrite"
	ChangeKeywordInjection        ChangeKind = "keyword_injection"
	ChangeQuantificationSuggested ChangeKind = "quantification_suggestion"
	ChangeFormatting              ChangeKind = "formatting_standardization"
)

// Section names used as Change targets
const (
	SectionExperience = "experience"
	SectionProject    = "project"
	SectionSkills     = "skills"
)

// Change is one atomic proposed edit with before/after provenance.
// Changes are never modified after construction; acceptance is decided by the caller.
type Change struct {
	ID      string     `json:"id"`
	Kind    ChangeKind `json:"kind"`
	Section string     `json:"section"`
	ItemID  string     `json:"item_id,omitempty"`
	OldText string     `json:"old_text"`
	NewText string     `json:"new_text"`
	Reason  string     `json:"reason"`

	// Keyword injection only
	Keyword       string `json:"keyword,omitempty"`
	ProposedSkill *Skill `json:"proposed_skill,omitempty"`

	// Quantification suggestion only
	AchievementType string   `json:"achievement_type,omitempty"`
	Suggestions     []string `json:"suggestions,omitempty"`

	// Formatting only
	Details []FormatChange `json:"details,omitempty"`
}

// FormatChange records one substitution made by a formatting pass
type FormatChange struct {
	Type        string `json:"type"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Count       int    `json:"count"`
}

// NewChangeID returns a fresh identifier for a Change
func NewChangeID() string {
	return uuid.NewString()
}
