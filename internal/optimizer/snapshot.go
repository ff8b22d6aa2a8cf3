package optimizer

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/formatting"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ApplyChanges returns a deep copy of profile with bullet rewrites and formatting
// applied to descriptions and skill injections appended to the skills section.
// Quantification suggestions and injections targeting experience or project text
// are left out. The input profile is never modified.
func ApplyChanges(profile *types.Profile, changes []types.Change) *types.Profile {
	snapshot := profile.Clone()
	if snapshot == nil {
		snapshot = &types.Profile{}
	}

	formatted := make(map[string]bool)
	for _, c := range changes {
		if c.Kind == types.ChangeFormatting {
			formatted[c.Section+"/"+c.ItemID] = true
		}
	}

	for i := range snapshot.Experiences {
		exp := &snapshot.Experiences[i]
		for _, c := range changes {
			if c.Kind == types.ChangeBulletRewrite && c.Section == types.SectionExperience && c.ItemID == exp.ID {
				exp.Description = replaceOnce(exp.Description, c.OldText, c.NewText)
			}
		}
		if formatted[types.SectionExperience+"/"+exp.ID] {
			exp.Description = formatting.StandardizeAll(exp.Description).Result
		}
	}

	for i := range snapshot.Projects {
		project := &snapshot.Projects[i]
		if formatted[types.SectionProject+"/"+project.ID] {
			project.Description = formatting.StandardizeAll(project.Description).Result
		}
	}

	for _, c := range changes {
		if c.Kind != types.ChangeKeywordInjection || c.Section != types.SectionSkills || c.ProposedSkill == nil {
			continue
		}
		if snapshot.HasSkill(c.ProposedSkill.Name) {
			continue
		}
		snapshot.Skills = append(snapshot.Skills, *c.ProposedSkill)
	}

	return snapshot
}

// replaceOnce substitutes the first occurrence of old; a missing old text is a no-op
func replaceOnce(text, old, replacement string) string {
	if old == "" || !strings.Contains(text, old) {
		return text
	}
	return strings.Replace(text, old, replacement, 1)
}
