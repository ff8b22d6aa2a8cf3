// Package injection proposes where and how to add missing posting keywords to a profile.
package injection

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/random"
	"github.com/jonathan/resume-optimizer/internal/textutil"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/jonathan/resume-optimizer/internal/vocabulary"
)

// Injector turns missing keywords into keyword-injection Changes
type Injector struct {
	rng random.Source
}

// NewInjector creates an Injector drawing templates from rng. A nil rng uses the process source.
func NewInjector(rng random.Source) *Injector {
	if rng == nil {
		rng = random.Default()
	}
	return &Injector{rng: rng}
}

// target is the chosen injection point for one keyword
type target struct {
	section string
	itemID  string
	text    string
}

// Inject ranks missing keywords by posting frequency, keeps the top maxKeywords,
// and proposes one Change per keyword at its best injection point.
// A non-positive maxKeywords is rejected.
func (in *Injector) Inject(profile *types.Profile, missing []string, posting string, maxKeywords int) ([]types.Change, error) {
	if maxKeywords <= 0 {
		return nil, &types.ValidationError{Field: "max_keywords", Message: "must be a positive integer"}
	}
	if profile == nil {
		profile = &types.Profile{}
	}

	candidates := make([]string, 0, len(missing))
	for _, kw := range dedupe(missing) {
		if !profile.HasSkill(kw) {
			candidates = append(candidates, kw)
		}
	}

	changes := []types.Change{}
	for _, kw := range keywords.RankByFrequency(candidates, posting, maxKeywords) {
		class := vocabulary.ClassifyKeyword(kw)
		point := bestTarget(profile)

		if point.section == types.SectionSkills {
			changes = append(changes, in.skillChange(kw, class, len(profile.Skills) == 0))
			continue
		}

		line := fmt.Sprintf(random.Pick(in.rng, Templates(class)), kw)
		changes = append(changes, types.Change{
			ID:      types.NewChangeID(),
			Kind:    types.ChangeKeywordInjection,
			Section: point.section,
			ItemID:  point.itemID,
			OldText: point.text,
			NewText: InsertLine(point.text, line),
			Reason:  fmt.Sprintf("Added missing %s keyword '%s' to %s", class, kw, point.section),
			Keyword: kw,
		})
	}
	return changes, nil
}

// skillChange proposes a new Skill entry for kw
func (in *Injector) skillChange(kw, class string, emptySection bool) types.Change {
	skill := &types.Skill{
		ID:       uuid.NewString(),
		Name:     vocabulary.NormalizeSkillName(kw),
		Category: class,
	}
	reason := fmt.Sprintf("Added missing %s keyword '%s' to skills", class, kw)
	if emptySection {
		reason += " (skills section was empty)"
	}
	return types.Change{
		ID:            types.NewChangeID(),
		Kind:          types.ChangeKeywordInjection,
		Section:       types.SectionSkills,
		NewText:       skill.Name,
		Reason:        reason,
		Keyword:       kw,
		ProposedSkill: skill,
	}
}

// bestTarget picks the injection point by fixed priority: a non-empty skills section,
// else the experience with the shortest non-empty description, else the project
// with the shortest description, else the (empty) skills section.
func bestTarget(profile *types.Profile) target {
	if len(profile.Skills) > 0 {
		return target{section: types.SectionSkills}
	}

	best := -1
	for i, exp := range profile.Experiences {
		if strings.TrimSpace(exp.Description) == "" {
			continue
		}
		if best < 0 || runeLen(exp.Description) < runeLen(profile.Experiences[best].Description) {
			best = i
		}
	}
	if best >= 0 {
		exp := profile.Experiences[best]
		return target{section: types.SectionExperience, itemID: exp.ID, text: exp.Description}
	}

	for i, project := range profile.Projects {
		if best < 0 || runeLen(project.Description) < runeLen(profile.Projects[best].Description) {
			best = i
		}
	}
	if best >= 0 {
		project := profile.Projects[best]
		return target{section: types.SectionProject, itemID: project.ID, text: project.Description}
	}

	return target{section: types.SectionSkills}
}

// InsertLine adds line to text: alone when text is empty, as a new bullet when
// text already uses bullets, otherwise as a new sentence.
func InsertLine(text, line string) string {
	trimmed := strings.TrimRight(text, " \t\n")
	if strings.TrimSpace(trimmed) == "" {
		return line
	}
	if marker := textutil.FirstBulletMarker(trimmed); marker != "" {
		return trimmed + "\n" + marker + line
	}
	if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") {
		return trimmed + " " + line + "."
	}
	return trimmed + ". " + line + "."
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
