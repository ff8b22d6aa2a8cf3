// Package optimizer runs the rewrite generators over a profile and assembles the optimization result.
package optimizer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/formatting"
	"github.com/jonathan/resume-optimizer/internal/injection"
	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/quantify"
	"github.com/jonathan/resume-optimizer/internal/random"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/scoring"
	"github.com/jonathan/resume-optimizer/internal/signals"
	"github.com/jonathan/resume-optimizer/internal/textutil"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// minSuggestLineLength is the shortest line offered a quantification suggestion
const minSuggestLineLength = 20

// Optimizer sequences the rewrite generators. It holds no per-call state and is safe
// for concurrent use as long as its random source is.
type Optimizer struct {
	rewriter *rewriting.Rewriter
	injector *injection.Injector
	now      func() time.Time
}

// New creates an Optimizer whose verb and template choices come from rng.
// A nil rng uses the process-level source.
func New(rng random.Source) *Optimizer {
	return &Optimizer{
		rewriter: rewriting.NewRewriter(rng),
		injector: injection.NewInjector(rng),
		now:      time.Now,
	}
}

// Optimize runs every enabled generator against the original profile, builds the
// rewritten snapshot and estimates the optimized score.
func (o *Optimizer) Optimize(profile *types.Profile, posting string, opts types.OptimizationOptions) (*types.OptimizationResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &types.Profile{}
	}

	baseline := scoring.Score(profile, posting).Breakdown.Composite

	changes := []types.Change{}
	if opts.RewriteBullets {
		changes = append(changes, o.bulletChanges(profile, posting)...)
	}
	if opts.InjectKeywords {
		injected, err := o.keywordChanges(profile, posting, opts.MaxKeywords)
		if err != nil {
			return nil, err
		}
		changes = append(changes, injected...)
	}
	if opts.SuggestQuantifications {
		changes = append(changes, quantificationChanges(profile)...)
	}
	if opts.StandardizeFormatting {
		changes = append(changes, formattingChanges(profile)...)
	}

	var summary types.ChangeSummary
	for _, c := range changes {
		summary.Add(c.Kind)
	}

	snapshot := ApplyChanges(profile, changes)

	result := &types.OptimizationResult{
		RunID:          uuid.NewString(),
		ProfileID:      profile.ID,
		OriginalScore:  baseline,
		EstimatedScore: EstimateScore(baseline, summary),
		Changes:        changes,
		Summary:        summary,
		Optimized:      snapshot,
		CreatedAt:      o.now().UTC(),
	}

	if opts.Rescore {
		rescored := scoring.Score(snapshot, posting).Breakdown.Composite
		result.RescoredScore = &rescored
	}

	return result, nil
}

// Optimize runs the default optimizer, which draws from the process-level random source
func Optimize(profile *types.Profile, posting string, opts types.OptimizationOptions) (*types.OptimizationResult, error) {
	return New(nil).Optimize(profile, posting, opts)
}

// EstimateScore bounds the expected gain from a change set. Every term is
// non-negative, so the estimate never falls below the baseline.
func EstimateScore(baseline float64, s types.ChangeSummary) float64 {
	estimate := baseline +
		min(float64(s.BulletRewrites)*3, 15)*scoring.ActionVerbStrengthWeight +
		min(float64(s.KeywordInjections)*3, 30)*scoring.KeywordMatchWeight +
		min(float64(s.QuantificationSuggestions)*2, 20)*scoring.QuantificationWeight
	if s.FormattingFixes > 0 {
		estimate += 2
	}
	return min(estimate, 100)
}

// bulletChanges rewrites every line of every experience description
func (o *Optimizer) bulletChanges(profile *types.Profile, posting string) []types.Change {
	var changes []types.Change
	for _, exp := range profile.Experiences {
		for _, line := range descriptionLines(exp.Description) {
			res := o.rewriter.Rewrite(line, posting)
			if !res.Changed {
				continue
			}
			changes = append(changes, types.Change{
				ID:      types.NewChangeID(),
				Kind:    types.ChangeBulletRewrite,
				Section: types.SectionExperience,
				ItemID:  exp.ID,
				OldText: line,
				NewText: res.Rewritten,
				Reason:  res.Reason,
			})
		}
	}
	return changes
}

// keywordChanges injects posting keywords the profile text lacks
func (o *Optimizer) keywordChanges(profile *types.Profile, posting string, maxKeywords int) ([]types.Change, error) {
	match := keywords.Match(keywords.Extract(scoring.ProfileText(profile)), keywords.Extract(posting))
	if len(match.Missing) == 0 {
		return nil, nil
	}
	return o.injector.Inject(profile, match.Missing, posting, maxKeywords)
}

// quantificationChanges records metric suggestions for long, unquantified lines.
// They are informational and never applied to the snapshot.
func quantificationChanges(profile *types.Profile) []types.Change {
	var changes []types.Change
	for _, exp := range profile.Experiences {
		for _, line := range descriptionLines(exp.Description) {
			_, text := textutil.StripBullet(line)
			text = strings.TrimSpace(text)
			if len(text) <= minSuggestLineLength || signals.HasQuantification(text) {
				continue
			}
			res := quantify.Suggest(line)
			if len(res.Suggestions) == 0 {
				continue
			}
			changes = append(changes, types.Change{
				ID:              types.NewChangeID(),
				Kind:            types.ChangeQuantificationSuggested,
				Section:         types.SectionExperience,
				ItemID:          exp.ID,
				OldText:         line,
				NewText:         res.Example,
				Reason:          fmt.Sprintf("Add a %s metric, for example %q", res.AchievementType, res.Suggestions[0]),
				AchievementType: res.AchievementType,
				Suggestions:     res.Suggestions,
			})
		}
	}
	return changes
}

// formattingChanges standardizes experience and project descriptions
func formattingChanges(profile *types.Profile) []types.Change {
	var changes []types.Change
	add := func(section, itemID, description string) {
		if strings.TrimSpace(description) == "" {
			return
		}
		res := formatting.StandardizeAll(description)
		if !res.Changed() || res.Result == description {
			return
		}
		changes = append(changes, types.Change{
			ID:      types.NewChangeID(),
			Kind:    types.ChangeFormatting,
			Section: section,
			ItemID:  itemID,
			OldText: description,
			NewText: res.Result,
			Reason:  describeFormatting(res.Changes),
			Details: res.Changes,
		})
	}

	for _, exp := range profile.Experiences {
		add(types.SectionExperience, exp.ID, exp.Description)
	}
	for _, project := range profile.Projects {
		add(types.SectionProject, project.ID, project.Description)
	}
	return changes
}

// describeFormatting summarizes format changes as "Standardized formatting: 2 date, 1 heading"
func describeFormatting(details []types.FormatChange) string {
	counts := make(map[string]int)
	var order []string
	for _, d := range details {
		if _, ok := counts[d.Type]; !ok {
			order = append(order, d.Type)
		}
		counts[d.Type] += d.Count
	}
	parts := make([]string, 0, len(order))
	for _, kind := range order {
		parts = append(parts, fmt.Sprintf("%d %s", counts[kind], strings.ReplaceAll(kind, "_", " ")))
	}
	return "Standardized formatting: " + strings.Join(parts, ", ")
}

// descriptionLines returns the non-blank raw lines of a description, untrimmed so
// they can be located again by substring replacement.
func descriptionLines(description string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
