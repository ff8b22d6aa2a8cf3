package optimizer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/random"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const testPosting = "Backend engineer. Kubernetes and Docker required. Kubernetes clusters, Terraform, Go services."

func sampleProfile() *types.Profile {
	return &types.Profile{
		ID: "profile-1",
		PersonalInfo: types.PersonalInfo{
			Name:    "Jane Doe",
			Summary: "Backend engineer focused on Go services",
		},
		Experiences: []types.Experience{
			{
				ID:          "exp-1",
				Company:     "Acme",
				Role:        "Software Engineer",
				Description: "- Worked on web applications for customers\n- Led the platform team of 5 engineers",
			},
		},
		Skills: []types.Skill{{ID: "skill-1", Name: "Go"}},
	}
}

func onlyOption(set func(*types.OptimizationOptions)) types.OptimizationOptions {
	opts := types.OptimizationOptions{MaxKeywords: types.DefaultMaxKeywords}
	set(&opts)
	return opts
}

func changesOfKind(changes []types.Change, kind types.ChangeKind) []types.Change {
	var out []types.Change
	for _, c := range changes {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

func TestOptimize_AllGenerators(t *testing.T) {
	profile := sampleProfile()
	before := profile.Clone()

	result, err := New(random.NewSeeded(7)).Optimize(profile, testPosting, types.DefaultOptimizationOptions())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, "profile-1", result.ProfileID)
	assert.False(t, result.CreatedAt.IsZero())
	assert.GreaterOrEqual(t, result.EstimatedScore, result.OriginalScore)
	assert.LessOrEqual(t, result.EstimatedScore, 100.0)
	assert.Nil(t, result.RescoredScore)

	assert.Equal(t, before, profile, "input profile must not be modified")

	rewrites := changesOfKind(result.Changes, types.ChangeBulletRewrite)
	require.NotEmpty(t, rewrites)
	assert.Equal(t, "- Worked on web applications for customers", rewrites[0].OldText)
	assert.True(t, strings.HasPrefix(rewrites[0].NewText, "- "))
	assert.NotContains(t, rewrites[0].NewText, "Worked on")
	assert.Equal(t, types.SectionExperience, rewrites[0].Section)
	assert.Equal(t, "exp-1", rewrites[0].ItemID)

	injections := changesOfKind(result.Changes, types.ChangeKeywordInjection)
	require.NotEmpty(t, injections)
	assert.LessOrEqual(t, len(injections), types.DefaultMaxKeywords)
	keywordsSeen := make(map[string]bool)
	for _, c := range injections {
		assert.Equal(t, types.SectionSkills, c.Section)
		require.NotNil(t, c.ProposedSkill)
		keywordsSeen[c.Keyword] = true
	}
	assert.True(t, keywordsSeen["kubernetes"])

	var total int
	total += result.Summary.BulletRewrites
	total += result.Summary.KeywordInjections
	total += result.Summary.QuantificationSuggestions
	total += result.Summary.FormattingFixes
	assert.Equal(t, len(result.Changes), total)
	assert.Equal(t, len(result.Changes), result.Summary.Total)
	assert.Equal(t, len(rewrites), result.Summary.BulletRewrites)
	assert.Equal(t, len(injections), result.Summary.KeywordInjections)
}

func TestOptimize_SnapshotAppliesRewritesAndSkills(t *testing.T) {
	profile := sampleProfile()

	result, err := New(random.NewSeeded(3)).Optimize(profile, testPosting, types.DefaultOptimizationOptions())
	require.NoError(t, err)

	snapshot := result.Optimized
	require.NotNil(t, snapshot)
	require.Len(t, snapshot.Experiences, 1)

	desc := snapshot.Experiences[0].Description
	assert.NotContains(t, desc, "Worked on")
	for _, c := range changesOfKind(result.Changes, types.ChangeBulletRewrite) {
		assert.Contains(t, desc, c.NewText)
	}

	// quantification suggestions are never applied
	for _, c := range changesOfKind(result.Changes, types.ChangeQuantificationSuggested) {
		assert.NotContains(t, desc, c.NewText)
	}

	injections := changesOfKind(result.Changes, types.ChangeKeywordInjection)
	assert.Len(t, snapshot.Skills, len(profile.Skills)+len(injections))
	for _, c := range injections {
		assert.True(t, snapshot.HasSkill(c.ProposedSkill.Name), c.ProposedSkill.Name)
	}
	assert.Len(t, profile.Skills, 1)
}

func TestOptimize_OptionToggles(t *testing.T) {
	tests := []struct {
		name string
		opts types.OptimizationOptions
		kind types.ChangeKind
	}{
		{
			name: "bullets only",
			opts: onlyOption(func(o *types.OptimizationOptions) { o.RewriteBullets = true }),
			kind: types.ChangeBulletRewrite,
		},
		{
			name: "keywords only",
			opts: onlyOption(func(o *types.OptimizationOptions) { o.InjectKeywords = true }),
			kind: types.ChangeKeywordInjection,
		},
		{
			name: "quantification only",
			opts: onlyOption(func(o *types.OptimizationOptions) { o.SuggestQuantifications = true }),
			kind: types.ChangeQuantificationSuggested,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New(random.NewSeeded(1)).Optimize(sampleProfile(), testPosting, tt.opts)
			require.NoError(t, err)
			require.NotEmpty(t, result.Changes)
			for _, c := range result.Changes {
				assert.Equal(t, tt.kind, c.Kind)
			}
		})
	}
}

func TestOptimize_NothingEnabled(t *testing.T) {
	opts := types.OptimizationOptions{MaxKeywords: 5}
	profile := sampleProfile()

	result, err := Optimize(profile, testPosting, opts)
	require.NoError(t, err)
	assert.Empty(t, result.Changes)
	assert.Equal(t, 0, result.Summary.Total)
	assert.Equal(t, result.OriginalScore, result.EstimatedScore)
	assert.Equal(t, profile, result.Optimized)
}

func TestOptimize_QuantificationOnlyLeavesSnapshotUnchanged(t *testing.T) {
	profile := sampleProfile()
	opts := onlyOption(func(o *types.OptimizationOptions) { o.SuggestQuantifications = true })

	result, err := Optimize(profile, testPosting, opts)
	require.NoError(t, err)

	suggestions := changesOfKind(result.Changes, types.ChangeQuantificationSuggested)
	require.Len(t, suggestions, 1, "the quantified team line gets no suggestion")
	assert.Equal(t, "- Worked on web applications for customers", suggestions[0].OldText)
	assert.NotEmpty(t, suggestions[0].Suggestions)
	assert.NotEmpty(t, suggestions[0].AchievementType)
	assert.Equal(t, profile, result.Optimized)
}

func TestOptimize_FormattingAppliedToSnapshot(t *testing.T) {
	profile := sampleProfile()
	profile.Experiences[0].Description = "- Led migration to Kubernetes  in 06/2020"
	profile.Projects = []types.Project{{ID: "proj-1", Name: "site", Description: "Static site — built 2021-03"}}
	opts := onlyOption(func(o *types.OptimizationOptions) { o.StandardizeFormatting = true })

	result, err := Optimize(profile, testPosting, opts)
	require.NoError(t, err)

	formatting := changesOfKind(result.Changes, types.ChangeFormatting)
	require.Len(t, formatting, 2)
	assert.Equal(t, types.SectionExperience, formatting[0].Section)
	assert.Equal(t, types.SectionProject, formatting[1].Section)
	assert.NotEmpty(t, formatting[0].Details)
	assert.True(t, strings.HasPrefix(formatting[0].Reason, "Standardized formatting: "))

	assert.Equal(t, "- Led migration to Kubernetes in June 2020", result.Optimized.Experiences[0].Description)
	assert.Equal(t, "Static site - built March 2021", result.Optimized.Projects[0].Description)
	assert.Equal(t, "- Led migration to Kubernetes  in 06/2020", profile.Experiences[0].Description)
	assert.Equal(t, 2, result.Summary.FormattingFixes)
	assert.InDelta(t, result.OriginalScore+2, result.EstimatedScore, 1e-9)
}

func TestOptimize_EmptyPostingInjectsNothing(t *testing.T) {
	result, err := Optimize(sampleProfile(), "", types.DefaultOptimizationOptions())
	require.NoError(t, err)
	assert.Empty(t, changesOfKind(result.Changes, types.ChangeKeywordInjection))
	assert.GreaterOrEqual(t, result.EstimatedScore, result.OriginalScore)
}

func TestOptimize_NilProfile(t *testing.T) {
	result, err := Optimize(nil, testPosting, types.DefaultOptimizationOptions())
	require.NoError(t, err)
	require.NotNil(t, result.Optimized)
	assert.Empty(t, result.ProfileID)

	injections := changesOfKind(result.Changes, types.ChangeKeywordInjection)
	require.NotEmpty(t, injections)
	assert.Contains(t, injections[0].Reason, "(skills section was empty)")
}

func TestOptimize_InvalidMaxKeywords(t *testing.T) {
	for _, n := range []int{0, -3} {
		opts := types.DefaultOptimizationOptions()
		opts.MaxKeywords = n

		result, err := Optimize(sampleProfile(), testPosting, opts)
		require.Error(t, err)
		assert.Nil(t, result)

		var verr *types.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "max_keywords", verr.Field)
	}
}

func TestOptimize_Rescore(t *testing.T) {
	opts := types.DefaultOptimizationOptions()
	opts.Rescore = true

	result, err := Optimize(sampleProfile(), testPosting, opts)
	require.NoError(t, err)
	require.NotNil(t, result.RescoredScore)
	assert.GreaterOrEqual(t, *result.RescoredScore, 0.0)
	assert.LessOrEqual(t, *result.RescoredScore, 100.0)
}

func TestOptimize_SeededRunsAreReproducible(t *testing.T) {
	texts := func() []string {
		result, err := New(random.NewSeeded(42)).Optimize(sampleProfile(), testPosting, types.DefaultOptimizationOptions())
		require.NoError(t, err)
		out := make([]string, 0, len(result.Changes))
		for _, c := range result.Changes {
			out = append(out, string(c.Kind)+"|"+c.NewText)
		}
		return out
	}
	assert.Equal(t, texts(), texts())
}

func TestOptimize_EstimateNeverBelowBaseline(t *testing.T) {
	profiles := []*types.Profile{
		{},
		sampleProfile(),
		{
			PersonalInfo: types.PersonalInfo{Summary: "Kubernetes Docker Terraform Go services backend engineer"},
			Skills:       []types.Skill{{Name: "Kubernetes"}, {Name: "Docker"}, {Name: "Terraform"}, {Name: "Go"}},
			Experiences: []types.Experience{{
				ID:          "e",
				Description: "- Reduced latency by 40% across 12 Go services\n- Migrated 30 clusters to Kubernetes",
			}},
		},
	}
	for _, p := range profiles {
		result, err := Optimize(p, testPosting, types.DefaultOptimizationOptions())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.EstimatedScore, result.OriginalScore)
		assert.LessOrEqual(t, result.EstimatedScore, 100.0)
	}
}

func TestOptimize_CreatedAtUsesClock(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	o := New(random.NewSeeded(1))
	o.now = func() time.Time { return fixed }

	result, err := o.Optimize(sampleProfile(), testPosting, types.DefaultOptimizationOptions())
	require.NoError(t, err)
	assert.Equal(t, fixed, result.CreatedAt)
}

func TestEstimateScore(t *testing.T) {
	tests := []struct {
		name     string
		baseline float64
		summary  types.ChangeSummary
		want     float64
	}{
		{"no changes", 40, types.ChangeSummary{}, 40},
		{"bullet rewrites capped", 40, types.ChangeSummary{BulletRewrites: 10}, 41.5},
		{"two bullet rewrites", 40, types.ChangeSummary{BulletRewrites: 2}, 40.6},
		{"keywords capped", 40, types.ChangeSummary{KeywordInjections: 20}, 49},
		{"quantifications", 40, types.ChangeSummary{QuantificationSuggestions: 5}, 41},
		{"formatting flat bonus", 40, types.ChangeSummary{FormattingFixes: 3}, 42},
		{"capped at 100", 95, types.ChangeSummary{BulletRewrites: 5, KeywordInjections: 10, QuantificationSuggestions: 10, FormattingFixes: 1}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateScore(tt.baseline, tt.summary), 1e-9)
		})
	}
}

func TestApplyChanges_SkipsMissingText(t *testing.T) {
	profile := sampleProfile()
	changes := []types.Change{
		{Kind: types.ChangeBulletRewrite, Section: types.SectionExperience, ItemID: "exp-1", OldText: "not present", NewText: "x"},
		{Kind: types.ChangeBulletRewrite, Section: types.SectionExperience, ItemID: "other", OldText: "- Worked on web applications for customers", NewText: "y"},
		{Kind: types.ChangeKeywordInjection, Section: types.SectionSkills, ProposedSkill: &types.Skill{Name: "go"}},
	}

	snapshot := ApplyChanges(profile, changes)
	assert.Equal(t, profile, snapshot)
	assert.NotSame(t, profile, snapshot)
}
