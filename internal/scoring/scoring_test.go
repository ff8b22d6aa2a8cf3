package scoring

import (
	"testing"

	"github.com/jonathan/resume-optimizer/internal/keywords"
	"github.com/jonathan/resume-optimizer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() *types.Profile {
	return &types.Profile{
		ID: "profile_001",
		PersonalInfo: types.PersonalInfo{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "Austin, TX",
			Summary:  "Backend engineer focused on distributed systems.",
		},
		Experiences: []types.Experience{
			{
				ID:          "exp_001",
				Company:     "Acme",
				Role:        "Senior Software Engineer",
				Description: "- Increased revenue by 25%\n- Led a team of 5 engineers",
			},
			{
				ID:          "exp_002",
				Company:     "Globex",
				Role:        "Software Engineer",
				Description: "Worked on web applications\nResponsible for deployments",
			},
		},
		Education: []types.Education{{ID: "edu_001", Institution: "State University", Degree: "BS", FieldOfStudy: "Computer Science"}},
		Skills:    []types.Skill{{Name: "Go"}, {Name: "Python"}, {Name: "Docker"}},
		Projects:  []types.Project{{ID: "proj_001", Name: "ats-cli", Description: "Command line resume scorer", Technologies: []string{"Go"}}},
	}
}

func TestWeightsSumToOne(t *testing.T) {
	sum := KeywordMatchWeight + SkillRelevanceWeight + SectionCompletenessWeight +
		ExperienceImpactWeight + QuantificationWeight + ActionVerbStrengthWeight
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestScore_EmptyProfile(t *testing.T) {
	report := Score(&types.Profile{}, "Python developer")
	b := report.Breakdown

	assert.Equal(t, 0.0, b.SectionCompleteness)
	assert.Equal(t, 0.0, b.KeywordMatch)
	assert.Equal(t, 20.0, b.SkillRelevance)
	assert.Equal(t, 0.0, b.ExperienceImpact)
	assert.Equal(t, 0.0, b.Quantification)
	assert.Equal(t, 20.0, b.ActionVerbStrength)
	assert.InDelta(t, 6.0, b.Composite, 1e-9)
	assert.Less(t, b.Composite, 20.0)
	assert.ElementsMatch(t, []string{"python", "developer"}, report.MissingKeywords)
	assert.Empty(t, report.MatchedKeywords)
	assert.NotNil(t, report.WeakVerbs)
}

func TestScore_NilProfile(t *testing.T) {
	report := Score(nil, "Python developer")
	assert.InDelta(t, 6.0, report.Breakdown.Composite, 1e-9)
}

func TestScore_EmptyPostingIsNeutral(t *testing.T) {
	report := Score(sampleProfile(), "")
	assert.Equal(t, 50.0, report.Breakdown.KeywordMatch)
	assert.Equal(t, 50.0, report.Breakdown.SkillRelevance)
	assert.Empty(t, report.MissingKeywords)
}

func TestScore_CompositeIsWeightedSum(t *testing.T) {
	report := Score(sampleProfile(), "Senior Go engineer: Python, Kubernetes, distributed systems, revenue growth")
	b := report.Breakdown
	expected := 0.30*b.KeywordMatch + 0.20*b.SkillRelevance + 0.15*b.SectionCompleteness +
		0.15*b.ExperienceImpact + 0.10*b.Quantification + 0.10*b.ActionVerbStrength
	assert.InDelta(t, expected, b.Composite, 1e-9)
	assert.Contains(t, report.MatchedKeywords, "python")
	assert.Contains(t, report.MissingKeywords, "kubernetes")
	assert.Equal(t, []string{"worked on", "responsible for"}, report.WeakVerbs)
}

func TestScore_Bounds(t *testing.T) {
	long := ""
	for i := 0; i < 60; i++ {
		long += "- Increased throughput by 40% and saved $2M across 12 teams in 3 years\n"
	}
	profiles := []*types.Profile{
		{},
		sampleProfile(),
		{Experiences: []types.Experience{{Description: long}, {Description: long}}},
		{Skills: make([]types.Skill, 40)},
		{Experiences: make([]types.Experience, 10), Education: make([]types.Education, 5), Projects: make([]types.Project, 9)},
	}
	postings := []string{"", "   ", "Python developer", long, "go go go go"}

	for _, p := range profiles {
		for _, posting := range postings {
			b := Score(p, posting).Breakdown
			for name, v := range map[string]float64{
				"keyword":      b.KeywordMatch,
				"skill":        b.SkillRelevance,
				"completeness": b.SectionCompleteness,
				"impact":       b.ExperienceImpact,
				"quant":        b.Quantification,
				"verbs":        b.ActionVerbStrength,
				"composite":    b.Composite,
			} {
				assert.GreaterOrEqual(t, v, 0.0, name)
				assert.LessOrEqual(t, v, 100.0, name)
			}
		}
	}
}

func TestScore_SideOutputsCapped(t *testing.T) {
	posting := ""
	for _, w := range []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel",
		"india", "juliet", "kilo", "lima", "mike", "november", "oscar", "papa", "quebec", "romeo",
		"sierra", "tango", "uniform", "victor", "whiskey", "xray", "yankee", "zulu"} {
		posting += w + " "
	}
	report := Score(&types.Profile{}, posting)
	assert.Len(t, report.MissingKeywords, 20)
}

func TestComputeSectionCompletenessScore(t *testing.T) {
	tests := []struct {
		name    string
		profile *types.Profile
		want    float64
	}{
		{name: "empty", profile: &types.Profile{}, want: 0},
		{name: "contact only", profile: &types.Profile{PersonalInfo: types.PersonalInfo{Name: "a", Email: "b", Phone: "c", Location: "d"}}, want: 25},
		{name: "sample", profile: sampleProfile(), want: 25 + 25 + 15 + 13 + 7.5},
		{
			name: "saturated",
			profile: &types.Profile{
				PersonalInfo: types.PersonalInfo{Name: "a", Email: "b", Phone: "c", Location: "d"},
				Experiences:  make([]types.Experience, 5),
				Education:    make([]types.Education, 3),
				Skills:       make([]types.Skill, 9),
				Projects:     make([]types.Project, 4),
			},
			want: 100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, computeSectionCompletenessScore(tt.profile), 1e-9)
		})
	}
}

func TestComputeSkillRelevanceScore(t *testing.T) {
	posting := "Looking for a Go engineer with Python and Kubernetes"
	postingKW := keywords.Extract(posting)

	skills := []types.Skill{{Name: "Go"}, {Name: "Python"}, {Name: "Docker"}}
	assert.InDelta(t, 80.0*2/3+6, computeSkillRelevanceScore(skills, posting, postingKW), 1e-9)

	assert.Equal(t, 20.0, computeSkillRelevanceScore(nil, posting, postingKW))
	assert.Equal(t, 50.0, computeSkillRelevanceScore(skills, "", keywords.Extract("")))

	many := make([]types.Skill, 0, 15)
	for i := 0; i < 15; i++ {
		many = append(many, types.Skill{Name: "Python"})
	}
	assert.InDelta(t, 100.0, computeSkillRelevanceScore(many, posting, postingKW), 1e-9)
}

func TestSkillInPosting(t *testing.T) {
	posting := "Machine learning engineer, C# and Go"
	postingKW := keywords.Extract(posting)
	tokens := map[string]bool{}
	for _, tok := range keywords.Tokenize(posting) {
		tokens[tok] = true
	}

	assert.True(t, skillInPosting("Machine Learning", postingKW, tokens))
	assert.True(t, skillInPosting("C#", postingKW, tokens))
	assert.True(t, skillInPosting("go", postingKW, tokens))
	assert.False(t, skillInPosting("Deep Learning", postingKW, tokens))
	assert.False(t, skillInPosting("", postingKW, tokens))
}

func TestExperienceEntryScore(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want float64
	}{
		{name: "empty", desc: "   ", want: 0},
		{name: "short plain", desc: "Wrote code", want: 45},
		{name: "two bullets with metrics", desc: "- Increased revenue by 25%\n- Led a team of 5 engineers", want: 40 + 10 + 15 + 10},
		{name: "capped at 100", desc: longQuantifiedDescription(), want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, experienceEntryScore(tt.desc), 1e-9)
		})
	}
}

func longQuantifiedDescription() string {
	desc := ""
	for i := 0; i < 12; i++ {
		desc += "- Reduced p99 latency by 40% for 3 services handling $2M in payments\n"
	}
	return desc
}

func TestComputeExperienceImpactScore_Average(t *testing.T) {
	exps := []types.Experience{{Description: "Wrote code"}, {Description: ""}}
	assert.InDelta(t, 22.5, computeExperienceImpactScore(exps), 1e-9)
	assert.Equal(t, 0.0, computeExperienceImpactScore(nil))
}

func TestProfileText_ExcludesContactFields(t *testing.T) {
	text := ProfileText(sampleProfile())
	assert.NotContains(t, text, "jane@example.com")
	assert.Contains(t, text, "Senior Software Engineer")
	assert.Contains(t, text, "Computer Science")
	assert.Contains(t, text, "Docker")
	assert.Contains(t, text, "ats-cli")
}

func TestExperienceText(t *testing.T) {
	p := &types.Profile{Experiences: []types.Experience{{Description: "a"}, {Description: " "}, {Description: "b"}}}
	assert.Equal(t, "a\nb", ExperienceText(p))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-5))
	assert.Equal(t, 100.0, clamp(150))
	assert.Equal(t, 42.0, clamp(42))
}

func TestScore_Deterministic(t *testing.T) {
	p := sampleProfile()
	posting := "Go Python Kubernetes"
	first := Score(p, posting)
	second := Score(p, posting)
	require.Equal(t, first, second)
}
