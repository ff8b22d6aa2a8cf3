package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr string
	}{
		{
			name:    "empty profile is valid",
			profile: Profile{},
		},
		{
			name: "valid profile",
			profile: Profile{
				PersonalInfo: PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
				Skills:       []Skill{{Name: "Go"}, {Name: "Python"}},
				Projects:     []Project{{Name: "site", URL: "https://example.com"}},
			},
		},
		{
			name:    "bad email",
			profile: Profile{PersonalInfo: PersonalInfo{Email: "not-an-email"}},
			wantErr: "validation error in profile",
		},
		{
			name:    "duplicate skill ignores case",
			profile: Profile{Skills: []Skill{{Name: "Go"}, {Name: " go "}}},
			wantErr: "duplicate skill name",
		},
		{
			name:    "empty skill name",
			profile: Profile{Skills: []Skill{{Name: ""}}},
			wantErr: "validation error in profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfile_HasSkill(t *testing.T) {
	p := &Profile{Skills: []Skill{{Name: "Kubernetes"}}}
	assert.True(t, p.HasSkill("kubernetes"))
	assert.True(t, p.HasSkill(" KUBERNETES "))
	assert.False(t, p.HasSkill("docker"))
}

func TestProfile_CloneIsDeep(t *testing.T) {
	original := &Profile{
		Experiences: []Experience{{ID: "e1", Description: "Built things"}},
		Skills:      []Skill{{Name: "Go"}},
		Projects:    []Project{{ID: "p1", Technologies: []string{"Go"}}},
	}

	clone := original.Clone()
	clone.Experiences[0].Description = "changed"
	clone.Skills = append(clone.Skills, Skill{Name: "Rust"})
	clone.Projects[0].Technologies[0] = "Rust"

	assert.Equal(t, "Built things", original.Experiences[0].Description)
	assert.Len(t, original.Skills, 1)
	assert.Equal(t, "Go", original.Projects[0].Technologies[0])
	assert.Nil(t, (*Profile)(nil).Clone())
}

func TestOptimizationOptions_Validate(t *testing.T) {
	opts := DefaultOptimizationOptions()
	require.NoError(t, opts.Validate())
	assert.Equal(t, 10, opts.MaxKeywords)
	assert.True(t, opts.RewriteBullets)
	assert.False(t, opts.Rescore)

	for _, bad := range []int{0, -3} {
		opts.MaxKeywords = bad
		err := opts.Validate()
		require.Error(t, err)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "max_keywords", vErr.Field)
	}
}

func TestOptimizationOptions_JSONDefaults(t *testing.T) {
	opts := DefaultOptimizationOptions()
	require.NoError(t, json.Unmarshal([]byte(`{"inject_keywords": false}`), &opts))

	assert.False(t, opts.InjectKeywords)
	assert.True(t, opts.RewriteBullets, "fields absent from JSON keep their defaults")
	assert.Equal(t, DefaultMaxKeywords, opts.MaxKeywords)
}

func TestChangeSummary_Add(t *testing.T) {
	var s ChangeSummary
	s.Add(ChangeBulletRewrite)
	s.Add(ChangeBulletRewrite)
	s.Add(ChangeKeywordInjection)
	s.Add(ChangeQuantificationSuggested)
	s.Add(ChangeFormatting)

	assert.Equal(t, ChangeSummary{
		BulletRewrites:            2,
		KeywordInjections:         1,
		QuantificationSuggestions: 1,
		FormattingFixes:           1,
		Total:                     5,
	}, s)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "validation error in window: must be positive", (&ValidationError{Field: "window", Message: "must be positive"}).Error())
	assert.Equal(t, "validation error: bad", (&ValidationError{Message: "bad"}).Error())
}

func TestNewChangeID_Unique(t *testing.T) {
	assert.NotEqual(t, NewChangeID(), NewChangeID())
}
