package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeActionVerbs(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		strong      []string
		weak        []string
		expectScore float64
	}{
		{
			name:        "empty text",
			text:        "",
			expectScore: 20,
		},
		{
			name:        "no recognized verbs",
			text:        "Python\nKubernetes clusters",
			expectScore: 20,
		},
		{
			name:        "all strong",
			text:        "- Led a team of five\n- Architected the billing system",
			strong:      []string{"led", "architected"},
			expectScore: 100,
		},
		{
			name:        "all weak",
			text:        "• Responsible for deployments\n• Worked on web applications",
			weak:        []string{"responsible for", "worked on"},
			expectScore: 0,
		},
		{
			name:        "mixed",
			text:        "1. Built the API\n2. Helped with onboarding\n3. Shipped v2\n4. Assisted in QA",
			strong:      []string{"built", "shipped"},
			weak:        []string{"helped with", "assisted in"},
			expectScore: 50,
		},
		{
			name:        "strong verb within first five words",
			text:        "Successfully launched the mobile app",
			strong:      []string{"launched"},
			expectScore: 100,
		},
		{
			name:        "strong verb beyond the window is ignored",
			text:        "In my time at the company we launched things",
			expectScore: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeActionVerbs(tt.text)
			assert.Equal(t, tt.strong, got.StrongVerbs)
			assert.Equal(t, tt.weak, got.WeakVerbs)
			assert.Equal(t, len(tt.strong), got.StrongCount)
			assert.Equal(t, len(tt.weak), got.WeakCount)
			assert.InDelta(t, tt.expectScore, got.Score(), 0.001)
		})
	}
}

func TestAnalyzeActionVerbs_OneOfEachPerLine(t *testing.T) {
	got := AnalyzeActionVerbs("Was responsible for and led and built things")
	assert.Equal(t, 1, got.StrongCount)
	assert.Equal(t, []string{"led"}, got.StrongVerbs)
	assert.Equal(t, []string{"was responsible for"}, got.WeakVerbs)
}

func TestMatchWeakOpener(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Worked on web applications", "worked on"},
		{"Worked closely with design", "worked"},
		{"Responsible for hiring", "responsible for"},
		{"- used Jira daily", "used"},
		{"Workflow automation", ""},
		{"Led the team", ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchWeakOpener(LeadingWords(tt.line, 5)))
		})
	}
}

func TestLeadingWords(t *testing.T) {
	assert.Equal(t, []string{"built", "apis", "in", "go"}, LeadingWords("- Built APIs, in Go.", 5))
	assert.Equal(t, []string{"a", "b"}, LeadingWords("a b c d", 2))
	assert.Empty(t, LeadingWords("  -  ", 5))
}
