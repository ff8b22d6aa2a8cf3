package rewriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartsWithActionVerb(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"Strong verb - built", "built a system", true},
		{"Strong verb - led", "Led the team", true},
		{"Strong verb - achieved", "achieved 50% improvement", true},
		{"Verb-like suffix - ed", "Revisited the roadmap", true},
		{"Verb-like suffix - ing", "Building pipelines", true},
		{"Verb-like suffix - ified", "Certified engineers", true},
		{"Too short for suffix", "Red team", false},
		{"Weak start - I", "I worked on", false},
		{"Weak start - The", "The system was", false},
		{"Empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := startsWithActionVerb(tt.text)
			assert.Equal(t, tt.expected, result, "startsWithActionVerb(%q) = %v, want %v", tt.text, result, tt.expected)
		})
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Web applications", "web applications"},
		{"AWS migration", "AWS migration"},
		{"GraphQL gateway", "GraphQL gateway"},
		{"iOS app", "iOS app"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, lowerFirst(tt.in))
		})
	}
}
