package main

import (
	"encoding/json"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/random"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
)

func TestRunRewriteBullet(t *testing.T) {
	tests := []struct {
		name        string
		bullet      string
		context     string
		wantChanged bool
	}{
		{name: "weak phrase", bullet: "- Worked on web applications", wantChanged: true},
		{name: "weak verb with context", bullet: "Helped the team ship releases", context: "kubernetes infrastructure", wantChanged: true},
		{name: "already strong", bullet: "Architected a billing platform", wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetGlobals(t)
			out, _ := captureOutput(t)
			rewriteBulletText, rewriteBulletContext, rewriteBulletSeed, rewriteBulletOutput = tt.bullet, tt.context, 7, ""

			require.NoError(t, runRewriteBullet(nil, nil))

			var result rewriting.Result
			require.NoError(t, json.Unmarshal(out.Bytes(), &result))
			assert.Equal(t, tt.bullet, result.Original)
			assert.Equal(t, tt.wantChanged, result.Changed)
			if !tt.wantChanged {
				assert.Equal(t, tt.bullet, result.Rewritten)
				return
			}

			candidates := rewriting.NewRewriter(random.NewSeeded(1)).CandidateVerbs(tt.bullet, tt.context)
			first := strings.Fields(strings.TrimPrefix(result.Rewritten, "- "))[0]
			assert.Contains(t, candidates, first)
		})
	}
}

func TestRewriteBulletCommand_MissingBulletFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "rewrite-bullet", "--context", "Go")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"bullet\" not set")
}
