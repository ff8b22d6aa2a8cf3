package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/store"
)

const testProfileJSON = `{
  "id": "profile_001",
  "personal_info": {"name": "Jane Doe", "email": "jane@example.com", "summary": "Backend engineer"},
  "experiences": [
    {"id": "exp_001", "company": "Acme", "role": "Software Engineer",
     "description": "- Worked on web applications in Go\n- Increased revenue by 25%\n- Helped with deployments 06/2020"}
  ],
  "education": [{"id": "edu_001", "institution": "State University", "degree": "BS"}],
  "skills": [{"name": "Go"}, {"name": "Docker"}],
  "projects": [{"id": "proj_001", "name": "ats-cli", "description": "Command line resume scorer"}]
}`

const testPosting = "Senior Go engineer with Kubernetes, Terraform and Docker experience. Kubernetes operators a plus."

func getBinaryPath(t *testing.T) string {
	binaryName := "resume_agent"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/resume_agent ./cmd/resume_agent'", binaryPath)
	}

	return binaryPath
}

// writeFile writes content under a fresh temp dir and returns its path
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// captureOutput redirects command stdout and stderr into buffers for the test
func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	prevOut, prevErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() { stdout, stderr = prevOut, prevErr })
	return &out, &errOut
}

// resetGlobals clears the root flags so each test starts from defaults
func resetGlobals(t *testing.T) {
	t.Helper()
	configFile, logLevel, verbose = "", "error", false
	t.Cleanup(func() { configFile, logLevel, verbose = "", "", false })
}

// useMemoryStore swaps the database-backed store for a shared in-memory one
func useMemoryStore(t *testing.T) *store.Memory {
	t.Helper()
	mem := store.NewMemory()
	prev := openStore
	openStore = func(context.Context, *config.Config, *zap.Logger) (store.Store, error) {
		return mem, nil
	}
	t.Cleanup(func() { openStore = prev })
	return mem
}
