package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/posting"
	"github.com/jonathan/resume-optimizer/internal/random"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/store"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// openStore connects to the configured version-history store.
// Tests replace it with an in-memory store.
var openStore = func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database.url is not configured (set %s_DATABASE_URL)", config.EnvPrefix)
	}
	db, err := store.Connect(ctx, cfg.Database.URL, logger)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// readProfile reads a profile JSON file, validates it against the profile schema and decodes it
func readProfile(path string) (*types.Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	if err := schemas.ValidateProfile(content); err != nil {
		return nil, err
	}

	var profile types.Profile
	if err := json.Unmarshal(content, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// readOptions overlays an options JSON file on base. An empty path returns base unchanged.
func readOptions(path string, base types.OptimizationOptions) (types.OptimizationOptions, error) {
	if path == "" {
		return base, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := schemas.ValidateOptions(content); err != nil {
		return base, err
	}
	if err := json.Unmarshal(content, &base); err != nil {
		return base, fmt.Errorf("failed to unmarshal options JSON: %w", err)
	}
	return base, nil
}

// resolvePosting returns inline text when given, otherwise loads ref as a URL or file
func resolvePosting(ctx context.Context, loader *posting.Loader, ref, text string) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}
	if ref == "" {
		return "", fmt.Errorf("either --posting or --posting-text is required")
	}
	p, err := loader.Load(ctx, ref)
	if err != nil {
		return "", err
	}
	return p.Text, nil
}

// readText returns inline text when given, otherwise the contents of path
func readText(path, text string) (string, error) {
	if text != "" {
		return text, nil
	}
	if path == "" {
		return "", fmt.Errorf("either --in or --text is required")
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(content), nil
}

// randomSource picks the flag seed, then the configured seed, then the process source
func randomSource(cfg *config.Config, seed uint64) random.Source {
	if seed == 0 {
		seed = cfg.Optimizer.Seed
	}
	if seed == 0 {
		return random.Default()
	}
	return random.NewSeeded(seed)
}

// writeJSON writes v as indented JSON to path, or to stdout when path is empty
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		if _, err := stdout.Write(jsonBytes); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
