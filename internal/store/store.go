// Package store persists optimization runs and the score history of each profile.
package store

import (
	"context"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// DefaultListLimit caps ListRuns when the caller passes a non-positive limit
const DefaultListLimit = 50

// RunSummary is one stored optimization run without its change list
type RunSummary struct {
	RunID          string              `json:"run_id"`
	ProfileID      string              `json:"profile_id"`
	PostingHash    string              `json:"posting_hash"`
	OriginalScore  float64             `json:"original_score"`
	EstimatedScore float64             `json:"estimated_score"`
	RescoredScore  *float64            `json:"rescored_score,omitempty"`
	Summary        types.ChangeSummary `json:"summary"`
	CreatedAt      time.Time           `json:"created_at"`
}

// ScorePoint is the composite score measured at one run
type ScorePoint struct {
	RunID     string    `json:"run_id"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the version-history store for optimization runs.
// GetRun returns nil without error when the run does not exist.
type Store interface {
	SaveRun(ctx context.Context, result *types.OptimizationResult, posting string) error
	GetRun(ctx context.Context, runID string) (*types.OptimizationResult, error)
	ListRuns(ctx context.Context, profileID string, limit int) ([]RunSummary, error)
	ScoreHistory(ctx context.Context, profileID string) ([]ScorePoint, error)
	Close()
}

// Scores returns the score values of points in order
func Scores(points []ScorePoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Score
	}
	return out
}

func summarize(result *types.OptimizationResult, postingHash string) RunSummary {
	return RunSummary{
		RunID:          result.RunID,
		ProfileID:      result.ProfileID,
		PostingHash:    postingHash,
		OriginalScore:  result.OriginalScore,
		EstimatedScore: result.EstimatedScore,
		RescoredScore:  result.RescoredScore,
		Summary:        result.Summary,
		CreatedAt:      result.CreatedAt,
	}
}
