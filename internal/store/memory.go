package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jonathan/resume-optimizer/internal/types"
)

type memoryRun struct {
	result      types.OptimizationResult
	postingHash string
}

// Memory is an in-process Store used by tests and single-session CLI runs
type Memory struct {
	mu   sync.RWMutex
	runs map[string]memoryRun
}

func NewMemory() *Memory {
	return &Memory{runs: make(map[string]memoryRun)}
}

func (m *Memory) SaveRun(_ context.Context, result *types.OptimizationResult, posting string) error {
	if result == nil {
		return &StoreError{Op: "save run", Cause: errors.New("result is nil")}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[result.RunID] = memoryRun{result: *result, postingHash: PostingHash(posting)}
	return nil
}

func (m *Memory) GetRun(_ context.Context, runID string) (*types.OptimizationResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	run, ok := m.runs[runID]
	if !ok {
		return nil, nil
	}
	result := run.result
	return &result, nil
}

// byProfile returns a profile's runs, oldest first
func (m *Memory) byProfile(profileID string) []memoryRun {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var runs []memoryRun
	for _, run := range m.runs {
		if run.result.ProfileID == profileID {
			runs = append(runs, run)
		}
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].result.CreatedAt.Before(runs[j].result.CreatedAt)
	})
	return runs
}

func (m *Memory) ListRuns(_ context.Context, profileID string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	runs := m.byProfile(profileID)
	out := []RunSummary{}
	for i := len(runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, summarize(&runs[i].result, runs[i].postingHash))
	}
	return out, nil
}

func (m *Memory) ScoreHistory(_ context.Context, profileID string) ([]ScorePoint, error) {
	points := []ScorePoint{}
	for _, run := range m.byProfile(profileID) {
		points = append(points, ScorePoint{
			RunID:     run.result.RunID,
			Score:     run.result.OriginalScore,
			CreatedAt: run.result.CreatedAt,
		})
	}
	return points, nil
}

func (m *Memory) Close() {}
