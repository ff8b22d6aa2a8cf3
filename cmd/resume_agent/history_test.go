package main

import (
	"encoding/json"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

func seedRuns(t *testing.T, scores ...float64) {
	t.Helper()
	mem := useMemoryStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, s := range scores {
		require.NoError(t, mem.SaveRun(t.Context(), &types.OptimizationResult{
			RunID:          "run-" + string(rune('a'+i)),
			ProfileID:      "profile_001",
			OriginalScore:  s,
			EstimatedScore: s + 5,
			CreatedAt:      base.Add(time.Duration(i) * time.Hour),
		}, testPosting))
	}
}

func TestRunHistory(t *testing.T) {
	resetGlobals(t)
	seedRuns(t, 60, 65, 70, 75, 80)
	out, _ := captureOutput(t)
	historyProfileID, historyWindow, historyLimit, historyOutputFile = "profile_001", 3, 2, ""

	require.NoError(t, runHistory(nil, nil))

	var result HistoryOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, []float64{60, 65, 70, 75, 80}, result.Scores)
	assert.Equal(t, []float64{65, 70, 75}, result.MovingAverage)
	assert.True(t, result.NonDecreasing)
	require.Len(t, result.Runs, 2)
	assert.Equal(t, "run-e", result.Runs[0].RunID, "newest run first")
}

func TestRunHistory_Regression(t *testing.T) {
	resetGlobals(t)
	seedRuns(t, 70, 60)
	_, errOut := captureOutput(t)
	verbose = true
	historyProfileID, historyWindow, historyLimit, historyOutputFile = "profile_001", 3, 10, ""

	require.NoError(t, runHistory(nil, nil))
	assert.Contains(t, errOut.String(), "regressed")
}

func TestRunHistory_UnknownProfile(t *testing.T) {
	resetGlobals(t)
	seedRuns(t, 60)
	out, _ := captureOutput(t)
	historyProfileID, historyWindow, historyLimit, historyOutputFile = "nobody", 3, 10, ""

	require.NoError(t, runHistory(nil, nil))

	var result HistoryOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Empty(t, result.Scores)
	assert.Empty(t, result.Runs)
	assert.True(t, result.NonDecreasing)
}

func TestRunHistory_InvalidWindow(t *testing.T) {
	resetGlobals(t)
	seedRuns(t, 60)
	captureOutput(t)
	historyProfileID, historyWindow, historyLimit, historyOutputFile = "profile_001", 0, 10, ""

	err := runHistory(nil, nil)
	var valErr *types.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestRunHistory_NoDatabase(t *testing.T) {
	resetGlobals(t)
	captureOutput(t)
	historyProfileID, historyWindow, historyLimit, historyOutputFile = "profile_001", 3, 10, ""

	err := runHistory(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.url is not configured")
}

func TestHistoryCommand_MissingProfileIDFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "history")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"profile-id\" not set")
}
