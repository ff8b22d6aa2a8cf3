package scoring

import "github.com/jonathan/resume-optimizer/internal/types"

// MovingAverage returns the simple moving average of scores over window.
// Fewer scores than window yields an empty slice.
func MovingAverage(scores []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, &types.ValidationError{Field: "window", Message: "must be a positive integer"}
	}
	if len(scores) < window {
		return []float64{}, nil
	}

	averages := make([]float64, 0, len(scores)-window+1)
	sum := 0.0
	for i, s := range scores {
		sum += s
		if i >= window {
			sum -= scores[i-window]
		}
		if i >= window-1 {
			averages = append(averages, sum/float64(window))
		}
	}
	return averages, nil
}

// IsNonDecreasing reports whether each score is >= the one before it
func IsNonDecreasing(scores []float64) bool {
	for i := 1; i < len(scores); i++ {
		if scores[i] < scores[i-1] {
			return false
		}
	}
	return true
}
