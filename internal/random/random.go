// Package random provides the injectable random source used for verb and template selection.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source picks integers in [0, n). Implementations must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

type processSource struct{}

func (processSource) IntN(n int) int {
	return rand.IntN(n)
}

// Default returns the process-level source backed by math/rand/v2's global generator
func Default() Source {
	return processSource{}
}

// seededSource wraps a PCG generator with a mutex
type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a deterministic source for tests and reproducible runs
func NewSeeded(seed uint64) Source {
	return &seededSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Pick returns a uniformly chosen element of choices, or "" when choices is empty
func Pick(src Source, choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	if src == nil {
		src = Default()
	}
	return choices[src.IntN(len(choices))]
}
