package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPick_Empty(t *testing.T) {
	assert.Equal(t, "", Pick(Default(), nil))
}

func TestPick_NilSourceUsesDefault(t *testing.T) {
	assert.Contains(t, []string{"a", "b"}, Pick(nil, []string{"a", "b"}))
}

func TestNewSeeded_Deterministic(t *testing.T) {
	choices := []string{"a", "b", "c", "d", "e"}
	first, second := NewSeeded(42), NewSeeded(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, Pick(first, choices), Pick(second, choices))
	}
}

func TestDefault_InRange(t *testing.T) {
	src := Default()
	for i := 0; i < 100; i++ {
		n := src.IntN(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
	}
}

func TestSeeded_ConcurrentUse(t *testing.T) {
	src := NewSeeded(7)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = src.IntN(10)
			}
		}()
	}
	wg.Wait()
}
