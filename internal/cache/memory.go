package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
)

type memoryEntry struct {
	report    types.ScoreReport
	expiresAt time.Time
}

// Memory is an in-process Cache. Entries with a zero TTL never expire.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string) (*types.ScoreReport, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, ErrNotFound
	}

	report := entry.report
	return &report, nil
}

func (m *Memory) Set(_ context.Context, key string, report *types.ScoreReport, ttl time.Duration) error {
	if report == nil {
		return nil
	}
	entry := memoryEntry{report: *report}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Len returns the number of stored entries, including expired ones not yet evicted
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
