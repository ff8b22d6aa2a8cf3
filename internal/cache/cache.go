// Package cache stores score reports keyed by profile content and posting text.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// keyPrefix namespaces score entries in shared stores
const keyPrefix = "resume-optimizer:score:"

// Cache stores score reports. Get returns ErrNotFound on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (*types.ScoreReport, error)
	Set(ctx context.Context, key string, report *types.ScoreReport, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key derives the cache key for a profile's canonical JSON and a posting.
// Scoring is deterministic, so equal inputs always share an entry.
func Key(profileJSON []byte, posting string) string {
	h := sha256.New()
	h.Write(profileJSON)
	h.Write([]byte{0})
	h.Write([]byte(posting))
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}
