package cache

import "errors"

// ErrNotFound is returned when a key has no live entry
var ErrNotFound = errors.New("cache: entry not found")
