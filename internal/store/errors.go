package store

import "fmt"

// StoreError wraps a failed store operation
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store: failed to %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("store: failed to %s", e.Op)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
