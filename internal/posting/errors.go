package posting

import "fmt"

// FetchError represents an error while loading a posting from a URL or file.
type FetchError struct {
	URL        string
	Message    string
	StatusCode int
	Cause      error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}
