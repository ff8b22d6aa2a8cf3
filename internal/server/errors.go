package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-optimizer/internal/posting"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrHistoryUnavailable indicates the server runs without a version-history store
type ErrHistoryUnavailable struct{}

func (e *ErrHistoryUnavailable) Error() string {
	return "history store is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		reqErr     *ErrValidation
		valErr     *types.ValidationError
		schemaErr  *schemas.ValidationError
		fetchErr   *posting.FetchError
		historyErr *ErrHistoryUnavailable
	)

	switch {
	case errors.As(err, &reqErr), errors.As(err, &valErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &historyErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
