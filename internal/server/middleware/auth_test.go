package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTokenValidator accepts a fixed set of tokens.
type testTokenValidator struct {
	validTokens map[string]uuid.UUID
}

func newTestTokenValidator() *testTokenValidator {
	return &testTokenValidator{validTokens: make(map[string]uuid.UUID)}
}

func (v *testTokenValidator) ValidateToken(tokenString string) (ClientIDGetter, error) {
	clientID, ok := v.validTokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return testClaims{clientID: clientID}, nil
}

type testClaims struct {
	clientID uuid.UUID
}

func (c testClaims) GetClientID() uuid.UUID {
	return c.clientID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	validator := newTestTokenValidator()
	clientID := uuid.New()
	validator.validTokens["valid-test-token-123"] = clientID

	var contextClientID uuid.UUID
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		extracted, err := GetClientID(r)
		require.NoError(t, err)
		contextClientID = extracted
		w.WriteHeader(http.StatusOK)
	}))

	for _, scheme := range []string{"Bearer", "bearer", "BeArEr"} {
		t.Run(scheme, func(t *testing.T) {
			contextClientID = uuid.Nil
			req := httptest.NewRequest(http.MethodPost, "/v1/score", nil)
			req.Header.Set("Authorization", scheme+" valid-test-token-123")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, clientID, contextClientID)
		})
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	validator := newTestTokenValidator()
	validator.validTokens["good"] = uuid.New()

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "missing Bearer prefix", authHeader: "good"},
		{name: "only Bearer", authHeader: "Bearer"},
		{name: "empty token", authHeader: "Bearer "},
		{name: "extra parts", authHeader: "Bearer good extra"},
		{name: "wrong scheme", authHeader: "Basic good"},
		{name: "unknown token", authHeader: "Bearer not.a.valid.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := AuthMiddleware(validator)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodPost, "/v1/score", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.False(t, called, "handler should not be called")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
		})
	}
}

func TestGetClientID(t *testing.T) {
	clientID := uuid.New()

	tests := []struct {
		name    string
		value   any
		want    uuid.UUID
		wantErr bool
	}{
		{name: "present", value: clientID, want: clientID},
		{name: "missing", value: nil, want: uuid.Nil, wantErr: true},
		{name: "wrong type", value: "not-a-uuid", want: uuid.Nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.value != nil {
				req = req.WithContext(context.WithValue(req.Context(), ClientIDKey(), tt.value))
			}

			got, err := GetClientID(req)
			if tt.wantErr {
				assert.ErrorContains(t, err, "client ID not found")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
