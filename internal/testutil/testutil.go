package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"biblioteca/internal/platform/crypto"

	"github.com/golang-jwt/jwt/v5"
)

// Secret is the signing secret used by handler and middleware tests.
const Secret = "test-secret"

// LibrarianToken returns a valid token carrying the LIBRARIAN role.
func LibrarianToken() string {
	return Token("librarian-id-1", "LIBRARIAN")
}

// UserToken returns a valid token carrying the USER role.
func UserToken() string {
	return Token("user-id-1", "USER")
}

// Token generates a valid JWT for testing.
func Token(userID, role string) string {
	token, _, _ := crypto.GenerateToken(Secret, userID, role, time.Hour)
	return token
}

// ExpiredToken generates an already-expired JWT for testing.
func ExpiredToken(userID, role string) string {
	c := crypto.Claims{
		Sub:  userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(Secret))
	return token
}

// NewRequest creates a JSON HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	var r *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a JSON HTTP request with a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// DecodeBody decodes a recorded JSON response body into a map.
func DecodeBody(w *httptest.ResponseRecorder) map[string]interface{} {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)
	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}
	return bodyMap
}
