package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"biblioteca/internal/platform/crypto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func token(t *testing.T, role string, ttl time.Duration) string {
	t.Helper()
	if ttl > 0 {
		tok, _, err := crypto.GenerateToken(testSecret, "user-1", role, ttl)
		if err != nil {
			t.Fatalf("generate token: %v", err)
		}
		return tok
	}
	c := crypto.Claims{
		Sub:  "user-1",
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(2 * ttl)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestRequireAnyRole(t *testing.T) {
	var sawUserID, sawRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawUserID = UserIDFrom(r)
		sawRole = RoleFrom(r)
		w.WriteHeader(http.StatusOK)
	})
	guard := RequireAnyRole(testSecret, "LIBRARIAN")(next)

	call := func(authHeader string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/libros/LIB123/disponible", nil)
		if authHeader != "" {
			r.Header.Set("Authorization", authHeader)
		}
		guard.ServeHTTP(w, r)
		return w
	}

	t.Run("allowed role passes with principal on context", func(t *testing.T) {
		w := call("Bearer " + token(t, "LIBRARIAN", time.Hour))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", sawUserID)
		assert.Equal(t, "LIBRARIAN", sawRole)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		w := call("Bearer " + token(t, "USER", time.Hour))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous is forbidden", func(t *testing.T) {
		w := call("")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("malformed header is forbidden", func(t *testing.T) {
		w := call("Basic abc123")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("garbage token is forbidden", func(t *testing.T) {
		w := call("Bearer not.a.jwt")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("expired token is forbidden", func(t *testing.T) {
		w := call("Bearer " + token(t, "LIBRARIAN", -time.Hour))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireAnyRole_MultipleRoles(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guard := RequireAnyRole(testSecret, "LIBRARIAN", "USER")(next)

	for _, role := range []string{"LIBRARIAN", "USER"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/libros/LIB123", nil)
		r.Header.Set("Authorization", "Bearer "+token(t, role, time.Hour))
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code, "role %s should be allowed", role)
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/libros/LIB123", nil)
	r.Header.Set("Authorization", "Bearer "+token(t, "AUDITOR", time.Hour))
	guard.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
