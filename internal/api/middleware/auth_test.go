package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runAuth(t *testing.T, authHeader string) (*httptest.ResponseRecorder, int64, bool, string) {
	t.Helper()

	var (
		gotUserID int64
		gotOK     bool
		gotToken  string
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r.Context())
		gotToken = GetAuthToken(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	Auth(testSecret)(next).ServeHTTP(rec, req)
	return rec, gotUserID, gotOK, gotToken
}

func TestAuth_ValidToken(t *testing.T) {
	raw := signedToken(t, testSecret, jwt.MapClaims{"sub": float64(42)})

	rec, userID, ok, token := runAuth(t, "Bearer "+raw)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
	// Исходный токен проксируется в вызовы booking engine как есть
	assert.Equal(t, raw, token)
}

func TestAuth_NumericStringSub(t *testing.T) {
	raw := signedToken(t, testSecret, jwt.MapClaims{"sub": "42"})

	rec, userID, ok, _ := runAuth(t, "Bearer "+raw)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _, ok, _ := runAuth(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestAuth_NotBearer(t *testing.T) {
	rec, _, _, _ := runAuth(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_WrongSignature(t *testing.T) {
	raw := signedToken(t, "other-secret", jwt.MapClaims{"sub": float64(42)})

	rec, _, _, _ := runAuth(t, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_MissingSubClaim(t *testing.T) {
	raw := signedToken(t, testSecret, jwt.MapClaims{"name": "anna"})

	rec, _, _, _ := runAuth(t, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_NonNumericSub(t *testing.T) {
	raw := signedToken(t, testSecret, jwt.MapClaims{"sub": "anna"})

	rec, _, _, _ := runAuth(t, "Bearer "+raw)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
