package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie_token"})
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "cookie_token", ExtractAccessToken(req))
	})

	t.Run("Empty Cookie Falls Back to Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: ""})
		req.Header.Set("Authorization", "Bearer header_token")

		assert.Equal(t, "header_token", ExtractAccessToken(req))
	})

	t.Run("No Token", func(t *testing.T) {
		assert.Empty(t, ExtractAccessToken(httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")

		assert.Empty(t, ExtractAccessToken(req))
	})
}

func TestParseToken(t *testing.T) {
	secret := []byte("test-secret")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := GenerateToken(secret, "user-1", "ADMIN", time.Hour)
		require.NoError(t, err)

		claims, err := ParseToken(secret, token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateToken(secret, "user-1", "", time.Hour)
		require.NoError(t, err)

		_, err = ParseToken([]byte("other"), token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := GenerateToken(secret, "user-1", "", -time.Hour)
		require.NoError(t, err)

		_, err = ParseToken(secret, token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("MissingUserID", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "ADMIN",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}).SignedString(secret)
		require.NoError(t, err)

		_, err = ParseToken(secret, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		_, err := ParseToken(nil, "whatever")
		assert.ErrorIs(t, err, ErrMissingSecret)

		_, err = GenerateToken(nil, "u", "", time.Hour)
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}
