package main

import (
	"bytes"
	"strings"
	"testing"

	"eshop-be/internal/auth"
	"eshop-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenCommand(t *testing.T) {
	t.Run("StaffTokenParses", func(t *testing.T) {
		out, err := execute("admin-1", "--secret", "dev-secret", "--staff")
		require.NoError(t, err)

		claims, err := auth.ParseToken([]byte("dev-secret"), strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, "admin-1", claims.UserID)
		assert.Equal(t, utils.RoleAdmin, claims.Role)
	})

	t.Run("SecretFromEnv", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-secret")

		out, err := execute("user-1", "--role", "CUSTOMER")
		require.NoError(t, err)

		claims, err := auth.ParseToken([]byte("env-secret"), strings.TrimSpace(out))
		require.NoError(t, err)
		assert.Equal(t, "CUSTOMER", claims.Role)
	})

	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := execute("user-1")
		assert.ErrorIs(t, err, auth.ErrMissingSecret)
	})

	t.Run("NonPositiveTTL", func(t *testing.T) {
		_, err := execute("user-1", "--secret", "s", "--ttl", "0s")
		assert.Error(t, err)
	})

	t.Run("UserIDRequired", func(t *testing.T) {
		_, err := execute("--secret", "s")
		assert.Error(t, err)
	})
}
