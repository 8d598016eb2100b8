package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassword(t *testing.T) {
	t.Run("accepts valid password", func(t *testing.T) {
		password, err := NewPassword("StrongPass1!")

		require.NoError(t, err)
		assert.Equal(t, "StrongPass1!", password.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		password, err := NewPassword("  StrongPass1!  ")

		require.NoError(t, err)
		assert.Equal(t, "StrongPass1!", password.String())
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		for _, raw := range []string{"", "short", "1234567"} {
			_, err := NewPassword(raw)
			assert.Error(t, err, "raw=%q", raw)
		}
	})

	t.Run("accepts passwords up to the bcrypt input limit", func(t *testing.T) {
		password, err := NewPassword(strings.Repeat("a", 72))

		require.NoError(t, err)
		assert.Len(t, password.String(), 72)
	})

	t.Run("rejects passwords beyond the bcrypt input limit", func(t *testing.T) {
		_, err := NewPassword(strings.Repeat("a", 73))

		assert.Error(t, err)
	})

	t.Run("whitespace does not count toward minimum length", func(t *testing.T) {
		_, err := NewPassword("   abc   ")

		assert.Error(t, err)
	})

	t.Run("rejects values shaped like a stored hash", func(t *testing.T) {
		for _, raw := range []string{
			"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
			"$2b$12$abcdefghijklmnopqrstuv",
			"$2y$10$abcdefghijklmnopqrstuv",
		} {
			_, err := NewPassword(raw)
			assert.Error(t, err, "raw=%q", raw)
		}
	})
}
