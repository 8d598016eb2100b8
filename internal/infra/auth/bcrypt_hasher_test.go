package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"socialnet/config"
	"socialnet/internal/domain/entity"
)

func newTestHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func mustPassword(t *testing.T, raw string) entity.Password {
	t.Helper()

	p, err := entity.NewPassword(raw)
	require.NoError(t, err)

	return p
}

func TestBcryptHasher_Hash(t *testing.T) {
	// Low cost keeps the test fast.
	hasher, err := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	require.NoError(t, err)

	password := mustPassword(t, "StrongPass1!")

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password.String(), hash)

	match, err := hasher.Compare(password, hash)
	assert.NoError(t, err)
	assert.True(t, match)
}

func TestBcryptHasher_HashSaltsFreshly(t *testing.T) {
	hasher, err := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	require.NoError(t, err)

	password := mustPassword(t, "StrongPass1!")

	first, err := hasher.Hash(password)
	require.NoError(t, err)
	second, err := hasher.Hash(password)
	require.NoError(t, err)

	// Fresh salt per call: same input, different hashes, both verifiable.
	assert.NotEqual(t, first, second)

	match, err := hasher.Compare(password, first)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Compare(password, second)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestBcryptHasher_Compare(t *testing.T) {
	hasher, err := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	require.NoError(t, err)

	password := mustPassword(t, "StrongPass1!")
	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	// Correct password matches.
	match, err := hasher.Compare(password, hash)
	assert.NoError(t, err)
	assert.True(t, match)

	// Wrong password does not match, but is not an error.
	match, err = hasher.Compare(mustPassword(t, "WrongPass1!"), hash)
	assert.NoError(t, err)
	assert.False(t, match)
}

func TestBcryptHasher_CompareRejectsNonHashValues(t *testing.T) {
	hasher, err := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	require.NoError(t, err)

	password := mustPassword(t, "StrongPass1!")

	// A stored value that is not bcrypt-shaped is corrupt data, not a wrong
	// password, and must fail loudly.
	for _, stored := range []string{"", "plaintext-stored-by-mistake", "$1$legacy$hash"} {
		match, err := hasher.Compare(password, stored)
		assert.Error(t, err)
		assert.False(t, match)
	}
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher, err := NewBcryptHasher(newTestHasherConfig(customCost))
	require.NoError(t, err)

	hash, err := hasher.Hash(mustPassword(t, "StrongPass1!"))
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_InvalidCost(t *testing.T) {
	for _, cost := range []int{-1, 3, 32} {
		hasher, err := NewBcryptHasher(newTestHasherConfig(cost))
		assert.Error(t, err)
		assert.Nil(t, hasher)
	}
}

func TestBcryptHasher_DefaultsWithoutAuthConfig(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{})
	assert.NoError(t, err)
	assert.NotNil(t, hasher)
}
