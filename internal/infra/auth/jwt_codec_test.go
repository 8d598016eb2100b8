package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/config"
	"socialnet/internal/domain/entity"
	"socialnet/internal/domain/service"
	"socialnet/internal/errors"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.JWT = &config.JWTConfig{
		Secret:          "test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}

	return cfg
}

func TestNewJWTCodec(t *testing.T) {
	codec, err := NewJWTCodec(newTestJWTConfig())
	assert.NoError(t, err)
	assert.NotNil(t, codec)
}

func TestNewJWTCodec_MissingConfig(t *testing.T) {
	codec, err := NewJWTCodec(nil)
	assert.Error(t, err)
	assert.Nil(t, codec)

	codec, err = NewJWTCodec(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, codec)
}

func TestNewJWTCodec_EmptySecret(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.Secret = ""

	codec, err := NewJWTCodec(cfg)
	assert.Error(t, err)
	assert.Nil(t, codec)
}

func TestNewJWTCodec_DefaultSecretInProduction(t *testing.T) {
	cfg := newTestJWTConfig()
	cfg.JWT.Secret = config.DefaultJWTSecret

	// Tolerated outside production.
	codec, err := NewJWTCodec(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, codec)

	// Rejected in production.
	cfg.Env.Env = "production"
	codec, err = NewJWTCodec(cfg)
	assert.Error(t, err)
	assert.Nil(t, codec)
}

func TestJWTCodec_SignAndVerify(t *testing.T) {
	codec, err := NewJWTCodec(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()

	for _, kind := range []entity.TokenKind{entity.TokenKindAccess, entity.TokenKindRefresh} {
		payload := service.TokenPayload{
			UserID: userID,
			Email:  "user@example.com",
			Kind:   kind,
		}

		signed, err := codec.Sign(payload, 0)
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		decoded, err := codec.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, userID, decoded.UserID)
		assert.Equal(t, "user@example.com", decoded.Email)
		assert.Equal(t, kind, decoded.Kind)
	}
}

func TestJWTCodec_SignRejectsUnknownKind(t *testing.T) {
	codec, err := NewJWTCodec(newTestJWTConfig())
	require.NoError(t, err)

	_, err = codec.Sign(service.TokenPayload{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Kind:   entity.TokenKind("session"),
	}, 0)
	assert.Error(t, err)
}

func TestJWTCodec_VerifyExpiredToken(t *testing.T) {
	codec, err := NewJWTCodec(newTestJWTConfig())
	require.NoError(t, err)

	signed, err := codec.Sign(service.TokenPayload{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Kind:   entity.TokenKindAccess,
	}, time.Millisecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	decoded, err := codec.Verify(signed)
	assert.Nil(t, decoded)
	assert.True(t, errors.Is(err, service.ErrTokenExpired))
}

func TestJWTCodec_VerifyInvalidToken(t *testing.T) {
	codec, err := NewJWTCodec(newTestJWTConfig())
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		decoded, err := codec.Verify(token)
		assert.Nil(t, decoded)
		assert.True(t, errors.Is(err, service.ErrTokenInvalid))
	}
}

func TestJWTCodec_VerifyRejectsForeignSignature(t *testing.T) {
	codec, err := NewJWTCodec(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := newTestJWTConfig()
	otherCfg.JWT.Secret = "another-secret"
	otherCodec, err := NewJWTCodec(otherCfg)
	require.NoError(t, err)

	signed, err := otherCodec.Sign(service.TokenPayload{
		UserID: uuid.New(),
		Email:  "user@example.com",
		Kind:   entity.TokenKindAccess,
	}, 0)
	require.NoError(t, err)

	decoded, err := codec.Verify(signed)
	assert.Nil(t, decoded)
	assert.True(t, errors.Is(err, service.ErrTokenInvalid))
}

func TestJWTCodec_TTLGetters(t *testing.T) {
	codec, err := NewJWTCodec(newTestJWTConfig())
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, codec.AccessTokenTTL())
	assert.Equal(t, 30*24*time.Hour, codec.RefreshTokenTTL())
}
