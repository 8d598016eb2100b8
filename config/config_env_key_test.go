package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"jwt": map[string]any{
			"secret":          "x",
			"accessTokenTtl":  "15m",
			"refreshTokenTtl": "720h",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "aligns camelCase segments with existing yaml keys",
			rawKey: "JWT_ACCESSTOKENTTL",
			want:   "jwt.accessTokenTtl",
		},
		{
			name:   "aligns nested postgres keys",
			rawKey: "POSTGRES_SSLMODE",
			want:   "postgres.sslMode",
		},
		{
			name:   "keeps unknown segments lowercased",
			rawKey: "JWT_UNKNOWNFIELD",
			want:   "jwt.unknownfield",
		},
		{
			name:   "key without yaml counterpart",
			rawKey: "HTTP_PORT",
			want:   "http.port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, DefaultJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, defaultAccessTokenTTL, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, defaultRefreshTokenTTL, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		JWT:  &JWTConfig{Secret: "prod-secret", AccessTokenTTL: 1, RefreshTokenTTL: 2},
		Auth: &AuthConfig{BcryptCost: 12},
	}
	applyDefaults(cfg)

	assert.Equal(t, "prod-secret", cfg.JWT.Secret)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}
