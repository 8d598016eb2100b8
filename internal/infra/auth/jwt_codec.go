package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"socialnet/config"
	"socialnet/internal/domain/entity"
	"socialnet/internal/domain/service"
	"socialnet/internal/errors"
)

// jwtCodec is a concrete implementation of the TokenCodec interface using the JWT standard.
type jwtCodec struct {
	secret     []byte        // Symmetric key for HS256 signing.
	accessTTL  time.Duration // Default time-to-live for access tokens.
	refreshTTL time.Duration // Default time-to-live for refresh tokens.
}

// NewJWTCodec is the constructor for jwtCodec.
// The signing secret comes from configuration; the documented insecure default
// is tolerated outside production and rejected when the environment is
// production. This is a startup-time configuration check, not a per-request one.
func NewJWTCodec(cfg *config.Config) (service.TokenCodec, error) {
	if cfg == nil || cfg.JWT == nil {
		return nil, errors.New("jwt configuration must be provided")
	}

	secret := cfg.JWT.Secret
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.IsProduction() && secret == config.DefaultJWTSecret {
		return nil, errors.New("the default jwt secret must be overridden in production")
	}

	return &jwtCodec{
		secret:     []byte(secret),
		accessTTL:  cfg.JWT.AccessTokenTTL,
		refreshTTL: cfg.JWT.RefreshTokenTTL,
	}, nil
}

// tokenClaims carries the payload inside the signed token.
type tokenClaims struct {
	Email string `json:"email"`
	Kind  string `json:"type"`
	jwt.RegisteredClaims
}

// Sign encodes the payload plus issued-at and expires-at claims using HS256.
// A zero ttl applies the configured default for the payload's kind.
func (c *jwtCodec) Sign(payload service.TokenPayload, ttl time.Duration) (string, error) {
	if !payload.Kind.Valid() {
		return "", errors.Errorf("unknown token kind: %s", payload.Kind)
	}

	if ttl <= 0 {
		ttl = c.defaultTTL(payload.Kind)
	}

	now := time.Now()
	claims := tokenClaims{
		Email: payload.Email,
		Kind:  string(payload.Kind),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify decodes and validates a token string. Expiration is enforced here;
// callers only see ErrTokenExpired or ErrTokenInvalid.
func (c *jwtCodec) Verify(tokenString string) (*service.TokenPayload, error) {
	var claims tokenClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	kind := entity.TokenKind(claims.Kind)
	if !kind.Valid() {
		return nil, service.ErrTokenInvalid
	}

	return &service.TokenPayload{
		UserID: userID,
		Email:  claims.Email,
		Kind:   kind,
	}, nil
}

// AccessTokenTTL returns the configured lifetime for access tokens.
func (c *jwtCodec) AccessTokenTTL() time.Duration {
	return c.accessTTL
}

// RefreshTokenTTL returns the configured lifetime for refresh tokens.
func (c *jwtCodec) RefreshTokenTTL() time.Duration {
	return c.refreshTTL
}

func (c *jwtCodec) defaultTTL(kind entity.TokenKind) time.Duration {
	if kind == entity.TokenKindRefresh {
		return c.refreshTTL
	}

	return c.accessTTL
}
