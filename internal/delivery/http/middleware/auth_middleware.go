package middleware

import (
	"strings"

	deliverycontext "socialnet/internal/delivery/context"
	"socialnet/internal/delivery/http/response"
	"socialnet/internal/domain/entity"
	"socialnet/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards protected routes. It extracts a bearer token,
// verifies it, rejects refresh tokens, and attaches the resolved identity to
// the request context.
type AuthMiddleware struct {
	codec service.TokenCodec
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(codec service.TokenCodec) *AuthMiddleware {
	return &AuthMiddleware{codec: codec}
}

// Authenticate validates the bearer access token on protected routes.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		payload, err := m.codec.Verify(tokenString)
		if err != nil {
			// Expired and malformed tokens read the same to the caller.
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		// A refresh token's only purpose is minting access tokens. It never
		// authorizes ordinary operations.
		if payload.Kind != entity.TokenKindAccess {
			return response.Unauthorized(c, "INVALID_TOKEN_KIND", "An access token is required; you provided a refresh token")
		}

		identity := payload.Identity()
		deliverycontext.SetIdentity(c, &identity)

		return next(c)
	}
}
