package context

import (
	"socialnet/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// GetIdentity extracts the authenticated identity from echo.Context.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity, ok
}

// SetIdentity stores the authenticated identity in echo.Context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
}
