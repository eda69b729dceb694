package auth

import (
	"github.com/labstack/echo/v4"

	"notebook/internal/model"
)

// identityKey is the echo.Context key the identity gate publishes under.
const identityKey = "auth.identity"

// Identity describes the authenticated caller for the lifetime of one
// request. It is derived from the bearer token by the identity gate and
// consumed by downstream handlers.
type Identity struct {
	UserID string
	Role   string
	Token  string
}

// IsAdmin reports whether the caller holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == model.RoleAdmin
}

// SetIdentity attaches the caller's identity to the request context.
func SetIdentity(c echo.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// IdentityFrom returns the identity attached by the identity gate, if any.
func IdentityFrom(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityKey).(Identity)
	return identity, ok
}
