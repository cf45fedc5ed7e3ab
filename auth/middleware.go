package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Guard is the per-request gate in front of the protected route subtree.
// It checks cookie PRESENCE only: no signature or expiry validation on the
// hot path. An expired-but-present cookie passes here and resolves to a non
// valid result later, when something actually introspects it.
func Guard(cfg Config) fiber.Handler {
	prefix := cfg.GetProtectedPrefix()
	public := cfg.GetPublicPaths()
	login := cfg.GetLoginPath()
	cookie := cfg.GetCookieName()

	return func(c *fiber.Ctx) error {
		path := c.Path()

		if !strings.HasPrefix(path, prefix) {
			return c.Next()
		}

		for _, p := range public {
			if strings.HasPrefix(path, p) {
				return c.Next()
			}
		}

		if c.Cookies(cookie) == "" {
			return c.Redirect(login, fiber.StatusFound)
		}

		return c.Next()
	}
}
