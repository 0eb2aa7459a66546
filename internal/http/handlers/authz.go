package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"tradepost/internal/auth"
	applog "tradepost/internal/log"
)

// RequireAuth verifies the Bearer token from the identity provider and
// stores its subject under Locals("uid"). A client-supplied userId field is
// never trusted on its own; handlers compare it against this subject.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		const prefix = "Bearer "
		h := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(h, prefix) {
			applog.Security(c, "auth.missing", nil)
			return jsonMsg(c, fiber.StatusUnauthorized, "missing bearer token")
		}
		sub, err := auth.ParseSubject(secret, strings.TrimPrefix(h, prefix))
		if err != nil {
			applog.Security(c, "auth.invalid", nil)
			return jsonMsg(c, fiber.StatusUnauthorized, "invalid token")
		}
		c.Locals("uid", sub)
		return c.Next()
	}
}

func uid(c *fiber.Ctx) string {
	s, _ := c.Locals("uid").(string)
	return s
}

func isSelf(c *fiber.Ctx, userID string) bool {
	return userID != "" && uid(c) == userID
}

func denySelf(c *fiber.Ctx, target string) error {
	applog.Security(c, "access.denied.self", map[string]any{"target": target})
	return jsonMsg(c, fiber.StatusForbidden, "forbidden")
}
