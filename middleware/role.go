package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/db"
	"github.com/lomepharma/pharma-garde/models"
)

// RequireRole checks the caller's role against the database rather than
// trusting the token claim, so a rotated or coerced role takes effect on
// the next request, not the next login.
func RequireRole(roleName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Accès non autorisé.",
			})
		}

		var profile models.Profile
		if err := db.DB.Preload("Role").First(&profile, userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Accès non autorisé.",
			})
		}

		if profile.Role.Name != roleName {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": roleDeniedMessage(roleName),
			})
		}

		return c.Next()
	}
}

func roleDeniedMessage(roleName string) string {
	switch roleName {
	case models.RolePharmacien:
		return "Accès réservé aux pharmaciens."
	case models.RoleAdmin:
		return "Accès réservé aux administrateurs."
	default:
		return "Accès non autorisé."
	}
}
