package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/controllers"
	"github.com/lomepharma/pharma-garde/middleware"
	"github.com/lomepharma/pharma-garde/models"
)

// SetupAdminRoutes configures provisioning routes, all gated on a
// per-admin account rather than a shared password.
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	admin.Put("/schedule", controllers.ReplaceSchedule)
	admin.Post("/pharmacists", controllers.GeneratePharmacistCredential)
	admin.Post("/health/tips", controllers.SeedHealthTips)
}
