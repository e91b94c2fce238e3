package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/controllers"
	"github.com/lomepharma/pharma-garde/middleware"
	"github.com/lomepharma/pharma-garde/models"
)

// SetupPharmacistRoutes configures the pharmacist dashboard routes. Every
// route requires an authenticated pharmacien profile.
func SetupPharmacistRoutes(app *fiber.App) {
	pharmacist := app.Group("/pharmacist", middleware.Protected(), middleware.RequireRole(models.RolePharmacien))
	pharmacist.Get("/searches", controllers.GetAllSearches)
	pharmacist.Post("/searches/:id/responses", controllers.RecordResponse)
	pharmacist.Patch("/profile", controllers.UpdatePharmacistProfile)
}
