package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/controllers"
)

// SetupPharmacyRoutes configures the public directory routes
func SetupPharmacyRoutes(app *fiber.App) {
	pharmacy := app.Group("/pharmacies")
	pharmacy.Get("/", controllers.GetSchedule)
	pharmacy.Get("/names", controllers.GetPharmacyNames)
}
