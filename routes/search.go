package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/controllers"
	"github.com/lomepharma/pharma-garde/middleware"
)

// SetupSearchRoutes configures the client side of the request lifecycle.
// Both routes work anonymously; a bearer token, when present, links the
// search to the caller's profile.
func SetupSearchRoutes(app *fiber.App) {
	search := app.Group("/searches", middleware.Optional())
	search.Post("/", controllers.CreateSearch)
	search.Get("/", controllers.ListSearchesForClient)
}
