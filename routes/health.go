package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/controllers"
)

// SetupHealthRoutes configures the health library and feedback routes
func SetupHealthRoutes(app *fiber.App) {
	health := app.Group("/health")
	health.Get("/posts", controllers.GetHealthPosts)
	health.Post("/posts/:id/like", controllers.LikeHealthPost)
	health.Get("/posts/:id/comments", controllers.GetHealthPostComments)
	health.Post("/posts/:id/comments", controllers.CreateHealthPostComment)

	app.Post("/feedback", controllers.CreateFeedback)
}
