package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/lomepharma/pharma-garde/config"

	"github.com/lomepharma/pharma-garde/cron"

	"github.com/lomepharma/pharma-garde/db"

	"github.com/lomepharma/pharma-garde/redis"

	"github.com/lomepharma/pharma-garde/routes"
)

func main() {
	cfg := config.Load()

	app := fiber.New()
	db.Migrate()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Pharma Garde API")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupPharmacyRoutes(app)
	routes.SetupSearchRoutes(app)
	routes.SetupPharmacistRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupHealthRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":" + cfg.Port))
}
