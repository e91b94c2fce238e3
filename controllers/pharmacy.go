package controllers

import (
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/cache"
	"github.com/lomepharma/pharma-garde/db"
	"github.com/lomepharma/pharma-garde/models"
)

// GetSchedule returns the published on-duty schedule, weeks with their
// pharmacies nested, in upload order.
func GetSchedule(c *fiber.Ctx) error {
	weeks := []models.Week{}
	if cache.Get(cache.KeyDirectory, &weeks) {
		return c.JSON(fiber.Map{"weeks": weeks})
	}

	if err := db.DB.Preload("Pharmacies").
		Order("id ASC").
		Find(&weeks).Error; err != nil {
		log.Printf("Error fetching schedule: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Une erreur est survenue.",
		})
	}

	cache.Set(cache.KeyDirectory, weeks)

	return c.JSON(fiber.Map{"weeks": weeks})
}

// GetPharmacyNames returns the sorted distinct pharmacy names of the
// current schedule. Pharmacists pick their affiliation from this list.
func GetPharmacyNames(c *fiber.Ctx) error {
	var names []string
	if err := db.DB.Model(&models.Pharmacy{}).
		Distinct("nom").
		Pluck("nom", &names).Error; err != nil {
		log.Printf("Error fetching pharmacy names: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Une erreur est survenue.",
		})
	}

	sort.Strings(names)

	return c.JSON(fiber.Map{"names": names})
}
