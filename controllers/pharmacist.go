package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/cache"
	"github.com/lomepharma/pharma-garde/db"
	"github.com/lomepharma/pharma-garde/models"
)

// GetAllSearches returns every outstanding search with nested responses,
// newest first. Route is guarded by RequireRole(pharmacien); anyone else is
// denied before this handler runs.
func GetAllSearches(c *fiber.Ctx) error {
	searches := []models.Search{}
	if cache.Get(cache.KeyDashboard, &searches) {
		return c.JSON(fiber.Map{"searches": searches})
	}

	if err := db.DB.Preload("Responses").
		Order("created_at DESC").
		Find(&searches).Error; err != nil {
		log.Printf("Error fetching searches: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Une erreur est survenue.",
		})
	}

	cache.Set(cache.KeyDashboard, searches)

	return c.JSON(fiber.Map{"searches": searches})
}

// RecordResponse attaches the calling pharmacist's reply to a search. One
// response per pharmacist per search: a repeat submission updates the
// price in place instead of creating a duplicate.
func RecordResponse(c *fiber.Ctx) error {
	type ResponseInput struct {
		Price *float64 `json:"price"`
	}

	userID := c.Locals("userID").(uint)
	searchID := c.Params("id")

	input := new(ResponseInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var search models.Search
	if err := db.DB.First(&search, "id = ?", searchID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Recherche introuvable.",
		})
	}

	var pharmacist models.Profile
	if err := db.DB.First(&pharmacist, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Accès non autorisé.",
		})
	}

	pharmacyName := pharmacist.Username
	if pharmacist.PharmacyName != nil && *pharmacist.PharmacyName != "" {
		pharmacyName = *pharmacist.PharmacyName
	}

	var response models.Response
	result := db.DB.Where("search_id = ? AND pharmacist_id = ?", search.ID, userID).First(&response)
	if result.RowsAffected > 0 {
		response.Price = input.Price
		response.PharmacyName = pharmacyName
		if err := db.DB.Save(&response).Error; err != nil {
			log.Printf("Error updating response: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Impossible d'enregistrer la réponse.",
			})
		}
	} else {
		response = models.Response{
			SearchID:     search.ID,
			PharmacistID: userID,
			PharmacyName: pharmacyName,
			Price:        input.Price,
		}
		if err := db.DB.Create(&response).Error; err != nil {
			log.Printf("Error creating response: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Impossible d'enregistrer la réponse.",
			})
		}
	}

	cache.Invalidate(cache.KeyDashboard, cache.KeyClient(search.ClientPhone))

	return c.Status(fiber.StatusCreated).JSON(response)
}

// UpdatePharmacistProfile assigns the caller to one of the directory's
// pharmacy names.
func UpdatePharmacistProfile(c *fiber.Ctx) error {
	type ProfileInput struct {
		PharmacyName string `json:"pharmacy_name"`
	}

	userID := c.Locals("userID").(uint)

	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.PharmacyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Le nom de la pharmacie est requis.",
		})
	}

	var profile models.Profile
	if err := db.DB.First(&profile, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Profil introuvable.",
		})
	}

	if err := db.DB.Model(&profile).Update("pharmacy_name", input.PharmacyName).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Impossible de mettre à jour le profil.",
		})
	}

	profile.Password = ""
	return c.JSON(fiber.Map{
		"message": "Profil mis à jour.",
		"profile": profile,
	})
}
