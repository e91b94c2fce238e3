package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lomepharma/pharma-garde/ai"
	"github.com/lomepharma/pharma-garde/cache"
	"github.com/lomepharma/pharma-garde/db"
	"github.com/lomepharma/pharma-garde/models"
	"github.com/lomepharma/pharma-garde/utils"
)

// Swappable seams for the two upstream services the request flow depends
// on. Tests replace them with fakes.
var (
	uploadPhoto      = utils.UploadToCloudinary
	normalizeProduct = ai.NormalizeProduct
)

// CreateSearch handles a product request: validate, upload the photos,
// normalize the product name, persist. Validation happens before any
// storage mutation; an upload failure aborts the request. A normalizer
// failure falls back to the original text instead of failing the request.
func CreateSearch(c *fiber.Ctx) error {
	phone := utils.NormalizePhone(c.FormValue("contact_phone"))
	description := strings.TrimSpace(c.FormValue("product_name"))

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, f := range form.File["images"] {
			if f.Size > 0 {
				files = append(files, f)
			}
		}
	}

	fields := fiber.Map{}
	if !utils.ValidPhone(phone) {
		fields["contact_phone"] = "Le numéro de contact est invalide."
	}
	if description == "" && len(files) == 0 {
		fields["product_name"] = "Décrivez le produit ou ajoutez une photo."
	}
	if len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Données de recherche invalides.",
			"fields": fields,
		})
	}

	searchID := uuid.NewString()

	photoURLs := make(models.StringArray, 0, len(files))
	for i, file := range files {
		f, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Impossible de lire l'image envoyée.",
			})
		}

		publicID := fmt.Sprintf("%s/%d-%d", searchID, time.Now().Unix(), i)
		url, err := uploadPhoto(f, publicID, "demands")
		f.Close()
		if err != nil {
			log.Printf("Error uploading search photo: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erreur de téléversement d'image.",
			})
		}
		photoURLs = append(photoURLs, url)
	}

	productName, err := normalizeProduct(c.UserContext(), description, photoURLs)
	if err != nil {
		// The normalizer is best effort: keep the client's own words.
		log.Printf("Normalizer failed, keeping original text: %v", err)
		productName = description
	}

	search := models.Search{
		ID:                  searchID,
		ClientPhone:         phone,
		OriginalProductName: description,
		ProductName:         productName,
		PhotoURLs:           photoURLs,
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		search.ClientID = &userID
	}

	if err := db.DB.Create(&search).Error; err != nil {
		log.Printf("Error creating search: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Erreur lors de l'enregistrement de la recherche.",
		})
	}

	cache.Invalidate(cache.KeyClient(phone), cache.KeyDashboard)

	return c.Status(fiber.StatusCreated).JSON(search)
}

// ListSearchesForClient returns the caller's searches with nested
// responses, newest first. The canonical identifier is the phone; an empty
// result is not an error.
func ListSearchesForClient(c *fiber.Ctx) error {
	phone := utils.NormalizePhone(c.Query("phone"))
	if phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Identifiant utilisateur manquant.",
		})
	}

	searches := []models.Search{}
	if cache.Get(cache.KeyClient(phone), &searches) {
		return c.JSON(fiber.Map{"searches": searches})
	}

	if err := db.DB.Preload("Responses").
		Where("client_phone = ?", phone).
		Order("created_at DESC").
		Find(&searches).Error; err != nil {
		log.Printf("Error fetching client searches: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Une erreur est survenue.",
		})
	}

	cache.Set(cache.KeyClient(phone), searches)

	return c.JSON(fiber.Map{"searches": searches})
}
