package controllers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/ai"
	"github.com/lomepharma/pharma-garde/cache"
	"github.com/lomepharma/pharma-garde/db"
	"github.com/lomepharma/pharma-garde/models"
	"github.com/lomepharma/pharma-garde/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Bulk upload contract: a JSON array of week objects, each carrying a
// semaine label and a pharmacies array. Pharmacies is a pointer so a
// missing key can be told apart from an empty list.
type PharmacyUpload struct {
	Nom          string `json:"nom"`
	Localisation string `json:"localisation"`
	Contact1     string `json:"contact1"`
	Contact2     string `json:"contact2"`
}

type WeekUpload struct {
	Semaine    string            `json:"semaine"`
	Pharmacies *[]PharmacyUpload `json:"pharmacies"`
}

// ReplaceSchedule replaces the whole on-duty schedule in one transaction:
// every existing week and pharmacy row is purged, then the uploaded list is
// inserted. A validation failure or a mid-insert error leaves the previous
// schedule untouched.
func ReplaceSchedule(c *fiber.Ctx) error {
	var upload []WeekUpload
	if err := c.BodyParser(&upload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Le fichier doit contenir un tableau JSON de semaines.",
		})
	}

	if len(upload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Le tableau de semaines est vide.",
		})
	}
	for i, week := range upload {
		if week.Semaine == "" || week.Pharmacies == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("L'élément %d doit contenir les clés 'semaine' et 'pharmacies'.", i),
			})
		}
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Pharmacy{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Week{}).Error; err != nil {
			return err
		}

		for _, schedule := range upload {
			week := models.Week{Semaine: schedule.Semaine}
			for _, p := range *schedule.Pharmacies {
				week.Pharmacies = append(week.Pharmacies, models.Pharmacy{
					Nom:          p.Nom,
					Localisation: p.Localisation,
					Contact1:     p.Contact1,
					Contact2:     p.Contact2,
				})
			}
			if err := tx.Create(&week).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("Error replacing schedule: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Échec de la mise à jour des pharmacies.",
		})
	}

	cache.Invalidate(cache.KeyDirectory)

	return c.JSON(fiber.Map{
		"message": "Les données des pharmacies ont été mises à jour avec succès.",
	})
}

// GeneratePharmacistCredential provisions or rotates a pharmacist account
// for a pharmacy name. The plaintext credential is returned exactly once;
// only its hash is stored. Creation is transactional, so a failure leaves
// no half-provisioned profile behind.
func GeneratePharmacistCredential(c *fiber.Ctx) error {
	type CredentialInput struct {
		PharmacyName string `json:"pharmacy_name"`
		NotifyEmail  string `json:"notify_email"`
	}

	input := new(CredentialInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if strings.TrimSpace(input.PharmacyName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Le nom de la pharmacie est requis.",
		})
	}
	pharmacyName := strings.TrimSpace(input.PharmacyName)

	credential := utils.GenerateCredential()
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	created := false
	var account models.Profile
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Joins("JOIN roles ON profiles.role_id = roles.id").
			Where("profiles.pharmacy_name = ? AND roles.name = ?", pharmacyName, models.RolePharmacien).
			First(&account)

		if result.RowsAffected > 0 {
			// Rotate the existing credential.
			return tx.Model(&account).Update("password", string(hash)).Error
		}

		var pharmacienRole models.Role
		if err := tx.Where("name = ?", models.RolePharmacien).First(&pharmacienRole).Error; err != nil {
			return err
		}

		account = models.Profile{
			Username:     pharmacyName,
			Email:        syntheticEmail(pharmacyName),
			Password:     string(hash),
			PharmacyName: &pharmacyName,
			RoleID:       pharmacienRole.ID,
		}
		created = true
		return tx.Create(&account).Error
	})
	if err != nil {
		log.Printf("Error provisioning pharmacist credential: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Impossible de générer les identifiants.",
		})
	}

	if input.NotifyEmail != "" {
		body := fmt.Sprintf(
			"<p>Identifiants pour <strong>%s</strong></p><p>E-mail : %s<br>Mot de passe : %s</p>",
			pharmacyName, account.Email, credential)
		if err := utils.SendEmail(input.NotifyEmail, "Identifiants pharmacien", body); err != nil {
			log.Printf("Failed to mail credential: %v", err)
		}
	}

	return c.JSON(fiber.Map{
		"email":      account.Email,
		"credential": credential,
		"created":    created,
	})
}

// SeedHealthTips asks the AI for five tips and stores them as draft posts
// for editorial review.
func SeedHealthTips(c *fiber.Ctx) error {
	tips, err := ai.GenerateHealthTips(c.UserContext())
	if err != nil {
		log.Printf("Error generating health tips: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Impossible de générer les conseils.",
		})
	}

	if len(tips) == 0 {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Aucun conseil n'a été généré.",
		})
	}

	posts := make([]models.HealthPost, 0, len(tips))
	for _, tip := range tips {
		posts = append(posts, models.HealthPost{
			Title:   tip.Title,
			Content: tip.Content,
			Status:  models.PostDraft,
		})
	}
	if err := db.DB.Create(&posts).Error; err != nil {
		log.Printf("Error saving health tips: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Impossible d'enregistrer les conseils.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"posts": posts})
}

// syntheticEmail derives a stable login address from a pharmacy name, e.g.
// "Pharmacie du Marché" -> "pharmacie.du.marche@pharmacies.local".
func syntheticEmail(pharmacyName string) string {
	slug := strings.ToLower(pharmacyName)
	replacer := strings.NewReplacer(
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"à", "a", "â", "a", "î", "i", "ï", "i",
		"ô", "o", "ö", "o", "ù", "u", "û", "u", "ç", "c",
	)
	slug = replacer.Replace(slug)

	var b strings.Builder
	lastDot := true
	for _, r := range slug {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDot = false
		default:
			if !lastDot {
				b.WriteRune('.')
				lastDot = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), ".") + "@pharmacies.local"
}
