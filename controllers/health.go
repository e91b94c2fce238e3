package controllers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lomepharma/pharma-garde/db"
	"github.com/lomepharma/pharma-garde/models"
	"gorm.io/gorm"
)

// GetHealthPosts lists published editorial posts, newest first. Drafts and
// scheduled posts stay invisible until the scheduler flips them.
func GetHealthPosts(c *fiber.Ctx) error {
	posts := []models.HealthPost{}
	if err := db.DB.Where("status = ?", models.PostPublished).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		log.Printf("Error fetching health posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Une erreur est survenue.",
		})
	}

	return c.JSON(fiber.Map{"posts": posts})
}

// LikeHealthPost adjusts a post's like counter by a signed delta, applied
// atomically in the database.
func LikeHealthPost(c *fiber.Ctx) error {
	type LikeInput struct {
		Delta int `json:"delta"`
	}

	input := new(LikeInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Delta != 1 && input.Delta != -1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Le delta doit être +1 ou -1.",
		})
	}

	result := db.DB.Model(&models.HealthPost{}).
		Where("id = ?", c.Params("id")).
		UpdateColumn("likes", gorm.Expr("likes + ?", input.Delta))
	if result.Error != nil {
		log.Printf("Error updating likes: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Une erreur est survenue.",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article introuvable.",
		})
	}

	return c.JSON(fiber.Map{"message": "Merci !"})
}

// GetHealthPostComments lists a post's comments, oldest first.
func GetHealthPostComments(c *fiber.Ctx) error {
	var post models.HealthPost
	if err := db.DB.First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article introuvable.",
		})
	}

	comments := []models.HealthPostComment{}
	if err := db.DB.Where("post_id = ?", post.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		log.Printf("Error fetching comments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Une erreur est survenue.",
		})
	}

	return c.JSON(fiber.Map{"comments": comments})
}

// CreateHealthPostComment appends an anonymous comment to a post.
func CreateHealthPostComment(c *fiber.Ctx) error {
	type CommentInput struct {
		Content string `json:"content"`
	}

	input := new(CommentInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if strings.TrimSpace(input.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Le commentaire est vide.",
		})
	}

	var post models.HealthPost
	if err := db.DB.First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Article introuvable.",
		})
	}

	comment := models.HealthPostComment{
		PostID:  post.ID,
		Content: strings.TrimSpace(input.Content),
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		log.Printf("Error creating comment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Impossible d'enregistrer le commentaire.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// CreateFeedback stores free-form feedback from any page.
func CreateFeedback(c *fiber.Ctx) error {
	type FeedbackInput struct {
		Message string `json:"message"`
		Contact string `json:"contact"`
	}

	input := new(FeedbackInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if strings.TrimSpace(input.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Le message est vide.",
		})
	}

	feedback := models.UserFeedback{
		Message: strings.TrimSpace(input.Message),
		Contact: input.Contact,
	}
	if err := db.DB.Create(&feedback).Error; err != nil {
		log.Printf("Error creating feedback: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Impossible d'enregistrer le message.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}
