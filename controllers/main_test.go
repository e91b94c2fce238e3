package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lomepharma/pharma-garde/db"
	"github.com/lomepharma/pharma-garde/middleware"
	"github.com/lomepharma/pharma-garde/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// setupTestDB creates an in-memory SQLite database and points the shared
// connection at it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&models.Role{},
		&models.Profile{},
		&models.Week{},
		&models.Pharmacy{},
		&models.Search{},
		&models.Response{},
		&models.HealthPost{},
		&models.HealthPostComment{},
		&models.UserFeedback{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := db.SeedRoles(gdb); err != nil {
		t.Fatalf("failed to seed roles: %v", err)
	}

	db.DB = gdb
	return gdb
}

// setupTestApp wires the full route surface against a fresh test database.
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	os.Setenv("JWT_SECRET", testSecret)
	gdb := setupTestDB(t)

	app := fiber.New()

	auth := app.Group("/auth")
	auth.Post("/register", Register)
	auth.Post("/login", Login)
	auth.Get("/me", middleware.Protected(), GetUserProfile)

	search := app.Group("/searches", middleware.Optional())
	search.Post("/", CreateSearch)
	search.Get("/", ListSearchesForClient)

	pharmacist := app.Group("/pharmacist", middleware.Protected(), middleware.RequireRole(models.RolePharmacien))
	pharmacist.Get("/searches", GetAllSearches)
	pharmacist.Post("/searches/:id/responses", RecordResponse)
	pharmacist.Patch("/profile", UpdatePharmacistProfile)

	admin := app.Group("/admin", middleware.Protected(), middleware.RequireRole(models.RoleAdmin))
	admin.Put("/schedule", ReplaceSchedule)
	admin.Post("/pharmacists", GeneratePharmacistCredential)

	pharmacy := app.Group("/pharmacies")
	pharmacy.Get("/", GetSchedule)
	pharmacy.Get("/names", GetPharmacyNames)

	health := app.Group("/health")
	health.Get("/posts", GetHealthPosts)
	health.Post("/posts/:id/like", LikeHealthPost)
	health.Get("/posts/:id/comments", GetHealthPostComments)
	health.Post("/posts/:id/comments", CreateHealthPostComment)
	app.Post("/feedback", CreateFeedback)

	return app, gdb
}

// createProfile inserts a profile with the given role and password.
func createProfile(t *testing.T, gdb *gorm.DB, username, email, password, roleName string) models.Profile {
	t.Helper()

	var role models.Role
	if err := gdb.Where("name = ?", roleName).First(&role).Error; err != nil {
		t.Fatalf("role %q not seeded: %v", roleName, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	profile := models.Profile{
		Username: username,
		Email:    email,
		Password: string(hash),
		RoleID:   role.ID,
	}
	if err := gdb.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return profile
}

// tokenFor signs an access token the way Login does.
func tokenFor(t *testing.T, profile models.Profile, roleName string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":    profile.ID,
		"email": profile.Email,
		"role":  roleName,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// stubNormalizer swaps the AI call for the duration of a test.
func stubNormalizer(t *testing.T, fn func(ctx context.Context, description string, photoURLs []string) (string, error)) {
	t.Helper()
	orig := normalizeProduct
	normalizeProduct = fn
	t.Cleanup(func() { normalizeProduct = orig })
}

// stubUploader swaps the blob upload for the duration of a test.
func stubUploader(t *testing.T, fn func(file interface{}, publicID, folder string) (string, error)) {
	t.Helper()
	orig := uploadPhoto
	uploadPhoto = fn
	t.Cleanup(func() { uploadPhoto = orig })
}

// decodeBody reads a response body into a generic JSON map.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("failed to decode response %s: %v", raw, err)
	}
	return body
}

func mustStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, want %d (body %s)", resp.StatusCode, want, raw)
	}
}

func bearer(token string) string {
	return fmt.Sprintf("Bearer %s", token)
}
