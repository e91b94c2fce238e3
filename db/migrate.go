package db

import (
	"fmt"
	"log"
	"os"

	"github.com/lomepharma/pharma-garde/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.Role{},
		&models.Profile{},
		&models.Week{},
		&models.Pharmacy{},
		&models.Search{},
		&models.Response{},
		&models.HealthPost{},
		&models.HealthPostComment{},
		&models.UserFeedback{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	if err := SeedRoles(DB); err != nil {
		log.Fatal("Failed to seed roles: ", err)
	}
	if err := seedAdmin(DB); err != nil {
		log.Fatal("Failed to seed admin account: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}

// SeedRoles creates the three fixed roles if they do not exist yet.
func SeedRoles(db *gorm.DB) error {
	roles := []models.Role{
		{Name: models.RoleAdmin, Description: "Administrator with full access"},
		{Name: models.RolePharmacien, Description: "Pharmacist who can answer product requests"},
		{Name: models.RoleClient, Description: "Client who can submit product requests"},
	}

	for _, role := range roles {
		var existing models.Role
		if db.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// seedAdmin bootstraps the first admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Further admins are regular profiles with the admin role;
// there is no shared admin secret anywhere.
func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var existing models.Profile
	if db.Where("email = ?", email).First(&existing).RowsAffected > 0 {
		return nil
	}

	var adminRole models.Role
	if err := db.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.Profile{
		Username: "admin",
		Email:    email,
		Password: string(hash),
		RoleID:   adminRole.ID,
	}).Error
}
