package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleClient     = "client"
	RolePharmacien = "pharmacien"
	RoleAdmin      = "admin"
)

type Role struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"unique"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Profile is the application user record. Credentials live here as a bcrypt
// hash only; the plaintext of a generated pharmacist credential is returned
// once at generation time and never stored.
type Profile struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username"`
	Email        string    `json:"email" gorm:"unique"`
	Password     string    `json:"password,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	PharmacyName *string   `json:"pharmacy_name"`
	RoleID       uint      `json:"role_id"`
	Role         Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
