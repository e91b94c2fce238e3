package models

import (
	"gorm.io/gorm"
)

// Week is one entry of the published on-duty schedule. The whole schedule
// is replaced wholesale by the admin upload; there is no partial update.
type Week struct {
	gorm.Model
	Semaine    string     `json:"semaine" gorm:"uniqueIndex"`
	Pharmacies []Pharmacy `json:"pharmacies" gorm:"foreignKey:WeekID"`
}

// Pharmacy is an on-duty directory entry, owned by its week. It is distinct
// from a pharmacist account: directory entries carry no credentials.
type Pharmacy struct {
	gorm.Model
	Nom          string `json:"nom"`
	Localisation string `json:"localisation"`
	Contact1     string `json:"contact1"`
	Contact2     string `json:"contact2"`
	WeekID       uint   `json:"week_id"`
}
