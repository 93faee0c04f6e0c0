package entity

import (
	"gorm.io/gorm"
)

// City is static reference data for the delivery region, seeded at startup.
type City struct {
	gorm.Model
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Province string `json:"province"`
}
