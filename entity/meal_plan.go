package entity

import (
	"gorm.io/gorm"
)

// MealPlan is a chef-authored weekly template of up to four slots.
// TotalPrice is always the server-computed plan total; a client total that
// disagrees is rejected at the boundary.
type MealPlan struct {
	gorm.Model
	ChefID uint `gorm:"index" json:"chefId"`
	Chef   User `gorm:"foreignKey:ChefID" json:"-"`

	Name       string  `json:"name"`
	Image      string  `json:"image"`
	TotalPrice float64 `json:"totalPrice"`

	Slots []MealPlanSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"slots"`
}
