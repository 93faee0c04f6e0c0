package entity

import (
	"gorm.io/gorm"
)

const (
	DishBreakfast = "Breakfast"
	DishLunch     = "Lunch"
	DishDinner    = "Dinner"
)

func ValidDishType(t string) bool {
	return t == DishBreakfast || t == DishLunch || t == DishDinner
}

type Dish struct {
	gorm.Model
	ChefID uint `gorm:"index" json:"chefId"`
	Chef   User `gorm:"foreignKey:ChefID" json:"-"`

	Name        string  `json:"name"`
	Type        string  `json:"type"` // Breakfast | Lunch | Dinner
	Cuisine     string  `json:"cuisine"`
	Description string  `json:"description"`
	Photo       string  `json:"photo"` // URL from the upload endpoint
	Price       float64 `json:"price"`

	Modifiers []Modifier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"modifiers"`

	FavoritedBy []User `gorm:"many2many:dish_favorites;" json:"-"`
}
