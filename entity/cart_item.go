package entity

import (
	"gorm.io/gorm"
)

// MaxDishQuantity caps the summed quantity of any single dish in a cart.
const MaxDishQuantity = 8

// CartItem is a denormalized snapshot of a dish at selection time.
// LineTotal = Quantity * (BasePrice + sum of selected modifier prices).
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`
	Cart   Cart `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`
	ChefID uint `gorm:"index" json:"chefId"`

	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	BasePrice float64 `json:"basePrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`

	SpecialInstructions string `json:"specialInstructions"`

	Modifiers []CartItemModifier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"modifiers"`
}
