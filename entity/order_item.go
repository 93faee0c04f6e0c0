package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a cart line copied verbatim at checkout; immutable history.
// ChefID is denormalized and indexed so chef views are a query, not a scan.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	ChefID uint `gorm:"index" json:"chefId"`

	Name      string  `json:"name"`
	Photo     string  `json:"photo"`
	BasePrice float64 `json:"basePrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`

	SpecialInstructions string `json:"specialInstructions"`

	Modifiers []OrderItemModifier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"modifiers"`
}
