package entity

import (
	"gorm.io/gorm"
)

// Modifier is a named option group on a dish. Required groups are
// exactly-one-of; optional groups allow 0..Limit selections.
type Modifier struct {
	gorm.Model
	DishID uint `gorm:"index" json:"dishId"`
	Dish   Dish `json:"-"`

	Title     string `json:"title"`
	Required  bool   `json:"required"`
	Limit     int    `json:"limit"`
	SortOrder int    `json:"sortOrder"`

	Items []ModifierItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
