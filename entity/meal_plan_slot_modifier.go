package entity

import (
	"gorm.io/gorm"
)

type MealPlanSlotModifier struct {
	gorm.Model
	MealPlanSlotID uint         `gorm:"index" json:"mealPlanSlotId"`
	MealPlanSlot   MealPlanSlot `json:"-"`

	GroupTitle string  `json:"groupTitle"`
	ItemTitle  string  `json:"itemTitle"`
	Price      float64 `json:"price"`
}
