package entity

import (
	"gorm.io/gorm"
)

const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotEvening   = "evening"
	SlotDinner    = "dinner"
)

// SlotKeys is the fixed slot order of a meal plan.
var SlotKeys = []string{SlotBreakfast, SlotLunch, SlotEvening, SlotDinner}

func ValidSlotKey(s string) bool {
	for _, k := range SlotKeys {
		if s == k {
			return true
		}
	}
	return false
}

var weekdays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}

func ValidWeekday(d string) bool { return weekdays[d] }

// MealPlanSlot binds one dish (snapshotted) to a named slot and the
// weekdays it recurs on. A slot row only exists when a dish is bound.
type MealPlanSlot struct {
	gorm.Model
	MealPlanID uint     `gorm:"index:idx_plan_slot,unique" json:"mealPlanId"`
	MealPlan   MealPlan `json:"-"`

	Slot string `gorm:"index:idx_plan_slot,unique" json:"slot"` // breakfast | lunch | evening | dinner

	DishID    uint    `json:"dishId"`
	DishName  string  `json:"dishName"`
	DishPhoto string  `json:"dishPhoto"`
	DishPrice float64 `json:"dishPrice"`

	Quantity int      `json:"quantity"`
	Days     []string `gorm:"serializer:json" json:"days"`

	SpecialInstructions string `json:"specialInstructions"`

	Modifiers []MealPlanSlotModifier `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"modifiers"`
}
