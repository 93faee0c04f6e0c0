package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubscriptionPending   = "pending"
	SubscriptionActive    = "active"
	SubscriptionPaused    = "paused"
	SubscriptionCancelled = "cancelled"
)

func ValidSubscriptionStatus(s string) bool {
	switch s {
	case SubscriptionPending, SubscriptionActive, SubscriptionPaused, SubscriptionCancelled:
		return true
	}
	return false
}

// Subscription is a diner's purchase of a meal plan for Weeks weeks at a
// price fixed at purchase time. It keeps its own ChefID and TotalPrice so
// it survives later edits or deletion of the plan. Cancellation is a status
// change; the row is history and is never deleted.
type Subscription struct {
	gorm.Model
	DinerID uint `gorm:"index" json:"dinerId"`
	Diner   User `gorm:"foreignKey:DinerID" json:"-"`

	MealPlanID uint     `json:"mealPlanId"`
	MealPlan   MealPlan `gorm:"constraint:OnDelete:SET NULL;" json:"mealPlan,omitempty"`

	// denormalized from the plan at purchase time, indexed for chef views
	ChefID uint `gorm:"index" json:"chefId"`

	AddressID uint    `json:"addressId"`
	Address   Address `json:"-"`

	Weeks      int     `json:"weeks"`
	TotalPrice float64 `json:"totalPrice"`

	DeliveryTime time.Time `json:"deliveryTime"`
	Status       string    `gorm:"not null;default:pending" json:"status"`

	PaymentSessionID string `gorm:"index" json:"paymentSessionId,omitempty"`
}
