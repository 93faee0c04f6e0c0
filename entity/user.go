package entity

import (
	"gorm.io/gorm"
)

const (
	RoleChef   = "chef"
	RoleDiner  = "diner"
	RoleDriver = "driver"
)

func ValidRole(r string) bool {
	return r == RoleChef || r == RoleDiner || r == RoleDriver
}

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:diner" json:"role"`

	// chef profile
	CuisineType       string `json:"cuisineType,omitempty"`
	Specialties       string `json:"specialties,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`

	Addresses []Address `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addresses,omitempty"`

	// Relations — preload only when needed
	Dishes         []Dish         `gorm:"foreignKey:ChefID" json:"-"`
	MealPlans      []MealPlan     `gorm:"foreignKey:ChefID" json:"-"`
	Orders         []Order        `gorm:"foreignKey:DinerID" json:"-"`
	Subscriptions  []Subscription `gorm:"foreignKey:DinerID" json:"-"`
	FavoriteDishes []Dish         `gorm:"many2many:dish_favorites;" json:"-"`
	MessagesSent   []Message      `gorm:"foreignKey:SenderID" json:"-"`
}
