package entity

import (
	"gorm.io/gorm"
)

// Cart is the single mutable cart per diner, created lazily on first add.
type Cart struct {
	gorm.Model
	DinerID uint `gorm:"uniqueIndex" json:"dinerId"`
	Diner   User `gorm:"foreignKey:DinerID" json:"-"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
