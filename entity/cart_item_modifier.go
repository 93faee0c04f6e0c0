package entity

import (
	"gorm.io/gorm"
)

// CartItemModifier is one chosen modifier item, snapshotted by title and
// price so later edits to the dish never reprice a cart line.
type CartItemModifier struct {
	gorm.Model
	CartItemID uint     `gorm:"index" json:"cartItemId"`
	CartItem   CartItem `json:"-"`

	GroupTitle string  `json:"groupTitle"`
	ItemTitle  string  `json:"itemTitle"`
	Price      float64 `json:"price"`
}
