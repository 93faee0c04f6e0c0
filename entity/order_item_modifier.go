package entity

import (
	"gorm.io/gorm"
)

type OrderItemModifier struct {
	gorm.Model
	OrderItemID uint      `gorm:"index" json:"orderItemId"`
	OrderItem   OrderItem `json:"-"`

	GroupTitle string  `json:"groupTitle"`
	ItemTitle  string  `json:"itemTitle"`
	Price      float64 `json:"price"`
}
