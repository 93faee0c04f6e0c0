package entity

import (
	"gorm.io/gorm"
)

// ChatRoom links one conversation to one order. Access is limited to the
// order's diner and any chef owning a line item.
type ChatRoom struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`

	Messages []Message `gorm:"foreignKey:RoomID" json:"-"`
}
