package entity

import (
	"gorm.io/gorm"
)

type Message struct {
	gorm.Model
	RoomID uint     `gorm:"index" json:"roomId"`
	Room   ChatRoom `gorm:"foreignKey:RoomID" json:"-"`

	SenderID uint `json:"senderId"`
	Sender   User `gorm:"foreignKey:SenderID" json:"-"`

	Body string `json:"body"`
}
