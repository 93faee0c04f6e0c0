package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentCOD  = "cod"
	PaymentCard = "card"
)

// OrderAddress is the delivery address snapshotted onto the order at
// checkout. Type is normalized to capitalized form (Home/Office/Other).
type OrderAddress struct {
	Type           string `json:"type"`
	BuildingNumber string `json:"buildingNumber"`
	Street         string `json:"street"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country"`
	Phone          string `json:"phone"`
}

// Order is an immutable snapshot of a cart at checkout. Only Status, the
// payment fields and the two soft-delete flags are ever written after create.
type Order struct {
	gorm.Model
	DinerID uint `gorm:"index" json:"dinerId"`
	Diner   User `gorm:"foreignKey:DinerID" json:"-"`

	Status      string  `gorm:"not null;default:pending" json:"status"`
	TotalAmount float64 `json:"totalAmount"`

	Address OrderAddress `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	PaymentMethod    string     `json:"paymentMethod"` // cod | card
	PaymentSessionID string     `gorm:"index" json:"paymentSessionId,omitempty"`
	PaidAt           *time.Time `json:"paidAt,omitempty"`

	IsDeletedByDiner bool `json:"isDeletedByDiner"`
	IsDeletedByChef  bool `json:"isDeletedByChef"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	ChatRoom *ChatRoom `gorm:"foreignKey:OrderID" json:"-"`
}
