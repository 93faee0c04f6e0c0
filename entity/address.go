package entity

import (
	"gorm.io/gorm"
)

const (
	AddressHome   = "Home"
	AddressOffice = "Office"
	AddressOther  = "Other"
)

func ValidAddressType(t string) bool {
	return t == AddressHome || t == AddressOffice || t == AddressOther
}

// Address is a saved delivery address. A user holds at most one address
// per type (enforced in the service on create, not on edit-by-id).
type Address struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	Type           string `json:"type"` // Home | Office | Other
	BuildingNumber string `json:"buildingNumber"`
	Street         string `json:"street"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postalCode"`
	Country        string `json:"country"`
	Phone          string `json:"phone"`
}
