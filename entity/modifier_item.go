package entity

import (
	"gorm.io/gorm"
)

type ModifierItem struct {
	gorm.Model
	ModifierID uint     `gorm:"index" json:"modifierId"`
	Modifier   Modifier `json:"-"`

	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	SortOrder int     `json:"sortOrder"`
}
