package entity

import (
	"gorm.io/gorm"
)

type Inventory struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	Kg          float64 `json:"kg"`
	Description string  `json:"description"`

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"`
}
