package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `gorm:"not null" json:"price"`
	Available   bool    `gorm:"default:true" json:"available"`

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"`

	CategoryID *uint     `json:"categoryId"`
	Category   *Category `json:"-"`
}
