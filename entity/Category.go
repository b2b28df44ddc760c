package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"`

	MenuItems []MenuItem `json:"-"`
}
