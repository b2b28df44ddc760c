package entity

import (
	"gorm.io/gorm"
)

type Cafe struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Location string  `gorm:"not null" json:"location"`
	Image    string  `json:"image"`
	Rating   float64 `gorm:"default:4.0" json:"rating"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"`

	Categories []Category  `json:"-"`
	MenuItems  []MenuItem  `json:"-"`
	Inventory  []Inventory `json:"-"`
	Feedbacks  []Feedback  `json:"-"`
	Workers    []CafeWorker `json:"-"`
}
