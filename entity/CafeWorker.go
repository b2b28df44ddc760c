package entity

import (
	"gorm.io/gorm"
)

// CafeWorker assigns a user with the cafe_worker role to one cafe.
type CafeWorker struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	CafeID uint `gorm:"not null;index" json:"cafeId"`
	Cafe   Cafe `json:"-"`
}
