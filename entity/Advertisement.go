package entity

import (
	"gorm.io/gorm"
)

type Advertisement struct {
	gorm.Model
	Title  string `gorm:"not null" json:"title"`
	Image  string `json:"image"`
	Active bool   `gorm:"default:true" json:"active"`
}
