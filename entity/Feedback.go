package entity

import (
	"gorm.io/gorm"
)

type Feedback struct {
	gorm.Model
	Comment string  `gorm:"not null" json:"comment"`
	Rating  float64 `gorm:"default:1" json:"rating"`

	StudentID uint `json:"studentId"`
	Student   User `gorm:"foreignKey:StudentID" json:"-"`

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`
}
