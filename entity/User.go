package entity

import (
	"gorm.io/gorm"
)

const (
	RoleStudent    = "student"
	RoleCafeOwner  = "cafe_owner"
	RoleCafeWorker = "cafe_worker"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:student" json:"role"`

	// preload only when the endpoint needs them
	Orders    []Order    `gorm:"foreignKey:AccountID" json:"-"`
	Feedbacks []Feedback `gorm:"foreignKey:StudentID" json:"-"`
	CafesOwned []Cafe    `gorm:"foreignKey:OwnerID" json:"-"`
}
