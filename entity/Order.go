package entity

import (
	"gorm.io/gorm"
)

// Order statuses. Every status comparison goes through the
// transition table in services, never ad hoc string checks.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	Note       string  `json:"note"`
	Status     string  `gorm:"not null;default:pending" json:"status"`
	TotalPrice float64 `gorm:"not null" json:"totalPrice"` // frozen at creation

	AccountID uint `json:"accountId"`
	Account   User `gorm:"foreignKey:AccountID" json:"-"`

	CafeID uint `json:"cafeId"`
	Cafe   Cafe `json:"-"`

	Items    []OrderItem `json:"-"`
	Feedback *Feedback   `gorm:"foreignKey:OrderID" json:"-"`
}
