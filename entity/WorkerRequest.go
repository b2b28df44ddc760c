package entity

import (
	"gorm.io/gorm"
)

const (
	WorkerRequestPending  = "pending"
	WorkerRequestApproved = "approved"
	WorkerRequestRejected = "rejected"
)

// WorkerRequest is a user's application to work at a cafe.
// Approval creates the CafeWorker assignment.
type WorkerRequest struct {
	gorm.Model
	Status string `gorm:"not null;default:pending" json:"status"`

	UserID uint `gorm:"not null" json:"userId"`
	User   User `json:"-"`

	CafeID uint `gorm:"not null" json:"cafeId"`
	Cafe   Cafe `json:"-"`
}
