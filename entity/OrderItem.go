package entity

import (
	"time"

	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"` // unit price snapshot, never recomputed

	Scheduled     bool       `gorm:"default:false" json:"scheduled"`
	ScheduledTime *time.Time `json:"scheduledTime"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the menu name is needed
}
