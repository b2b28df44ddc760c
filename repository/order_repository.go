package repository

import (
	"time"

	"github.com/abu0717/canteen/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Writes (always inside the caller's tx) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// UpdateStatusGuard flips the status only while the row still holds
// from. Zero rows affected means the caller lost a race (or the
// status changed since it was read) and must not treat the
// transition as applied.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND account_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// Item rows for an order detail, with the menu name joined in.
type OrderItemRow struct {
	ID            uint       `json:"id"`
	MenuItemID    uint       `json:"menuItemId"`
	MenuItemName  string     `json:"menuItemName"`
	Quantity      int        `json:"quantity"`
	Price         float64    `json:"price"`
	Scheduled     bool       `json:"scheduled"`
	ScheduledTime *time.Time `json:"scheduledTime"`
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]OrderItemRow, error) {
	var out []OrderItemRow
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.menu_item_id, m.name AS menu_item_name, oi.quantity, oi.price, oi.scheduled, oi.scheduled_time").
		Joins("JOIN menu_items m ON m.id = oi.menu_item_id").
		Where("oi.order_id = ?", orderID).
		Order("oi.id").
		Scan(&out).Error
	return out, err
}

type OrderSummary struct {
	ID         uint      `json:"id"`
	CafeID     uint      `json:"cafeId"`
	Note       string    `json:"note"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, cafe_id, note, status, total_price, created_at, updated_at").
		Where("account_id = ?", userID).
		Order("created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListCompletedForUser(userID uint) ([]OrderSummary, error) {
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, cafe_id, note, status, total_price, created_at, updated_at").
		Where("account_id = ? AND status = ?", userID, entity.StatusCompleted).
		Order("created_at DESC").
		Scan(&out).Error
	return out, err
}

// Staff-facing listing for a cafe, with the customer's name joined in.
type CafeOrderSummary struct {
	ID           uint      `json:"id"`
	AccountID    uint      `json:"accountId"`
	CustomerName string    `json:"customerName"`
	Note         string    `json:"note"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (r *OrderRepository) ListForCafe(cafeID uint) ([]CafeOrderSummary, error) {
	var out []CafeOrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, o.account_id, u.name AS customer_name, o.note, o.status, o.total_price, o.created_at, o.updated_at").
		Joins("JOIN users u ON u.id = o.account_id").
		Where("o.cafe_id = ? AND o.deleted_at IS NULL", cafeID).
		Order("o.created_at DESC").
		Scan(&out).Error
	return out, err
}
