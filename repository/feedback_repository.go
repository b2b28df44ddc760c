package repository

import (
	"time"

	"github.com/abu0717/canteen/entity"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) Create(f *entity.Feedback) error {
	return r.DB.Create(f).Error
}

func (r *FeedbackRepository) Get(id uint) (*entity.Feedback, error) {
	var f entity.Feedback
	if err := r.DB.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FeedbackRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Feedback{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

type FeedbackRow struct {
	ID          uint      `json:"id"`
	StudentID   uint      `json:"studentId"`
	StudentName string    `json:"studentName"`
	OrderID     uint      `json:"orderId"`
	Comment     string    `json:"comment"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *FeedbackRepository) ListByCafe(cafeID uint) ([]FeedbackRow, error) {
	var out []FeedbackRow
	err := r.DB.Table("feedbacks AS f").
		Select("f.id, f.student_id, u.name AS student_name, f.order_id, f.comment, f.rating, f.created_at").
		Joins("JOIN users u ON u.id = f.student_id").
		Where("f.cafe_id = ? AND f.deleted_at IS NULL", cafeID).
		Order("f.created_at DESC").
		Scan(&out).Error
	return out, err
}

func (r *FeedbackRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Feedback{}, id).Error
}
