package repository

import (
	"github.com/abu0717/canteen/entity"

	"gorm.io/gorm"
)

type WorkerRepository struct {
	DB *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{DB: db}
}

// ---------------- Assignments ----------------

func (r *WorkerRepository) IsAssigned(cafeID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.CafeWorker{}).
		Where("cafe_id = ? AND user_id = ?", cafeID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *WorkerRepository) Assign(tx *gorm.DB, w *entity.CafeWorker) error {
	return tx.Create(w).Error
}

func (r *WorkerRepository) GetAssignment(id uint) (*entity.CafeWorker, error) {
	var w entity.CafeWorker
	if err := r.DB.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkerRepository) RemoveAssignment(id uint) error {
	return r.DB.Delete(&entity.CafeWorker{}, id).Error
}

type WorkerRow struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	CafeID    uint   `json:"cafeId"`
}

func (r *WorkerRepository) ListByCafe(cafeID uint) ([]WorkerRow, error) {
	var out []WorkerRow
	err := r.DB.Table("cafe_workers AS cw").
		Select("cw.id, cw.user_id, u.name AS user_name, u.email AS user_email, cw.cafe_id").
		Joins("JOIN users u ON u.id = cw.user_id").
		Where("cw.cafe_id = ? AND cw.deleted_at IS NULL", cafeID).
		Order("cw.id").
		Scan(&out).Error
	return out, err
}

// ---------------- Requests ----------------

func (r *WorkerRepository) CreateRequest(req *entity.WorkerRequest) error {
	return r.DB.Create(req).Error
}

func (r *WorkerRepository) GetRequest(id uint) (*entity.WorkerRequest, error) {
	var req entity.WorkerRequest
	if err := r.DB.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *WorkerRepository) HasOpenRequest(cafeID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.WorkerRequest{}).
		Where("cafe_id = ? AND user_id = ? AND status = ?", cafeID, userID, entity.WorkerRequestPending).
		Count(&count).Error
	return count > 0, err
}

func (r *WorkerRepository) ListRequestsByCafe(cafeID uint, status string) ([]entity.WorkerRequest, error) {
	db := r.DB.Where("cafe_id = ?", cafeID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var out []entity.WorkerRequest
	err := db.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *WorkerRepository) UpdateRequestStatus(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&entity.WorkerRequest{}).Where("id = ?", id).Update("status", status).Error
}
