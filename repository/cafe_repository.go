package repository

import (
	"github.com/abu0717/canteen/entity"

	"gorm.io/gorm"
)

type CafeRepository struct {
	DB *gorm.DB
}

func NewCafeRepository(db *gorm.DB) *CafeRepository {
	return &CafeRepository{DB: db}
}

func (r *CafeRepository) Exists(cafeID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Cafe{}).Where("id = ?", cafeID).Count(&count).Error
	return count > 0, err
}

func (r *CafeRepository) IsOwnedBy(cafeID, ownerID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Cafe{}).
		Where("id = ? AND owner_id = ?", cafeID, ownerID).
		Count(&count).Error
	return count > 0, err
}

func (r *CafeRepository) Get(cafeID uint) (*entity.Cafe, error) {
	var cafe entity.Cafe
	if err := r.DB.First(&cafe, cafeID).Error; err != nil {
		return nil, err
	}
	return &cafe, nil
}

func (r *CafeRepository) List() ([]entity.Cafe, error) {
	var out []entity.Cafe
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *CafeRepository) Create(cafe *entity.Cafe) error {
	return r.DB.Create(cafe).Error
}

func (r *CafeRepository) Update(cafeID uint, updates map[string]any) error {
	return r.DB.Model(&entity.Cafe{}).Where("id = ?", cafeID).Updates(updates).Error
}

func (r *CafeRepository) Delete(cafeID uint) error {
	return r.DB.Delete(&entity.Cafe{}, cafeID).Error
}

// ---------------- Inventory ----------------

func (r *CafeRepository) ListInventory(cafeID uint) ([]entity.Inventory, error) {
	var out []entity.Inventory
	err := r.DB.Where("cafe_id = ?", cafeID).Order("id").Find(&out).Error
	return out, err
}

func (r *CafeRepository) GetInventory(id uint) (*entity.Inventory, error) {
	var inv entity.Inventory
	if err := r.DB.First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *CafeRepository) CreateInventory(inv *entity.Inventory) error {
	return r.DB.Create(inv).Error
}

func (r *CafeRepository) UpdateInventory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Inventory{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CafeRepository) DeleteInventory(id uint) error {
	return r.DB.Delete(&entity.Inventory{}, id).Error
}
